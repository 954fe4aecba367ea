package report

import (
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/osteele/liquid"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

//go:embed templates/report.md.liquid
var reportTemplate string

//go:embed templates/chart.svg.liquid
var chartTemplate string

// Meta carries run-level facts into the rendered report.
type Meta struct {
	GeneratedAt time.Time
	RowsLoaded  int
	GroupCount  int
	TopN        int
	Audit       domain.QualityAudit
}

// Renderer renders report artifacts through Liquid templates. The Go side
// computes all numbers and geometry; templates only place them.
type Renderer struct {
	engine *liquid.Engine
}

// NewRenderer creates a Renderer with the report's custom filters.
func NewRenderer() *Renderer {
	engine := liquid.NewEngine()

	// {{ 12345 | comma }} -> "12,345"
	engine.RegisterFilter("comma", func(v float64) string {
		return formatComma(v)
	})

	// {{ 2.5 | fixed2 }} -> "2.50"
	engine.RegisterFilter("fixed2", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})

	return &Renderer{engine: engine}
}

// RenderMarkdown renders the full Markdown report: both ranked tables plus
// the data-quality audit section.
func (r *Renderer) RenderMarkdown(meta Meta, health, economic View) (string, error) {
	bindings := liquid.Bindings{
		"generated_at": meta.GeneratedAt.UTC().Format(time.RFC3339),
		"rows_loaded":  float64(meta.RowsLoaded),
		"group_count":  meta.GroupCount,
		"top_n":        meta.TopN,
		"health":       viewBindings(health),
		"economic":     viewBindings(economic),
		"audit": map[string]any{
			"duplicate_rows":      float64(meta.Audit.DuplicateRows),
			"unmapped_prop_codes": float64(meta.Audit.UnmappedPropCodes),
			"unmapped_crop_codes": float64(meta.Audit.UnmappedCropCodes),
			"incomplete_rows":     float64(meta.Audit.IncompleteRows),
		},
	}

	out, err := r.engine.ParseAndRenderString(reportTemplate, bindings)
	if err != nil {
		return "", fmt.Errorf("render markdown report: %w", err)
	}
	return out, nil
}

// RenderChartSVG renders one grouped-bar chart from its computed layout.
func (r *Renderer) RenderChartSVG(spec ChartSpec) (string, error) {
	bars := make([]map[string]any, 0, len(spec.Bars))
	for _, b := range spec.Bars {
		bars = append(bars, map[string]any{
			"x": coord(b.X), "y": coord(b.Y),
			"w": coord(b.Width), "h": coord(b.Height),
			"fill": b.Fill,
		})
	}

	xlabels := make([]map[string]any, 0, len(spec.XLabels))
	for _, l := range spec.XLabels {
		xlabels = append(xlabels, map[string]any{
			"x": coord(l.X), "y": coord(l.Y), "text": l.Text,
		})
	}

	yticks := make([]map[string]any, 0, len(spec.YTicks))
	for _, t := range spec.YTicks {
		yticks = append(yticks, map[string]any{
			"y": coord(t.Y), "label": t.Label,
		})
	}

	legend := make([]map[string]any, 0, len(spec.Legend))
	for i, e := range spec.Legend {
		legend = append(legend, map[string]any{
			"x":      coord(spec.AxisX + spec.PlotW - 180 + float64(i)*120),
			"text_x": coord(spec.AxisX + spec.PlotW - 164 + float64(i)*120),
			"label":  e.Label,
			"fill":   e.Fill,
		})
	}

	bindings := liquid.Bindings{
		"title":        spec.Title,
		"title_x":      coord(float64(spec.Width) / 2),
		"ylabel":       spec.YLabel,
		"ylabel_y":     coord(spec.AxisY - spec.PlotH/2),
		"width":        spec.Width,
		"height":       spec.Height,
		"axis_x":       coord(spec.AxisX),
		"axis_y":       coord(spec.AxisY),
		"grid_right":   coord(spec.AxisX + spec.PlotW),
		"tick_label_x": coord(spec.AxisX - 8),
		"bars":         bars,
		"xlabels":      xlabels,
		"yticks":       yticks,
		"legend":       legend,
	}

	out, err := r.engine.ParseAndRenderString(chartTemplate, bindings)
	if err != nil {
		return "", fmt.Errorf("render chart %q: %w", spec.Title, err)
	}
	return out, nil
}

// formatComma renders a value rounded to the nearest integer with thousands
// separators.
func formatComma(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// trimFloat formats a value with no trailing zeros, for axis tick labels.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// coord formats an SVG coordinate to one decimal place.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
