package report

import "math"

// Chart geometry is computed here; the SVG template only places shapes.
// Canvas and margins are fixed: the charts are report artifacts, not an
// interactive surface.
const (
	chartWidth   = 960
	chartHeight  = 540
	marginLeft   = 80
	marginRight  = 30
	marginTop    = 60
	marginBottom = 150
	yTickCount   = 5
)

var barFills = [2]string{"#2c7fb8", "#f4a261"}

// Bar is one positioned rectangle.
type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string
}

// XLabel is a rotated event label under its bar group.
type XLabel struct {
	X    float64
	Y    float64
	Text string
}

// YTick is one horizontal gridline with its value label.
type YTick struct {
	Y     float64
	Label string
}

// LegendEntry pairs a metric name with its fill color.
type LegendEntry struct {
	Label string
	Fill  string
}

// ChartSpec is the fully computed layout for one grouped-bar chart.
type ChartSpec struct {
	Title   string
	YLabel  string
	Width   int
	Height  int
	Bars    []Bar
	XLabels []XLabel
	YTicks  []YTick
	Legend  []LegendEntry
	AxisX   float64
	AxisY   float64
	PlotW   float64
	PlotH   float64
}

// BuildChart lays out a grouped-bar chart for a view: x-axis events in
// ranking order, one bar per metric per event, y-axis in the view's unit.
func BuildChart(v View) ChartSpec {
	plotW := float64(chartWidth - marginLeft - marginRight)
	plotH := float64(chartHeight - marginTop - marginBottom)
	baseline := float64(marginTop) + plotH

	spec := ChartSpec{
		Title:  v.Title,
		YLabel: v.Unit,
		Width:  chartWidth,
		Height: chartHeight,
		Legend: []LegendEntry{
			{Label: v.MetricA, Fill: barFills[0]},
			{Label: v.MetricB, Fill: barFills[1]},
		},
		AxisX: marginLeft,
		AxisY: baseline,
		PlotW: plotW,
		PlotH: plotH,
	}

	maxVal := 0.0
	for _, row := range v.Rows {
		maxVal = math.Max(maxVal, math.Max(row.A, row.B))
	}
	top := niceCeil(maxVal)
	if top == 0 {
		top = 1
	}

	for i := 0; i <= yTickCount; i++ {
		value := top * float64(i) / yTickCount
		spec.YTicks = append(spec.YTicks, YTick{
			Y:     baseline - plotH*float64(i)/yTickCount,
			Label: trimFloat(value),
		})
	}

	if len(v.Rows) == 0 {
		return spec
	}

	groupW := plotW / float64(len(v.Rows))
	barW := groupW * 0.35
	for i, row := range v.Rows {
		groupX := float64(marginLeft) + groupW*float64(i)
		for j, value := range [2]float64{row.A, row.B} {
			h := plotH * value / top
			spec.Bars = append(spec.Bars, Bar{
				X:      groupX + groupW*0.1 + barW*float64(j),
				Y:      baseline - h,
				Width:  barW,
				Height: h,
				Fill:   barFills[j],
			})
		}
		spec.XLabels = append(spec.XLabels, XLabel{
			X:    groupX + groupW/2,
			Y:    baseline + 12,
			Text: row.Event,
		})
	}

	return spec
}

// niceCeil rounds up to 1, 2, or 5 times a power of ten, the usual axis
// bound choice.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 0
	}
	exp := math.Floor(math.Log10(v))
	base := math.Pow(10, exp)
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*base {
			return m * base
		}
	}
	return 10 * base
}
