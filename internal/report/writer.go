package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Artifact is the JSON form of one ranked view, long-form rows included,
// for downstream tooling.
type Artifact struct {
	GeneratedAt time.Time `json:"generated_at"`
	Title       string    `json:"title"`
	Unit        string    `json:"unit"`
	Rows        []LongRow `json:"rows"`
}

// Writer renders and writes all report artifacts into one output directory:
// report.md, one SVG chart and one JSON table per view.
type Writer struct {
	renderer *Renderer
	logger   *slog.Logger
	outDir   string
}

// NewWriter creates a Writer targeting outDir.
func NewWriter(outDir string, renderer *Renderer, logger *slog.Logger) *Writer {
	return &Writer{
		renderer: renderer,
		logger:   logger,
		outDir:   outDir,
	}
}

// Write renders every artifact. The first failure aborts: a partial report
// directory is better surfaced than papered over.
func (w *Writer) Write(meta Meta, health, economic View) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	md, err := w.renderer.RenderMarkdown(meta, health, economic)
	if err != nil {
		return err
	}
	if err := w.writeFile("report.md", []byte(md)); err != nil {
		return err
	}

	for _, view := range []View{health, economic} {
		svg, err := w.renderer.RenderChartSVG(BuildChart(view))
		if err != nil {
			return err
		}
		if err := w.writeFile(view.Slug+".svg", []byte(svg)); err != nil {
			return err
		}

		artifact := Artifact{
			GeneratedAt: meta.GeneratedAt.UTC(),
			Title:       view.Title,
			Unit:        view.Unit,
			Rows:        view.Long,
		}
		data, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s artifact: %w", view.Slug, err)
		}
		if err := w.writeFile(view.Slug+".json", append(data, '\n')); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeFile(name string, data []byte) error {
	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	w.logger.Info("artifact written", "path", path, "bytes", len(data))
	return nil
}
