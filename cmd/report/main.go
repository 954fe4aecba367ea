// Command report runs the storm-impact analysis pipeline once: it loads the
// NOAA storm dataset, cleans and aggregates it, and writes the report
// artifacts (Markdown tables, SVG charts, JSON views, metrics textfile) to
// the output directory.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/couchcryptid/storm-impact-report/internal/adapter/csvfile"
	"github.com/couchcryptid/storm-impact-report/internal/config"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
	"github.com/couchcryptid/storm-impact-report/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	loader := csvfile.NewLoader(logger)
	p := pipeline.New(loader, logger, metrics, pipeline.Options{
		TopN:               cfg.TopN,
		StrictQuality:      cfg.StrictQuality,
		CanonicalizeLabels: cfg.CanonicalizeLabels,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := p.Run(ctx, cfg.InputPath)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	writer := report.NewWriter(cfg.OutputDir, report.NewRenderer(), logger)
	meta := report.Meta{
		GeneratedAt: result.GeneratedAt,
		RowsLoaded:  result.Audit.RowsLoaded,
		GroupCount:  result.GroupCount,
		TopN:        cfg.TopN,
		Audit:       result.Audit,
	}
	health := report.NewHealthView(result.Health)
	economic := report.NewEconomicView(result.Economic)

	if err := writer.Write(meta, health, economic); err != nil {
		logger.Error("report writing failed", "error", err)
		os.Exit(1)
	}

	metricsPath := filepath.Join(cfg.OutputDir, "storm_report.prom")
	if err := metrics.WriteTextfile(metricsPath); err != nil {
		logger.Warn("metrics textfile not written", "error", err)
	}

	logger.Info("report complete",
		"output_dir", cfg.OutputDir,
		"rows", result.Audit.RowsLoaded,
		"event_groups", result.GroupCount,
	)
}
