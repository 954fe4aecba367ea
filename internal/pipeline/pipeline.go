// Package pipeline orchestrates the one-shot report run:
// load, normalize, decode/project, aggregate, rank.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
)

// TableLoader reads the source dataset into an in-memory table.
type TableLoader interface {
	Load(path string) (domain.Table, error)
}

// Options tune one run. TopN must be positive.
type Options struct {
	TopN               int
	StrictQuality      bool
	CanonicalizeLabels bool
}

// Result carries everything the reporter needs from one run.
type Result struct {
	Health      []domain.EventAggregate
	Economic    []domain.EventAggregate
	GroupCount  int
	Audit       domain.QualityAudit
	GeneratedAt time.Time
}

// Pipeline executes the load-clean-aggregate sequence exactly once per call.
// Data flows strictly forward; no stage mutates an earlier stage's output
// except the in-place whitespace trim during normalization.
type Pipeline struct {
	loader  TableLoader
	logger  *slog.Logger
	metrics *observability.Metrics
	opts    Options
}

// New creates a Pipeline with the given loader and observability.
func New(loader TableLoader, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	return &Pipeline{
		loader:  loader,
		logger:  logger,
		metrics: metrics,
		opts:    opts,
	}
}

// Run executes the full pipeline against the dataset at path.
// Structural load errors abort immediately. Data-quality findings are
// counted and reported; they abort only in strict mode.
func (p *Pipeline) Run(ctx context.Context, path string) (Result, error) {
	var result Result

	table, err := p.timedLoad(path)
	if err != nil {
		return result, err
	}
	result.Audit.RowsLoaded = table.NumRows()
	p.metrics.RowsLoaded.Add(float64(table.NumRows()))

	if err := ctx.Err(); err != nil {
		return result, err
	}

	p.normalize(table, &result.Audit)

	records, err := p.project(table, &result.Audit)
	if err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if p.opts.CanonicalizeLabels {
		changed := domain.CanonicalizeRecords(records)
		p.logger.Info("event labels canonicalized", "records_relabeled", changed)
	}

	p.aggregate(records, &result)
	result.GeneratedAt = domain.Now()

	if !result.Audit.Clean() {
		p.logger.Warn("data-quality findings",
			"duplicate_rows", result.Audit.DuplicateRows,
			"unmapped_property_codes", result.Audit.UnmappedPropCodes,
			"unmapped_crop_codes", result.Audit.UnmappedCropCodes,
			"incomplete_rows", result.Audit.IncompleteRows,
		)
		if p.opts.StrictQuality {
			return result, fmt.Errorf("strict quality mode: %w", result.Audit.Err())
		}
	}

	return result, nil
}

func (p *Pipeline) timedLoad(path string) (domain.Table, error) {
	start := time.Now()
	table, err := p.loader.Load(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("load stage: %w", err)
	}
	p.metrics.StageDuration.WithLabelValues("load").Observe(time.Since(start).Seconds())
	return table, nil
}

// normalize trims every cell in place, then counts (without dropping)
// byte-identical duplicate rows.
func (p *Pipeline) normalize(table domain.Table, audit *domain.QualityAudit) {
	start := time.Now()

	domain.NormalizeTable(table)
	audit.DuplicateRows = domain.CountDuplicateRows(table)
	p.metrics.DuplicateRows.Add(float64(audit.DuplicateRows))

	p.metrics.StageDuration.WithLabelValues("normalize").Observe(time.Since(start).Seconds())
	p.logger.Debug("normalize complete", "duplicate_rows", audit.DuplicateRows)
}

// project decodes both damage columns and derives the analysis view.
func (p *Pipeline) project(table domain.Table, audit *domain.QualityAudit) ([]domain.AnalysisRecord, error) {
	start := time.Now()

	records, stats, err := domain.ProjectTable(table)
	if err != nil {
		return nil, fmt.Errorf("project stage: %w", err)
	}
	audit.UnmappedPropCodes = stats.UnmappedPropCodes
	audit.UnmappedCropCodes = stats.UnmappedCropCodes
	audit.IncompleteRows = stats.IncompleteRows

	p.metrics.UnmappedScaleCodes.WithLabelValues("property").Add(float64(stats.UnmappedPropCodes))
	p.metrics.UnmappedScaleCodes.WithLabelValues("crop").Add(float64(stats.UnmappedCropCodes))
	p.metrics.IncompleteRows.Add(float64(stats.IncompleteRows))

	p.metrics.StageDuration.WithLabelValues("project").Observe(time.Since(start).Seconds())
	return records, nil
}

// aggregate groups by event label and ranks both impact views.
func (p *Pipeline) aggregate(records []domain.AnalysisRecord, result *Result) {
	start := time.Now()

	groups := domain.GroupByEvent(records)
	result.GroupCount = len(groups)
	result.Health = domain.TopByHealth(groups, p.opts.TopN)
	result.Economic = domain.TopByEconomic(groups, p.opts.TopN)

	p.metrics.EventGroups.Set(float64(len(groups)))
	p.metrics.StageDuration.WithLabelValues("aggregate").Observe(time.Since(start).Seconds())
	p.logger.Info("aggregation complete",
		"event_groups", len(groups),
		"top_n", p.opts.TopN,
	)
}
