package observability

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the Prometheus counters, gauges, and histograms for one
// report run. A one-shot batch job has nothing to scrape, so each Metrics
// carries its own registry and the run exports it as a textfile at the end
// (node_exporter textfile-collector convention).
type Metrics struct {
	registry *prometheus.Registry

	RowsLoaded     prometheus.Counter
	DuplicateRows  prometheus.Counter
	IncompleteRows prometheus.Counter
	EventGroups    prometheus.Gauge

	// UnmappedScaleCodes is labeled by damage column: property or crop.
	UnmappedScaleCodes *prometheus.CounterVec

	// StageDuration is labeled by pipeline stage: load, normalize, project,
	// aggregate, report.
	StageDuration *prometheus.HistogramVec
}

// NewMetrics creates all pipeline metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "rows_loaded_total",
			Help:      "Total rows read from the source dataset.",
		}),
		DuplicateRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "duplicate_rows_total",
			Help:      "Rows byte-identical to an earlier row after normalization.",
		}),
		IncompleteRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "incomplete_rows_total",
			Help:      "Rows with a missing value among the five analysis fields.",
		}),
		EventGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_report",
			Name:      "event_groups",
			Help:      "Distinct event labels after grouping.",
		}),
		UnmappedScaleCodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "unmapped_scale_codes_total",
			Help:      "Damage cells whose magnitude suffix code is outside the closed alphabet.",
		}, []string{"column"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storm_report",
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of each pipeline stage.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),
	}

	m.registry.MustRegister(
		m.RowsLoaded,
		m.DuplicateRows,
		m.IncompleteRows,
		m.EventGroups,
		m.UnmappedScaleCodes,
		m.StageDuration,
	)

	return m
}

// WriteTextfile exports the run's metrics in Prometheus text exposition
// format, for pickup by a textfile collector or ad-hoc inspection.
func (m *Metrics) WriteTextfile(path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return fmt.Errorf("encode metric family %q: %w", fam.GetName(), err)
		}
	}
	return nil
}
