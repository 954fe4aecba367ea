// Package report reshapes ranked aggregates into display form and renders
// the Markdown report, SVG charts, and JSON artifacts.
package report

import "github.com/couchcryptid/storm-impact-report/internal/domain"

// Row is one wide-form table row: one event, two metric columns, and their
// total. Economic rows carry values already scaled for display.
type Row struct {
	Event string
	A     float64
	B     float64
	Total float64
}

// LongRow is one row of the long-form reshape: one event crossed with one
// metric. Grouped-bar rendering consumes this form.
type LongRow struct {
	Event  string  `json:"event"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// View is a ranked top-N table prepared for rendering, in both wide and
// long form. Row order is the ranking order and must be preserved.
type View struct {
	Title   string
	Slug    string
	MetricA string
	MetricB string
	Unit    string
	Rows    []Row
	Long    []LongRow
}

// NewHealthView builds the population-health view from the ranked health
// aggregates. Values are plain counts of people.
func NewHealthView(ranked []domain.EventAggregate) View {
	v := View{
		Title:   "Most harmful event types to population health",
		Slug:    "health_impact",
		MetricA: "Fatalities",
		MetricB: "Injuries",
		Unit:    "people",
	}
	for _, agg := range ranked {
		v.Rows = append(v.Rows, Row{
			Event: agg.EventType,
			A:     agg.Fatalities,
			B:     agg.Injuries,
			Total: agg.HealthTotal(),
		})
	}
	v.Long = reshape(v)
	return v
}

// NewEconomicView builds the economic view from the ranked economic
// aggregates, with dollar values scaled to billions for display.
func NewEconomicView(ranked []domain.EventAggregate) View {
	const billion = 1e9
	v := View{
		Title:   "Event types with the greatest economic consequences",
		Slug:    "economic_impact",
		MetricA: "Property damage",
		MetricB: "Crop damage",
		Unit:    "billion USD",
	}
	for _, agg := range ranked {
		v.Rows = append(v.Rows, Row{
			Event: agg.EventType,
			A:     agg.PropertyDamage / billion,
			B:     agg.CropDamage / billion,
			Total: agg.EconomicTotal() / billion,
		})
	}
	v.Long = reshape(v)
	return v
}

// reshape converts wide rows to long form, event-major, keeping ranking
// order: for each event, one row per metric.
func reshape(v View) []LongRow {
	long := make([]LongRow, 0, 2*len(v.Rows))
	for _, row := range v.Rows {
		long = append(long,
			LongRow{Event: row.Event, Metric: v.MetricA, Value: row.A},
			LongRow{Event: row.Event, Metric: v.MetricB, Value: row.B},
		)
	}
	return long
}
