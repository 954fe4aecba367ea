package domain

import "sort"

// EventAggregate holds the summed metrics for one distinct event label.
// Immutable once computed; consumed only by ranking and reporting.
type EventAggregate struct {
	EventType      string
	Fatalities     float64
	Injuries       float64
	PropertyDamage float64
	CropDamage     float64
}

// HealthTotal is the combined population-health impact.
func (a EventAggregate) HealthTotal() float64 {
	return a.Fatalities + a.Injuries
}

// EconomicTotal is the combined economic impact in dollars.
func (a EventAggregate) EconomicTotal() float64 {
	return a.PropertyDamage + a.CropDamage
}

// GroupByEvent sums analysis records by exact event-label equality.
// Grouping is case- and whitespace-sensitive after normalization: no fuzzy
// matching of near-duplicate spellings. Groups appear in first-encounter
// order, which later stable sorts rely on for tie-breaking.
func GroupByEvent(records []AnalysisRecord) []EventAggregate {
	index := make(map[string]int, len(records))
	groups := make([]EventAggregate, 0, len(records)/4)

	for _, rec := range records {
		i, ok := index[rec.EventType]
		if !ok {
			i = len(groups)
			index[rec.EventType] = i
			groups = append(groups, EventAggregate{EventType: rec.EventType})
		}
		groups[i].Fatalities += rec.Fatalities
		groups[i].Injuries += rec.Injuries
		groups[i].PropertyDamage += rec.PropertyDamage
		groups[i].CropDamage += rec.CropDamage
	}

	return groups
}

// TopByHealth returns the n aggregates with the highest health totals,
// descending. Ties keep group-encounter order (stable sort).
func TopByHealth(groups []EventAggregate, n int) []EventAggregate {
	return topBy(groups, n, EventAggregate.HealthTotal)
}

// TopByEconomic returns the n aggregates with the highest economic totals,
// descending. Ties keep group-encounter order (stable sort).
func TopByEconomic(groups []EventAggregate, n int) []EventAggregate {
	return topBy(groups, n, EventAggregate.EconomicTotal)
}

func topBy(groups []EventAggregate, n int, total func(EventAggregate) float64) []EventAggregate {
	ranked := make([]EventAggregate, len(groups))
	copy(ranked, groups)

	sort.SliceStable(ranked, func(i, j int) bool {
		return total(ranked[i]) > total(ranked[j])
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
