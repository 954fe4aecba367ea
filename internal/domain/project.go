package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Required column names in the source dataset. Other columns may be present
// and are ignored.
const (
	ColEventType  = "EVTYPE"
	ColFatalities = "FATALITIES"
	ColInjuries   = "INJURIES"
	ColPropDmg    = "PROPDMG"
	ColPropDmgExp = "PROPDMGEXP"
	ColCropDmg    = "CROPDMG"
	ColCropDmgExp = "CROPDMGEXP"
)

// RequiredColumns lists the columns the projection needs, in schema order.
var RequiredColumns = []string{
	ColEventType,
	ColFatalities,
	ColInjuries,
	ColPropDmg,
	ColPropDmgExp,
	ColCropDmg,
	ColCropDmgExp,
}

// AnalysisRecord is the five-field projection the aggregator consumes.
// Damage figures are already scaled by their decoded suffix codes. Missing
// numeric values are NaN; a missing label is the empty string.
type AnalysisRecord struct {
	EventType      string
	Fatalities     float64
	Injuries       float64
	PropertyDamage float64
	CropDamage     float64
}

// Complete reports whether every analysis field is present.
func (r AnalysisRecord) Complete() bool {
	return r.EventType != "" &&
		!math.IsNaN(r.Fatalities) &&
		!math.IsNaN(r.Injuries) &&
		!math.IsNaN(r.PropertyDamage) &&
		!math.IsNaN(r.CropDamage)
}

// ProjectionStats counts data-quality findings made while projecting.
// Unmapped code counts include cells whose base figure is zero, even though
// those still scale to zero.
type ProjectionStats struct {
	UnmappedPropCodes int
	UnmappedCropCodes int
	IncompleteRows    int
}

// ProjectTable derives the analysis view from a normalized table: it decodes
// both damage columns and selects the five analysis fields. Rows with any
// missing field are kept and counted, never repaired. A table lacking a
// required column is a structural error.
func ProjectTable(t Table) ([]AnalysisRecord, ProjectionStats, error) {
	idx := make(map[string]int, len(RequiredColumns))
	for _, name := range RequiredColumns {
		i := t.ColumnIndex(name)
		if i < 0 {
			return nil, ProjectionStats{}, fmt.Errorf("missing required column %q", name)
		}
		idx[name] = i
	}

	records := make([]AnalysisRecord, 0, len(t.Rows))
	var stats ProjectionStats

	for _, row := range t.Rows {
		propCode := row[idx[ColPropDmgExp]]
		cropCode := row[idx[ColCropDmgExp]]
		if _, ok := DecodeScale(propCode); !ok {
			stats.UnmappedPropCodes++
		}
		if _, ok := DecodeScale(cropCode); !ok {
			stats.UnmappedCropCodes++
		}

		rec := AnalysisRecord{
			EventType:      row[idx[ColEventType]],
			Fatalities:     parseFloatOrNaN(row[idx[ColFatalities]]),
			Injuries:       parseFloatOrNaN(row[idx[ColInjuries]]),
			PropertyDamage: ScaleMagnitude(parseFloatOrNaN(row[idx[ColPropDmg]]), propCode),
			CropDamage:     ScaleMagnitude(parseFloatOrNaN(row[idx[ColCropDmg]]), cropCode),
		}
		if !rec.Complete() {
			stats.IncompleteRows++
		}
		records = append(records, rec)
	}

	return records, stats, nil
}

// parseFloatOrNaN parses a numeric cell, returning NaN when the cell is
// empty or unparseable so the gap survives into the completeness check.
func parseFloatOrNaN(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
