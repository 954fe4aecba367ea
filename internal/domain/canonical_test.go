package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tstm wind alias", "TSTM WIND", "THUNDERSTORM WIND"},
		{"plural winds alias", "THUNDERSTORM WINDS", "THUNDERSTORM WIND"},
		{"marine tstm wind alias", "MARINE TSTM WIND", "MARINE THUNDERSTORM WIND"},
		{"wildfire alias", "WILD/FOREST FIRE", "WILDFIRE"},
		{"no alias", "TORNADO", "TORNADO"},
		{"case sensitive", "tstm wind", "tstm wind"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalLabel(tt.input))
		})
	}
}

func TestCanonicalizeRecords(t *testing.T) {
	records := []AnalysisRecord{
		{EventType: "TSTM WIND", Injuries: 1},
		{EventType: "THUNDERSTORM WIND", Injuries: 2},
		{EventType: "TORNADO", Injuries: 3},
	}

	changed := CanonicalizeRecords(records)

	assert.Equal(t, 1, changed)
	assert.Equal(t, "THUNDERSTORM WIND", records[0].EventType)
	assert.Equal(t, "TORNADO", records[2].EventType)

	// Canonicalized labels now merge under grouping.
	groups := GroupByEvent(records)
	assert.Len(t, groups, 2)
	assert.Equal(t, 3.0, groups[0].Injuries)
}
