package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisTable(rows ...[]string) Table {
	return Table{
		Columns: []string{"STATE", "EVTYPE", "FATALITIES", "INJURIES", "PROPDMG", "PROPDMGEXP", "CROPDMG", "CROPDMGEXP"},
		Rows:    rows,
	}
}

func TestProjectTable(t *testing.T) {
	t.Run("derives scaled analysis records", func(t *testing.T) {
		table := analysisTable(
			[]string{"TX", "TORNADO", "5", "10", "1", "K", "0", ""},
			[]string{"OK", "FLOOD", "0", "0", "2", "B", "1.5", "M"},
		)

		records, stats, err := ProjectTable(table)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, AnalysisRecord{
			EventType:      "TORNADO",
			Fatalities:     5,
			Injuries:       10,
			PropertyDamage: 1000,
			CropDamage:     0,
		}, records[0])
		assert.Equal(t, 2e9, records[1].PropertyDamage)
		assert.Equal(t, 1.5e6, records[1].CropDamage)
		assert.Equal(t, ProjectionStats{}, stats)
	})

	t.Run("missing required column is a structural error", func(t *testing.T) {
		table := Table{
			Columns: []string{"EVTYPE", "FATALITIES"},
			Rows:    [][]string{{"TORNADO", "5"}},
		}
		_, _, err := ProjectTable(table)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "INJURIES")
	})

	t.Run("counts unmapped codes per damage column", func(t *testing.T) {
		table := analysisTable(
			[]string{"TX", "HAIL", "0", "0", "12.5", "G", "1", "K"},
			[]string{"TX", "HAIL", "0", "0", "1", "K", "3", "9"},
			[]string{"TX", "HAIL", "0", "0", "0", "G", "0", ""},
		)

		records, stats, err := ProjectTable(table)
		require.NoError(t, err)

		assert.Equal(t, 2, stats.UnmappedPropCodes)
		assert.Equal(t, 1, stats.UnmappedCropCodes)

		// Nonzero base with an unmapped code is undefined; zero base still
		// scales to zero.
		assert.True(t, math.IsNaN(records[0].PropertyDamage))
		assert.True(t, math.IsNaN(records[1].CropDamage))
		assert.Equal(t, 0.0, records[2].PropertyDamage)
	})

	t.Run("counts incomplete rows without repairing them", func(t *testing.T) {
		table := analysisTable(
			[]string{"TX", "", "1", "0", "1", "K", "0", ""},        // missing label
			[]string{"TX", "FLOOD", "", "0", "1", "K", "0", ""},    // missing fatalities
			[]string{"TX", "FLOOD", "x", "0", "1", "K", "0", ""},   // unparseable fatalities
			[]string{"TX", "FLOOD", "1", "0", "5", "G", "0", ""},   // undefined property damage
			[]string{"TX", "FLOOD", "1", "0", "1", "K", "2", "K"},  // complete
		)

		records, stats, err := ProjectTable(table)
		require.NoError(t, err)

		assert.Equal(t, 4, stats.IncompleteRows)
		assert.Len(t, records, 5)
		assert.True(t, records[4].Complete())
	})
}

func TestAnalysisRecordComplete(t *testing.T) {
	complete := AnalysisRecord{EventType: "TORNADO", Fatalities: 1, Injuries: 2, PropertyDamage: 3, CropDamage: 4}
	assert.True(t, complete.Complete())

	missingLabel := complete
	missingLabel.EventType = ""
	assert.False(t, missingLabel.Complete())

	missingValue := complete
	missingValue.CropDamage = math.NaN()
	assert.False(t, missingValue.Complete())
}
