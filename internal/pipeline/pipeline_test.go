package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

// --- mocks ---

type mockLoader struct {
	table domain.Table
	err   error
	calls int
}

func (m *mockLoader) Load(_ string) (domain.Table, error) {
	m.calls++
	if m.err != nil {
		return domain.Table{}, m.err
	}
	// Rows are deep-copied so normalization in one run cannot leak into the
	// next: each Load models a fresh read of the immutable source file.
	rows := make([][]string, len(m.table.Rows))
	for i, row := range m.table.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return domain.Table{Columns: m.table.Columns, Rows: rows}, nil
}

func stormTable(rows ...[]string) domain.Table {
	return domain.Table{
		Columns: []string{"STATE", "EVTYPE", "FATALITIES", "INJURIES", "PROPDMG", "PROPDMGEXP", "CROPDMG", "CROPDMGEXP"},
		Rows:    rows,
	}
}

func newPipeline(loader pipeline.TableLoader, opts pipeline.Options) *pipeline.Pipeline {
	return pipeline.New(loader, slog.Default(), observability.NewMetrics(), opts)
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	// The three-record walkthrough: "tornado " trims to "tornado", which
	// stays a distinct label from "TORNADO" under exact-match grouping.
	loader := &mockLoader{table: stormTable(
		[]string{"TX", "TORNADO", "5", "10", "1", "K", "0", ""},
		[]string{"TX", "tornado ", "2", "0", "0", "", "0", ""},
		[]string{"OK", "FLOOD", "0", "0", "2", "B", "0", ""},
	)}

	p := newPipeline(loader, pipeline.Options{TopN: 10})

	result, err := p.Run(context.Background(), "storms.csv")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Audit.RowsLoaded)
	assert.True(t, result.Audit.Clean())
	assert.Equal(t, 3, result.GroupCount)

	require.NotEmpty(t, result.Economic)
	assert.Equal(t, "FLOOD", result.Economic[0].EventType)
	assert.Equal(t, 2e9, result.Economic[0].EconomicTotal())

	require.NotEmpty(t, result.Health)
	assert.Equal(t, "TORNADO", result.Health[0].EventType)
	assert.Equal(t, 15.0, result.Health[0].HealthTotal())
}

func TestPipeline_Run_LoadErrorIsFatal(t *testing.T) {
	loader := &mockLoader{err: errors.New("inconsistent row shape")}
	p := newPipeline(loader, pipeline.Options{TopN: 10})

	_, err := p.Run(context.Background(), "storms.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load stage")
}

func TestPipeline_Run_QualityFindings(t *testing.T) {
	table := stormTable(
		[]string{"TX", "TORNADO", "5", "10", "1", "K", "0", ""},
		[]string{"TX", "TORNADO", "5", "10", "1", "K", "0", ""}, // duplicate
		[]string{"TX", "HAIL", "0", "0", "12.5", "G", "0", ""},  // unmapped property code, incomplete
		[]string{"TX", "FLOOD", "", "0", "1", "K", "0", ""},     // missing fatalities
	)

	t.Run("default mode reports and proceeds", func(t *testing.T) {
		loader := &mockLoader{table: table}
		p := newPipeline(loader, pipeline.Options{TopN: 10})

		result, err := p.Run(context.Background(), "storms.csv")
		require.NoError(t, err)

		assert.Equal(t, 1, result.Audit.DuplicateRows)
		assert.Equal(t, 1, result.Audit.UnmappedPropCodes)
		assert.Equal(t, 0, result.Audit.UnmappedCropCodes)
		assert.Equal(t, 2, result.Audit.IncompleteRows)
		assert.NotEmpty(t, result.Health)
	})

	t.Run("strict mode fails the run", func(t *testing.T) {
		loader := &mockLoader{table: table}
		p := newPipeline(loader, pipeline.Options{TopN: 10, StrictQuality: true})

		_, err := p.Run(context.Background(), "storms.csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strict quality mode")
		assert.Contains(t, err.Error(), "1 duplicate rows")
	})
}

func TestPipeline_Run_CanonicalizeLabels(t *testing.T) {
	table := stormTable(
		[]string{"TX", "TSTM WIND", "1", "0", "0", "", "0", ""},
		[]string{"TX", "THUNDERSTORM WIND", "2", "0", "0", "", "0", ""},
	)

	t.Run("off by default", func(t *testing.T) {
		loader := &mockLoader{table: table}
		p := newPipeline(loader, pipeline.Options{TopN: 10})

		result, err := p.Run(context.Background(), "storms.csv")
		require.NoError(t, err)
		assert.Equal(t, 2, result.GroupCount)
	})

	t.Run("merges aliases when enabled", func(t *testing.T) {
		loader := &mockLoader{table: table}
		p := newPipeline(loader, pipeline.Options{TopN: 10, CanonicalizeLabels: true})

		result, err := p.Run(context.Background(), "storms.csv")
		require.NoError(t, err)
		assert.Equal(t, 1, result.GroupCount)
		assert.Equal(t, 3.0, result.Health[0].Fatalities)
	})
}

func TestPipeline_Run_TopNTruncation(t *testing.T) {
	rows := [][]string{
		{"TX", "A", "1", "0", "0", "", "0", ""},
		{"TX", "B", "2", "0", "0", "", "0", ""},
		{"TX", "C", "3", "0", "0", "", "0", ""},
		{"TX", "D", "4", "0", "0", "", "0", ""},
	}
	loader := &mockLoader{table: stormTable(rows...)}
	p := newPipeline(loader, pipeline.Options{TopN: 2})

	result, err := p.Run(context.Background(), "storms.csv")
	require.NoError(t, err)

	require.Len(t, result.Health, 2)
	assert.Equal(t, "D", result.Health[0].EventType)
	assert.Equal(t, "C", result.Health[1].EventType)
	assert.Equal(t, 4, result.GroupCount)
}

func TestPipeline_Run_Idempotent(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })

	loader := &mockLoader{table: stormTable(
		[]string{"TX", "TORNADO", "5", "10", "1", "K", "0", ""},
		[]string{"TX", "FLOOD", "1", "1", "2", "B", "1", "M"},
		[]string{"TX", "HAIL", "0", "4", "3", "M", "2", "K"},
	)}
	p := newPipeline(loader, pipeline.Options{TopN: 10})

	first, err := p.Run(context.Background(), "storms.csv")
	require.NoError(t, err)
	second, err := p.Run(context.Background(), "storms.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, loader.calls)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("runs differ (-first +second):\n%s", diff)
	}
}

func TestPipeline_Run_CancelledContext(t *testing.T) {
	loader := &mockLoader{table: stormTable(
		[]string{"TX", "TORNADO", "5", "10", "1", "K", "0", ""},
	)}
	p := newPipeline(loader, pipeline.Options{TopN: 10})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, "storms.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
