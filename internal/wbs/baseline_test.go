package wbs

import (
	"testing"
	"time"

	"github.com/pvlab/helios/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureBaseline_SnapshotsEveryNode(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest(smallTree()))

	capturedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b, err := s.CaptureBaseline("original", capturedAt)
	require.NoError(t, err)

	assert.Equal(t, "original", b.Label)
	assert.Equal(t, capturedAt, b.CapturedAt)
	require.Len(t, b.Entries, 4)

	phase := b.Entries["1.1"]
	assert.Equal(t, 30, phase.DurationDays)
	assert.InDelta(t, 300.0, phase.Budget, 1e-9)
}

func TestCaptureBaseline_LabelRequired(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest(smallTree()))

	_, err := s.CaptureBaseline("", time.Now())
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCaptureBaseline_ImmutableAgainstLaterEdits(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest(smallTree()))

	b, err := s.CaptureBaseline("original", time.Now())
	require.NoError(t, err)
	before := b.Entries["1.1"]

	cost := 999.0
	require.NoError(t, s.MutateLeaf("1.1.2", LeafPatch{ActualCost: &cost}))

	assert.Equal(t, before, b.Entries["1.1"], "captured entries must not track the store")
}

func TestCompareBaseline_Deltas(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest(smallTree()))

	b, err := s.CaptureBaseline("original", time.Now())
	require.NoError(t, err)

	n, err := s.Node("1.1.2")
	require.NoError(t, err)
	n.Budget += 50
	n.DurationDays += 3
	n.StartDate = n.StartDate.AddDate(0, 0, 7)
	n.EndDate = n.EndDate.AddDate(0, 0, 10)

	delta, err := CompareBaseline(n, b)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, delta.BudgetDelta, 1e-9)
	assert.Equal(t, 3, delta.DurationDelta)
	assert.Equal(t, 7, delta.StartShiftDays)
	assert.Equal(t, 10, delta.EndShiftDays)
}

func TestCompareBaseline_ZeroDeltaWhenUnchanged(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest(smallTree()))

	b, err := s.CaptureBaseline("original", time.Now())
	require.NoError(t, err)

	n, err := s.Node("1.1.1")
	require.NoError(t, err)

	delta, err := CompareBaseline(n, b)
	require.NoError(t, err)
	assert.Zero(t, delta.BudgetDelta)
	assert.Zero(t, delta.DurationDelta)
	assert.Zero(t, delta.StartShiftDays)
	assert.Zero(t, delta.EndShiftDays)
}

func TestCompareBaseline_NodeAddedAfterCapture(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest(smallTree()))

	b, err := s.CaptureBaseline("original", time.Now())
	require.NoError(t, err)

	// "1.2.1" joins the plan after the baseline was frozen.
	later := node("1.2.1", "", 0, domain.KindTask)

	_, err = CompareBaseline(later, b)
	assert.ErrorIs(t, err, ErrNotFound)
}
