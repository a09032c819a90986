package repository

import (
	"context"
	"testing"

	"github.com/pvlab/helios/internal/domain"
	"github.com/pvlab/helios/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBaselineRepo(db)
	ctx := context.Background()

	b := testutil.NewTestBaseline("original",
		testutil.WithEntry("1.1", domain.BaselineEntry{
			Budget:       300,
			DurationDays: 30,
			StartDate:    testutil.BaseDate,
			EndDate:      testutil.BaseDate.AddDate(0, 0, 30),
		}),
	)
	b.Description = "approved plan"
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByLabel(ctx, "original")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "approved plan", got.Description)
	require.Len(t, got.Entries, 1)
	entry := got.Entries["1.1"]
	assert.InDelta(t, 300.0, entry.Budget, 1e-9)
	assert.Equal(t, 30, entry.DurationDays)
	assert.Equal(t, testutil.BaseDate, entry.StartDate)
}

func TestBaselineRepo_GetByLabel_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBaselineRepo(db)

	_, err := repo.GetByLabel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBaselineRepo_DuplicateLabelRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBaselineRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestBaseline("original")))
	err := repo.Create(ctx, testutil.NewTestBaseline("original"))
	assert.Error(t, err, "labels are unique")
}

func TestBaselineRepo_List_OrderedByCapture(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBaselineRepo(db)
	ctx := context.Background()

	second := testutil.NewTestBaseline("revised")
	second.CapturedAt = testutil.BaseDate.AddDate(0, 1, 0)
	require.NoError(t, repo.Create(ctx, second))

	first := testutil.NewTestBaseline("original")
	require.NoError(t, repo.Create(ctx, first))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "original", list[0].Label)
	assert.Equal(t, "revised", list[1].Label)
	assert.True(t, list[0].CapturedAt.Before(list[1].CapturedAt))
}

func TestBaselineRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBaselineRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestBaseline("original")))
	require.NoError(t, repo.Delete(ctx, "original"))

	_, err := repo.GetByLabel(ctx, "original")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "original"), ErrNotFound)
}
