package repository

import (
	"context"
	"testing"

	"github.com/pvlab/helios/internal/domain"
	"github.com/pvlab/helios/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWBSNodeRepo_ReplaceAll_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWBSNodeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, testutil.NewTestTree()))

	nodes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	got, err := repo.GetByID(ctx, "1.1.2")
	require.NoError(t, err)
	assert.Equal(t, "Task B", got.Name)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.InDelta(t, 50.0, got.Progress, 1e-9)
	assert.InDelta(t, 180.0, got.Budget, 1e-9)
	assert.Equal(t, 20, got.DurationDays)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, "1.1", *got.ParentID)
	assert.Equal(t, testutil.BaseDate.AddDate(0, 0, 10), got.StartDate)
}

func TestWBSNodeRepo_ReplaceAll_SwapsWorkingSet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWBSNodeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, testutil.NewTestTree()))
	require.NoError(t, repo.ReplaceAll(ctx, []*domain.WBSNode{
		testutil.NewTestNode("2", "Other Project", testutil.WithKind(domain.KindProject)),
	}))

	nodes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "2", nodes[0].ID)
}

func TestWBSNodeRepo_Dependencies_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWBSNodeRepo(db)
	ctx := context.Background()

	tree := testutil.NewTestTree()
	tree[3].Dependencies = []string{"1.1.1"}
	require.NoError(t, repo.ReplaceAll(ctx, tree))

	got, err := repo.GetByID(ctx, "1.1.2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.1.1"}, got.Dependencies)
}

func TestWBSNodeRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWBSNodeRepo(db)

	_, err := repo.GetByID(context.Background(), "9.9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWBSNodeRepo_ListChildren_Ordered(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWBSNodeRepo(db)
	ctx := context.Background()

	nodes := []*domain.WBSNode{
		testutil.NewTestNode("1", "Project", testutil.WithKind(domain.KindProject)),
		testutil.NewTestNode("1.2", "Second", testutil.WithKind(domain.KindPhase),
			testutil.WithLevel(1), testutil.WithParent("1"), testutil.WithOrder(2)),
		testutil.NewTestNode("1.1", "First", testutil.WithKind(domain.KindPhase),
			testutil.WithLevel(1), testutil.WithParent("1"), testutil.WithOrder(1)),
	}
	require.NoError(t, repo.ReplaceAll(ctx, nodes))

	kids, err := repo.ListChildren(ctx, "1")
	require.NoError(t, err)
	require.Len(t, kids, 2)
	assert.Equal(t, "1.1", kids[0].ID)
	assert.Equal(t, "1.2", kids[1].ID)
}

func TestWBSNodeRepo_UpsertAll_Overwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWBSNodeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, testutil.NewTestTree()))

	leaf, err := repo.GetByID(ctx, "1.1.2")
	require.NoError(t, err)
	leaf.Progress = 75
	leaf.ActualCost = 250

	require.NoError(t, repo.UpsertAll(ctx, []*domain.WBSNode{leaf}))

	got, err := repo.GetByID(ctx, "1.1.2")
	require.NoError(t, err)
	assert.InDelta(t, 75.0, got.Progress, 1e-9)
	assert.InDelta(t, 250.0, got.ActualCost, 1e-9)
}

func TestWBSNodeRepo_Delete_CascadesToChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWBSNodeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, testutil.NewTestTree()))
	require.NoError(t, repo.Delete(ctx, "1.1"))

	_, err := repo.GetByID(ctx, "1.1.1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWBSNodeRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWBSNodeRepo(db)

	err := repo.Delete(context.Background(), "9.9")
	assert.ErrorIs(t, err, ErrNotFound)
}
