package wbs

import (
	"testing"

	"github.com/pvlab/helios/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriticalPath_SortedByStartDate(t *testing.T) {
	nodes := []*domain.WBSNode{
		node("1", "", 0, domain.KindProject),
		node("1.1", "1", 1, domain.KindTask, func(n *domain.WBSNode) {
			n.IsCritical = true
			n.StartDate = testStart.AddDate(0, 0, 30)
			n.EndDate = testStart.AddDate(0, 0, 40)
		}),
		node("1.2", "1", 1, domain.KindTask, func(n *domain.WBSNode) {
			n.IsCritical = true
			n.StartDate = testStart
		}),
		node("1.3", "1", 1, domain.KindTask), // not critical
	}

	s := NewStore()
	require.NoError(t, s.Ingest(nodes))

	path := s.CriticalPath()
	require.Len(t, path, 2)
	assert.Equal(t, "1.2", path[0].ID)
	assert.Equal(t, "1.1", path[1].ID)
	for i := 1; i < len(path); i++ {
		assert.False(t, path[i].StartDate.Before(path[i-1].StartDate),
			"start dates must be non-decreasing")
	}
}

func TestCriticalPath_TieBreaksByID(t *testing.T) {
	nodes := []*domain.WBSNode{
		node("1", "", 0, domain.KindProject),
		node("1.2", "1", 1, domain.KindTask, func(n *domain.WBSNode) { n.IsCritical = true }),
		node("1.1", "1", 1, domain.KindTask, func(n *domain.WBSNode) { n.IsCritical = true }),
	}

	s := NewStore()
	require.NoError(t, s.Ingest(nodes))

	path := s.CriticalPath()
	require.Len(t, path, 2)
	assert.Equal(t, "1.1", path[0].ID)
	assert.Equal(t, "1.2", path[1].ID)
}

func TestCriticalPath_EmptyWhenNothingFlagged(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest(smallTree()))

	assert.Empty(t, s.CriticalPath())
}
