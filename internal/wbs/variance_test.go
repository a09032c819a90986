package wbs

import (
	"testing"
	"time"

	"github.com/pvlab/helios/internal/domain"
	"github.com/stretchr/testify/assert"
)

func varianceNode() *domain.WBSNode {
	return node("1.1", "", 0, domain.KindProject, withMetrics(50, 1000, 400), func(n *domain.WBSNode) {
		n.DurationDays = 10
		n.StartDate = testStart
		n.EndDate = testStart.AddDate(0, 0, 10)
	})
}

func TestPlannedProgress_Windows(t *testing.T) {
	n := varianceNode()

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"before start", testStart.AddDate(0, 0, -1), 0},
		{"at start", testStart, 0},
		{"halfway", testStart.AddDate(0, 0, 5), 50},
		{"after end", testStart.AddDate(0, 0, 11), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PlannedProgress(n, tt.now), 1e-9)
		})
	}
}

func TestPlannedProgress_MilestoneInsideWindow(t *testing.T) {
	n := varianceNode()
	n.DurationDays = 0
	n.EndDate = n.StartDate

	// A zero-duration node is fully planned the moment its date arrives.
	assert.InDelta(t, 100.0, PlannedProgress(n, n.StartDate), 1e-9)
}

func TestScheduleVariance_SignConvention(t *testing.T) {
	n := varianceNode()
	halfway := testStart.AddDate(0, 0, 5)

	n.Progress = 70
	assert.InDelta(t, 20.0, ScheduleVariance(n, halfway), 1e-9, "ahead of schedule is positive")

	n.Progress = 30
	assert.InDelta(t, -20.0, ScheduleVariance(n, halfway), 1e-9, "behind schedule is negative")
}

func TestCostVariance_SignConvention(t *testing.T) {
	n := varianceNode()

	n.Budget, n.ActualCost = 1000, 400
	assert.InDelta(t, 600.0, CostVariance(n), 1e-9, "under budget is positive")

	n.Budget, n.ActualCost = 400, 1000
	assert.InDelta(t, -600.0, CostVariance(n), 1e-9, "over budget is negative")
}

func TestVariance_PureFunctions(t *testing.T) {
	n := varianceNode()
	now := testStart.AddDate(0, 0, 3)

	sv1, sv2 := ScheduleVariance(n, now), ScheduleVariance(n, now)
	cv1, cv2 := CostVariance(n), CostVariance(n)

	assert.Equal(t, sv1, sv2)
	assert.Equal(t, cv1, cv2)
}
