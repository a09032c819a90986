package wbs

import (
	"time"

	"github.com/pvlab/helios/internal/domain"
)

// PlannedProgress is the time-linear expectation of progress for a node
// at the given instant: 0 before the start date, 100 after the end date,
// otherwise elapsed days over planned duration. Zero-duration nodes
// (milestones) are only ever 0 or 100.
func PlannedProgress(n *domain.WBSNode, now time.Time) float64 {
	switch {
	case now.Before(n.StartDate):
		return 0
	case now.After(n.EndDate):
		return 100
	default:
		if n.DurationDays <= 0 {
			return 100
		}
		elapsed := now.Sub(n.StartDate).Hours() / 24
		planned := elapsed / float64(n.DurationDays) * 100
		if planned > 100 {
			planned = 100
		}
		return planned
	}
}

// ScheduleVariance is actual progress minus planned progress in
// percentage points. Positive = ahead of schedule, negative = behind.
// Valid at any level once derived fields are rolled up.
func ScheduleVariance(n *domain.WBSNode, now time.Time) float64 {
	return n.Progress - PlannedProgress(n, now)
}

// CostVariance is budget minus actual cost. Positive = under budget,
// negative = over budget.
func CostVariance(n *domain.WBSNode) float64 {
	return n.Budget - n.ActualCost
}
