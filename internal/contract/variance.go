package contract

// VarianceResult carries both variance figures for a single node,
// computed from its current (rolled-up) state.
type VarianceResult struct {
	NodeID string
	// ScheduleVariance is actual progress minus the time-linear planned
	// progress, in percentage points. Positive = ahead of schedule.
	ScheduleVariance float64
	// CostVariance is budget minus actual cost. Positive = under budget.
	CostVariance float64
}

// BaselineDelta is the difference between a node's current plan fields
// and the values stored for it in a baseline. All deltas are current
// minus baseline.
type BaselineDelta struct {
	NodeID        string
	BaselineLabel string
	BudgetDelta   float64
	DurationDelta int
	// StartShiftDays and EndShiftDays are date movements in whole days;
	// positive means the date slipped later than the baseline.
	StartShiftDays int
	EndShiftDays   int
}
