package contract

import "time"

// VarianceRequest selects the node to analyze. Now overrides the
// evaluation instant for deterministic tests; nil means current UTC time.
type VarianceRequest struct {
	NodeID string
	Now    *time.Time
}

// CaptureBaselineRequest names and attributes a new baseline snapshot.
type CaptureBaselineRequest struct {
	Label       string
	CreatedBy   string
	Description string
}

// StatusRequest parameterizes the project status report. Now overrides
// the evaluation instant for deterministic tests.
type StatusRequest struct {
	Now *time.Time
}
