package domain

import "time"

// Baseline is a frozen snapshot of planned schedule and cost, captured
// once and never mutated afterwards. Entries are keyed by WBS node ID;
// nodes added after capture are deliberately absent.
type Baseline struct {
	ID          string
	Label       string
	CapturedAt  time.Time
	CreatedBy   string
	Description string
	Entries     map[string]BaselineEntry
}

// BaselineEntry holds the snapshotted fields for one node.
type BaselineEntry struct {
	Budget       float64
	DurationDays int
	StartDate    time.Time
	EndDate      time.Time
}
