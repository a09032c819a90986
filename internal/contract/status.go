package contract

import (
	"time"

	"github.com/pvlab/helios/internal/domain"
)

// StatusReport is the project-level performance summary assembled by the
// report service after a rollup. Totals aggregate over root nodes.
type StatusReport struct {
	GeneratedAt      time.Time
	TotalBudget      float64
	TotalActualCost  float64
	OverallProgress  float64
	CostVariance     float64
	CostVariancePct  float64
	ScheduleVariance float64
	CountsByStatus   map[domain.NodeStatus]int
	CriticalCount    int
	Phases           []PhaseSummary
	Milestones       []MilestoneSummary
}

// PhaseSummary is a per-phase rollup line in the status report.
type PhaseSummary struct {
	NodeID           string
	Name             string
	Status           domain.NodeStatus
	Progress         float64
	Budget           float64
	ActualCost       float64
	CostVariance     float64
	ScheduleVariance float64
}

// MilestoneSummary is one milestone row in the status report.
type MilestoneSummary struct {
	NodeID    string
	Name      string
	Due       time.Time
	Completed bool
}
