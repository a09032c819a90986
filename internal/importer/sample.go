package importer

import (
	"time"

	"github.com/pvlab/helios/internal/domain"
)

// SampleProject returns the demo WBS for a solar-PV module testing and
// certification engagement, scheduled relative to base. Rollup fills in the
// container metrics, so phases and the project root carry only structural and
// scheduling fields here. Milestones are point events pinned to their due
// dates with zero duration.
func SampleProject(base time.Time) []*domain.WBSNode {
	now := time.Now().UTC()
	order := 0

	node := func(id string, parent string, level int, kind domain.NodeKind, name string) *domain.WBSNode {
		var parentID *string
		if parent != "" {
			parentID = &parent
		}
		order++
		return &domain.WBSNode{
			ID:         id,
			ParentID:   parentID,
			Name:       name,
			Level:      level,
			Kind:       kind,
			Status:     domain.StatusNotStarted,
			OrderIndex: order,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	task := func(id, parent, name string, startDay, days int, assignee string, status domain.NodeStatus, progress, budget, cost float64, deps ...string) *domain.WBSNode {
		n := node(id, parent, 2, domain.KindTask, name)
		n.DurationDays = days
		n.StartDate = base.AddDate(0, 0, startDay)
		n.EndDate = base.AddDate(0, 0, startDay+days)
		n.Assignee = assignee
		n.Status = status
		n.Progress = progress
		n.Budget = budget
		n.ActualCost = cost
		n.Dependencies = deps
		return n
	}

	milestone := func(id, parent, name string, day int, assignee string, status domain.NodeStatus, progress, budget, cost float64, deps ...string) *domain.WBSNode {
		n := task(id, parent, name, day, 0, assignee, status, progress, budget, cost, deps...)
		n.IsMilestone = true
		return n
	}

	root := node("1", "", 0, domain.KindProject, "Solar PV Module Testing & Certification Project")
	root.Assignee = "Project Manager"
	root.Status = domain.StatusInProgress
	root.StartDate = base
	root.EndDate = base.AddDate(0, 0, 180)

	phase1 := node("1.1", "1", 1, domain.KindPhase, "Phase 1: Planning & Setup")
	phase1.Assignee = "Planning Team"
	phase1.Status = domain.StatusCompleted
	phase1.IsCritical = true
	phase1.StartDate = base
	phase1.EndDate = base.AddDate(0, 0, 30)

	phase2 := node("1.2", "1", 1, domain.KindPhase, "Phase 2: Testing Execution")
	phase2.Assignee = "Testing Team"
	phase2.Status = domain.StatusInProgress
	phase2.IsCritical = true
	phase2.StartDate = base.AddDate(0, 0, 30)
	phase2.EndDate = base.AddDate(0, 0, 120)
	phase2.Dependencies = []string{"1.1"}

	phase3 := node("1.3", "1", 1, domain.KindPhase, "Phase 3: Analysis & Reporting")
	phase3.Assignee = "Analysis Team"
	phase3.IsCritical = true
	phase3.StartDate = base.AddDate(0, 0, 120)
	phase3.EndDate = base.AddDate(0, 0, 180)
	phase3.Dependencies = []string{"1.2"}

	nodes := []*domain.WBSNode{root, phase1, phase2, phase3,
		task("1.1.1", "1.1", "Project Charter & Scope Definition", 0, 5, "Sarah Johnson", domain.StatusCompleted, 100, 15000, 14500),
		task("1.1.2", "1.1", "Resource Planning & Allocation", 5, 10, "Michael Chen", domain.StatusCompleted, 100, 20000, 19500, "1.1.1"),
		task("1.1.3", "1.1", "Test Method Selection & Standards Review", 5, 10, "David Wilson", domain.StatusCompleted, 100, 25000, 23000, "1.1.1"),
		milestone("1.1.4", "1.1", "Equipment Setup & Calibration", 30, "Robert Martinez", domain.StatusCompleted, 100, 15000, 15000, "1.1.2"),
		task("1.2.1", "1.2", "Visual Inspection & Documentation", 30, 15, "Emily Rodriguez", domain.StatusCompleted, 100, 30000, 28000, "1.1.4"),
		task("1.2.2", "1.2", "Electrical Performance Testing (I-V Curve)", 45, 25, "James Anderson", domain.StatusCompleted, 100, 80000, 75000, "1.2.1"),
		task("1.2.3", "1.2", "Environmental Testing (Thermal, Humidity)", 70, 30, "Lisa Thompson", domain.StatusInProgress, 70, 100000, 65000, "1.2.2"),
		milestone("1.2.4", "1.2", "Mechanical Load & Stress Testing", 120, "Kevin Brown", domain.StatusNotStarted, 0, 90000, 0, "1.2.3"),
		task("1.3.1", "1.3", "Data Analysis & Statistical Evaluation", 120, 20, "Amanda White", domain.StatusNotStarted, 0, 40000, 0, "1.2.4"),
		task("1.3.2", "1.3", "Compliance Verification & Standards Check", 140, 15, "Christopher Lee", domain.StatusNotStarted, 0, 35000, 0, "1.3.1"),
		task("1.3.3", "1.3", "Final Report Generation & Documentation", 155, 20, "Sarah Johnson", domain.StatusNotStarted, 0, 30000, 0, "1.3.2"),
		milestone("1.3.4", "1.3", "Client Review & Project Closure", 180, "Project Manager", domain.StatusNotStarted, 0, 20000, 0, "1.3.3"),
	}

	for _, n := range nodes {
		if n.Kind == domain.KindTask {
			n.IsCritical = n.ID != "1.1.3"
		}
	}
	root.IsCritical = true

	return nodes
}
