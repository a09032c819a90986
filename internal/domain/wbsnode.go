package domain

import (
	"fmt"
	"time"
)

// WBSNode is a single element of the work breakdown structure. The ID is
// the dotted WBS code ("1", "1.2", "1.2.3") and doubles as the external
// identifier; hierarchy is carried by ParentID plus Level, never parsed
// out of the code itself.
type WBSNode struct {
	ID           string
	ParentID     *string
	Name         string
	Level        int // 0=project, 1=phase, 2=task, deeper for subtasks
	DurationDays int
	StartDate    time.Time
	EndDate      time.Time
	Assignee     string
	Status       NodeStatus
	Progress     float64 // 0-100; derived on non-leaf nodes
	Budget       float64 // derived on non-leaf nodes
	ActualCost   float64 // derived on non-leaf nodes
	Kind         NodeKind
	Dependencies []string
	IsMilestone  bool
	IsCritical   bool
	OrderIndex   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks field-level constraints on a single node. Error messages
// carry no node identifier; callers add that context. Structural
// constraints (parent existence, level continuity, cycles) are the
// engine's responsibility and are not checked here.
func (n *WBSNode) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node ID is required")
	}
	if n.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !ValidNodeKinds[string(n.Kind)] {
		return fmt.Errorf("unknown kind %q", n.Kind)
	}
	if !ValidNodeStatuses[string(n.Status)] {
		return fmt.Errorf("unknown status %q", n.Status)
	}
	if n.Level < 0 {
		return fmt.Errorf("level must not be negative")
	}
	if n.Progress < 0 || n.Progress > 100 {
		return fmt.Errorf("progress %.1f outside [0,100]", n.Progress)
	}
	if n.DurationDays < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if n.Budget < 0 {
		return fmt.Errorf("budget must not be negative")
	}
	if n.ActualCost < 0 {
		return fmt.Errorf("actual cost must not be negative")
	}
	if n.IsMilestone && n.DurationDays != 0 {
		return fmt.Errorf("milestone must have zero duration")
	}
	if !n.EndDate.IsZero() && !n.StartDate.IsZero() && n.EndDate.Before(n.StartDate) {
		return fmt.Errorf("end date before start date")
	}
	return nil
}
