package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/pvlab/helios/internal/domain"
)

// BaseDate anchors all fixture schedules so tests are deterministic.
var BaseDate = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

// NodeOption mutates a fixture node before it is returned.
type NodeOption func(*domain.WBSNode)

func WithParent(id string) NodeOption {
	return func(n *domain.WBSNode) {
		p := id
		n.ParentID = &p
	}
}

func WithLevel(level int) NodeOption {
	return func(n *domain.WBSNode) { n.Level = level }
}

func WithKind(k domain.NodeKind) NodeOption {
	return func(n *domain.WBSNode) { n.Kind = k }
}

func WithStatus(s domain.NodeStatus) NodeOption {
	return func(n *domain.WBSNode) { n.Status = s }
}

func WithProgress(p float64) NodeOption {
	return func(n *domain.WBSNode) { n.Progress = p }
}

func WithBudget(budget, actualCost float64) NodeOption {
	return func(n *domain.WBSNode) {
		n.Budget = budget
		n.ActualCost = actualCost
	}
}

func WithSchedule(start time.Time, durationDays int) NodeOption {
	return func(n *domain.WBSNode) {
		n.StartDate = start
		n.EndDate = start.AddDate(0, 0, durationDays)
		n.DurationDays = durationDays
	}
}

func WithCritical() NodeOption {
	return func(n *domain.WBSNode) { n.IsCritical = true }
}

func WithMilestone() NodeOption {
	return func(n *domain.WBSNode) {
		n.IsMilestone = true
		n.DurationDays = 0
		n.EndDate = n.StartDate
	}
}

func WithDependencies(ids ...string) NodeOption {
	return func(n *domain.WBSNode) { n.Dependencies = ids }
}

func WithOrder(idx int) NodeOption {
	return func(n *domain.WBSNode) { n.OrderIndex = idx }
}

// NewTestNode builds a task-level leaf node with sane defaults; options
// adjust it into phases, projects, milestones and so on.
func NewTestNode(id, name string, opts ...NodeOption) *domain.WBSNode {
	now := BaseDate
	n := &domain.WBSNode{
		ID:           id,
		Name:         name,
		Level:        0,
		Kind:         domain.KindTask,
		Status:       domain.StatusNotStarted,
		DurationDays: 10,
		StartDate:    BaseDate,
		EndDate:      BaseDate.AddDate(0, 0, 10),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewTestTree builds a minimal valid hierarchy: one project, one phase,
// two tasks with distinct metrics.
func NewTestTree() []*domain.WBSNode {
	return []*domain.WBSNode{
		NewTestNode("1", "Project", WithKind(domain.KindProject), WithLevel(0)),
		NewTestNode("1.1", "Phase 1", WithKind(domain.KindPhase), WithLevel(1), WithParent("1")),
		NewTestNode("1.1.1", "Task A", WithLevel(2), WithParent("1.1"),
			WithStatus(domain.StatusCompleted), WithProgress(100),
			WithBudget(120, 100), WithSchedule(BaseDate, 10)),
		NewTestNode("1.1.2", "Task B", WithLevel(2), WithParent("1.1"),
			WithStatus(domain.StatusInProgress), WithProgress(50),
			WithBudget(180, 200), WithSchedule(BaseDate.AddDate(0, 0, 10), 20)),
	}
}

// BaselineOption mutates a fixture baseline.
type BaselineOption func(*domain.Baseline)

func WithEntry(nodeID string, e domain.BaselineEntry) BaselineOption {
	return func(b *domain.Baseline) { b.Entries[nodeID] = e }
}

// NewTestBaseline builds an empty baseline with the given label.
func NewTestBaseline(label string, opts ...BaselineOption) *domain.Baseline {
	b := &domain.Baseline{
		ID:         uuid.New().String(),
		Label:      label,
		CapturedAt: BaseDate,
		CreatedBy:  "test",
		Entries:    make(map[string]domain.BaselineEntry),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
