package domain

type NodeStatus string

const (
	StatusNotStarted NodeStatus = "not_started"
	StatusInProgress NodeStatus = "in_progress"
	StatusCompleted  NodeStatus = "completed"
	StatusOnHold     NodeStatus = "on_hold"
)

type NodeKind string

const (
	KindProject NodeKind = "project"
	KindPhase   NodeKind = "phase"
	KindTask    NodeKind = "task"
)

// ValidNodeStatuses is the canonical set of accepted node status strings.
var ValidNodeStatuses = map[string]bool{
	"not_started": true, "in_progress": true,
	"completed": true, "on_hold": true,
}

// ValidNodeKinds is the canonical set of accepted node kind strings.
var ValidNodeKinds = map[string]bool{
	"project": true, "phase": true, "task": true,
}

// IsContainer reports whether the kind is an aggregating level
// (project or phase) rather than a work-carrying task.
func (k NodeKind) IsContainer() bool {
	return k == KindProject || k == KindPhase
}
