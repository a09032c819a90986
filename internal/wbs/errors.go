package wbs

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced node or baseline does not
// exist. Callers wrap it with context and check with errors.Is.
var ErrNotFound = errors.New("not found")

// StructuralError reports an invalid hierarchy: a missing parent, a level
// that does not follow its parent, a cycle in parent links, or an edit
// that would author derived fields directly. It is fatal to the operation
// that detected it; the store is never auto-corrected.
type StructuralError struct {
	NodeID string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("invalid structure: %s", e.Reason)
	}
	return fmt.Sprintf("invalid structure at node %s: %s", e.NodeID, e.Reason)
}

// ValidationError reports an out-of-range or malformed field value,
// rejected at the mutation boundary before it enters the node set.
type ValidationError struct {
	NodeID string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("invalid value: %s", e.Reason)
	}
	return fmt.Sprintf("invalid value for node %s: %s", e.NodeID, e.Reason)
}

func structural(nodeID, format string, args ...any) error {
	return &StructuralError{NodeID: nodeID, Reason: fmt.Sprintf(format, args...)}
}

func invalid(nodeID, format string, args ...any) error {
	return &ValidationError{NodeID: nodeID, Reason: fmt.Sprintf(format, args...)}
}
