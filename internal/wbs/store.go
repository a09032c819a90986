package wbs

import (
	"fmt"
	"sort"

	"github.com/pvlab/helios/internal/domain"
)

// Store is the owned, in-memory working set of WBS nodes: a flat table
// keyed by node ID plus a parent-to-children index. All hierarchy walks
// go through the index; nodes never hold embedded child pointers.
type Store struct {
	nodes    map[string]*domain.WBSNode
	children map[string][]string
	order    []string // ingest order, for stable iteration
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		nodes:    make(map[string]*domain.WBSNode),
		children: make(map[string][]string),
	}
}

// LeafPatch is a partial edit applied to a leaf node. Nil fields are left
// untouched.
type LeafPatch struct {
	Status     *domain.NodeStatus
	Progress   *float64
	ActualCost *float64
}

// Ingest replaces the working set with the given nodes after validating
// every structural and field invariant, then recomputes all derived
// fields. On any error the previous working set is kept unchanged.
func (s *Store) Ingest(nodes []*domain.WBSNode) error {
	next := NewStore()

	for _, n := range nodes {
		if err := n.Validate(); err != nil {
			return invalid(n.ID, "%v", err)
		}
		if _, dup := next.nodes[n.ID]; dup {
			return structural(n.ID, "duplicate node ID")
		}
		next.nodes[n.ID] = n
		next.order = append(next.order, n.ID)
	}

	for _, id := range next.order {
		n := next.nodes[id]
		if n.ParentID == nil {
			if n.Level != 0 {
				return structural(n.ID, "root node must have level 0, got %d", n.Level)
			}
			continue
		}
		if *n.ParentID == n.ID {
			return structural(n.ID, "node is its own parent")
		}
		parent, ok := next.nodes[*n.ParentID]
		if !ok {
			return structural(n.ID, "parent %s does not exist", *n.ParentID)
		}
		if n.Level != parent.Level+1 {
			return structural(n.ID, "level %d does not follow parent level %d", n.Level, parent.Level)
		}
		next.children[parent.ID] = append(next.children[parent.ID], n.ID)
	}

	for _, id := range next.order {
		n := next.nodes[id]
		for _, dep := range n.Dependencies {
			if _, ok := next.nodes[dep]; !ok {
				return structural(n.ID, "dependency %s does not exist", dep)
			}
		}
	}

	next.sortChildren()

	if err := next.Rollup(); err != nil {
		return err
	}

	s.nodes = next.nodes
	s.children = next.children
	s.order = next.order
	return nil
}

// sortChildren orders every child list by OrderIndex, then ID, so
// traversal and rendering are deterministic.
func (s *Store) sortChildren() {
	for parent, kids := range s.children {
		sort.SliceStable(kids, func(i, j int) bool {
			a, b := s.nodes[kids[i]], s.nodes[kids[j]]
			if a.OrderIndex != b.OrderIndex {
				return a.OrderIndex < b.OrderIndex
			}
			return a.ID < b.ID
		})
		s.children[parent] = kids
	}
}

// Node returns the node with the given ID, or a wrapped ErrNotFound.
func (s *Store) Node(id string) (*domain.WBSNode, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %q: %w", id, ErrNotFound)
	}
	return n, nil
}

// Nodes returns all nodes in ingest order.
func (s *Store) Nodes() []*domain.WBSNode {
	out := make([]*domain.WBSNode, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id])
	}
	return out
}

// Children returns the direct children of the given node, ordered by
// OrderIndex then ID.
func (s *Store) Children(id string) []*domain.WBSNode {
	kids := s.children[id]
	out := make([]*domain.WBSNode, 0, len(kids))
	for _, cid := range kids {
		out = append(out, s.nodes[cid])
	}
	return out
}

// Roots returns the nodes without a parent, in ingest order.
func (s *Store) Roots() []*domain.WBSNode {
	var out []*domain.WBSNode
	for _, id := range s.order {
		if s.nodes[id].ParentID == nil {
			out = append(out, s.nodes[id])
		}
	}
	return out
}

// IsLeaf reports whether the node has no children. Unknown IDs count as
// leaves; existence is checked where it matters.
func (s *Store) IsLeaf(id string) bool {
	return len(s.children[id]) == 0
}

// Len returns the number of nodes in the working set.
func (s *Store) Len() int {
	return len(s.nodes)
}

// MutateLeaf applies a status/progress/cost edit to a leaf node and
// recomputes derived fields up the tree. Edits to non-leaf nodes are
// rejected: their progress, cost and budget are rollup-derived and never
// authored directly.
func (s *Store) MutateLeaf(id string, patch LeafPatch) error {
	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("node %q: %w", id, ErrNotFound)
	}
	if !s.IsLeaf(id) {
		return structural(id, "cannot edit derived fields on a non-leaf node")
	}

	if patch.Status != nil && !domain.ValidNodeStatuses[string(*patch.Status)] {
		return invalid(id, "unknown status %q", *patch.Status)
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return invalid(id, "progress %.1f outside [0,100]", *patch.Progress)
	}
	if patch.ActualCost != nil && *patch.ActualCost < 0 {
		return invalid(id, "actual cost must not be negative")
	}

	if patch.Status != nil {
		n.Status = *patch.Status
	}
	if patch.Progress != nil {
		n.Progress = *patch.Progress
	}
	if patch.ActualCost != nil {
		n.ActualCost = *patch.ActualCost
	}

	return s.Rollup()
}
