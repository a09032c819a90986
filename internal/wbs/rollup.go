package wbs

// Rollup recomputes every non-leaf node's progress, duration, actual cost
// and budget from its direct children, processing leaves to root so each
// parent sees already-updated children. Leaves are never touched. A
// container node with no children has its derived fields reset to zero
// rather than left stale. Re-running with unchanged leaves is a no-op.
func (s *Store) Rollup() error {
	order, err := s.postOrder()
	if err != nil {
		return err
	}

	for _, id := range order {
		n := s.nodes[id]
		kids := s.children[id]

		if len(kids) == 0 {
			if n.Kind.IsContainer() {
				n.Progress = 0
				n.DurationDays = 0
				n.ActualCost = 0
				n.Budget = 0
			}
			continue
		}

		var progressSum, cost, budget float64
		var duration int
		for _, cid := range kids {
			c := s.nodes[cid]
			progressSum += c.Progress
			duration += c.DurationDays
			cost += c.ActualCost
			budget += c.Budget
		}

		n.Progress = progressSum / float64(len(kids))
		n.DurationDays = duration
		n.ActualCost = cost
		n.Budget = budget
	}

	return nil
}

// postOrder returns node IDs with every child preceding its parent. The
// traversal is iterative over the child index, so a cycle in parent
// links can never loop forever: cyclic nodes are unreachable from any
// root and are reported as a StructuralError instead.
func (s *Store) postOrder() ([]string, error) {
	order := make([]string, 0, len(s.nodes))
	visited := make(map[string]bool, len(s.nodes))

	type frame struct {
		id       string
		expanded bool
	}

	var stack []frame
	for i := len(s.order) - 1; i >= 0; i-- {
		id := s.order[i]
		if s.nodes[id].ParentID == nil {
			stack = append(stack, frame{id: id})
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.expanded {
			stack = stack[:len(stack)-1]
			order = append(order, top.id)
			continue
		}
		top.expanded = true
		if visited[top.id] {
			// A child reachable twice means the index itself is corrupt.
			return nil, structural(top.id, "node reachable through multiple paths")
		}
		visited[top.id] = true
		kids := s.children[top.id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: kids[i]})
		}
	}

	if len(order) != len(s.nodes) {
		for _, id := range s.order {
			if !visited[id] {
				return nil, structural(id, "not reachable from any root (cycle in parent links)")
			}
		}
	}

	return order, nil
}
