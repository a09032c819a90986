package importer

import (
	"fmt"
	"time"

	"github.com/pvlab/helios/internal/domain"
)

// Convert transforms a validated ImportSchema into domain nodes ready for
// ingestion. Call ValidateImportSchema first; Convert assumes the schema is
// valid apart from parent-chain depth, which it still guards.
func Convert(schema *ImportSchema) ([]*domain.WBSNode, error) {
	now := time.Now().UTC()

	parents := make(map[string]*string, len(schema.Nodes))
	for _, n := range schema.Nodes {
		parents[n.ID] = n.ParentID
	}

	nodes := make([]*domain.WBSNode, 0, len(schema.Nodes))
	for i, n := range schema.Nodes {
		level, err := deriveLevel(n.ID, parents)
		if err != nil {
			return nil, err
		}

		start, err := time.Parse("2006-01-02", n.StartDate)
		if err != nil {
			return nil, fmt.Errorf("node %s: parsing start_date: %w", n.ID, err)
		}
		end, err := time.Parse("2006-01-02", n.EndDate)
		if err != nil {
			return nil, fmt.Errorf("node %s: parsing end_date: %w", n.ID, err)
		}

		status := domain.NodeStatus(n.Status)
		if n.Status == "" {
			status = domain.StatusNotStarted
		}

		order := n.Order
		if order == 0 {
			order = i
		}

		nodes = append(nodes, &domain.WBSNode{
			ID:           n.ID,
			ParentID:     n.ParentID,
			Name:         n.Name,
			Level:        level,
			DurationDays: n.DurationDays,
			StartDate:    start,
			EndDate:      end,
			Assignee:     n.Assignee,
			Status:       status,
			Progress:     n.Progress,
			Budget:       n.Budget,
			ActualCost:   n.ActualCost,
			Kind:         domain.NodeKind(n.Kind),
			Dependencies: append([]string(nil), n.Dependencies...),
			IsMilestone:  n.IsMilestone,
			IsCritical:   n.IsCritical,
			OrderIndex:   order,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	return nodes, nil
}

func deriveLevel(id string, parents map[string]*string) (int, error) {
	level := 0
	cur := id
	for {
		parent := parents[cur]
		if parent == nil {
			return level, nil
		}
		level++
		if level > len(parents) {
			return 0, fmt.Errorf("node %s: parent chain forms a cycle", id)
		}
		cur = *parent
	}
}
