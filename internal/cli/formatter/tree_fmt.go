package formatter

import (
	"fmt"

	"github.com/pvlab/helios/internal/domain"
)

// FormatWBSTree renders a depth-first node list (parents before children,
// siblings in order) as a connected tree. The caller supplies the order;
// this function only derives connector shapes and badges.
func FormatWBSTree(nodes []*domain.WBSNode) string {
	items := make([]TreeItem, len(nodes))
	for i, n := range nodes {
		items[i] = TreeItem{
			Code:      n.ID,
			Title:     n.Name,
			Level:     n.Level,
			IsLast:    isLastSibling(nodes, i),
			Status:    n.Status,
			Critical:  n.IsCritical,
			Milestone: n.IsMilestone,
			Badge:     fmt.Sprintf("%3.0f%% · %s", n.Progress, Currency(n.Budget)),
		}
	}
	return RenderTree(items)
}

// isLastSibling reports whether no later node in DFS order shares the
// same level before the walk pops above it.
func isLastSibling(nodes []*domain.WBSNode, i int) bool {
	for j := i + 1; j < len(nodes); j++ {
		if nodes[j].Level < nodes[i].Level {
			return true
		}
		if nodes[j].Level == nodes[i].Level {
			return false
		}
	}
	return true
}
