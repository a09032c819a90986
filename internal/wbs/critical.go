package wbs

import (
	"sort"

	"github.com/pvlab/helios/internal/domain"
)

// CriticalPath returns every node flagged critical, ordered ascending by
// start date with ID as the tie-break. A pure read; an empty result is
// valid when nothing is flagged.
func (s *Store) CriticalPath() []*domain.WBSNode {
	out := make([]*domain.WBSNode, 0)
	for _, id := range s.order {
		if s.nodes[id].IsCritical {
			out = append(out, s.nodes[id])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
