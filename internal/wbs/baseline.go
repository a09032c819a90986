package wbs

import (
	"fmt"
	"math"
	"time"

	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/domain"
)

// CaptureBaseline snapshots budget, duration and dates for every node in
// the working set. The caller assigns the baseline's identity fields (ID,
// author, description); entries are immutable after this call.
func (s *Store) CaptureBaseline(label string, now time.Time) (*domain.Baseline, error) {
	if label == "" {
		return nil, invalid("", "baseline label is required")
	}
	entries := make(map[string]domain.BaselineEntry, len(s.nodes))
	for _, id := range s.order {
		n := s.nodes[id]
		entries[id] = domain.BaselineEntry{
			Budget:       n.Budget,
			DurationDays: n.DurationDays,
			StartDate:    n.StartDate,
			EndDate:      n.EndDate,
		}
	}
	return &domain.Baseline{
		Label:      label,
		CapturedAt: now,
		Entries:    entries,
	}, nil
}

// CompareBaseline returns the delta between a node's current plan fields
// and the values a baseline recorded for it. A node absent from the
// baseline (added after capture) is a wrapped ErrNotFound, never a
// silent zero delta.
func CompareBaseline(n *domain.WBSNode, b *domain.Baseline) (*contract.BaselineDelta, error) {
	entry, ok := b.Entries[n.ID]
	if !ok {
		return nil, fmt.Errorf("node %q in baseline %q: %w", n.ID, b.Label, ErrNotFound)
	}
	return &contract.BaselineDelta{
		NodeID:         n.ID,
		BaselineLabel:  b.Label,
		BudgetDelta:    n.Budget - entry.Budget,
		DurationDelta:  n.DurationDays - entry.DurationDays,
		StartShiftDays: dayShift(entry.StartDate, n.StartDate),
		EndShiftDays:   dayShift(entry.EndDate, n.EndDate),
	}, nil
}

func dayShift(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
