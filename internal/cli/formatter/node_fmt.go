package formatter

import (
	"fmt"
	"strings"

	"github.com/pvlab/helios/internal/domain"
)

// FormatNodeList renders nodes as a flat table inside a bordered box.
func FormatNodeList(nodes []*domain.WBSNode) string {
	headers := []string{"CODE", "NAME", "KIND", "STATUS", "PROGRESS", "BUDGET", "ACTUAL"}
	rows := make([][]string, 0, len(nodes))

	for _, n := range nodes {
		name := n.Name
		if n.IsMilestone {
			name = MilestoneMark(true) + " " + name
		}
		if n.IsCritical {
			name += " " + CriticalMark(true)
		}

		rows = append(rows, []string{
			StyleDim.Render(n.ID),
			Bold(name),
			KindBadge(n.Kind),
			StatusPill(n.Status),
			RenderProgress(n.Progress, 10),
			Currency(n.Budget),
			Currency(n.ActualCost),
		})
	}

	return RenderBox("Work Breakdown", RenderTable(headers, rows))
}

// FormatNodeInspect renders a detail card for a single node.
func FormatNodeInspect(n *domain.WBSNode) string {
	var b strings.Builder

	title := n.Name
	if n.IsMilestone {
		title = MilestoneMark(true) + " " + title
	}
	b.WriteString(Bold(title) + "  " + StyleDim.Render(n.ID) + "\n\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value))
	}

	field("Kind", KindBadge(n.Kind))
	field("Status", StatusPill(n.Status))
	field("Progress", RenderProgress(n.Progress, 14))
	field("Schedule", DateRange(n.StartDate, n.EndDate)+Dim(fmt.Sprintf("  (%dd)", n.DurationDays)))
	field("Budget", Currency(n.Budget))
	field("Actual", Currency(n.ActualCost))
	field("Variance", SignedCurrency(n.Budget-n.ActualCost))
	if n.Assignee != "" {
		field("Assignee", StyleFg.Render(n.Assignee))
	}
	if len(n.Dependencies) > 0 {
		field("Depends", StyleDim.Render(strings.Join(n.Dependencies, ", ")))
	}
	if n.IsCritical {
		b.WriteString("\n" + StyleRed.Render("▲ on critical path") + "\n")
	}

	return RenderBox("", b.String())
}
