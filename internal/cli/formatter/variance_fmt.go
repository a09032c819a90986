package formatter

import (
	"fmt"
	"strings"

	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/domain"
)

// FormatVariance renders schedule and cost variance for one node.
func FormatVariance(n *domain.WBSNode, v *contract.VarianceResult) string {
	var b strings.Builder

	b.WriteString(Bold(n.Name) + "  " + StyleDim.Render(n.ID) + "\n\n")

	headers := []string{"MEASURE", "VALUE", "READING"}
	rows := [][]string{
		{"Schedule variance", SignedPercent(v.ScheduleVariance), scheduleReading(v.ScheduleVariance)},
		{"Cost variance", SignedCurrency(v.CostVariance), costReading(v.CostVariance)},
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Variance", b.String())
}

// FormatCriticalPath renders the critical-path nodes in schedule order.
func FormatCriticalPath(nodes []*domain.WBSNode) string {
	if len(nodes) == 0 {
		return RenderBox("Critical Path", Dim("No nodes are marked critical."))
	}

	headers := []string{"CODE", "NAME", "WINDOW", "DAYS", "STATUS"}
	rows := make([][]string, 0, len(nodes))
	totalDays := 0

	for _, n := range nodes {
		rows = append(rows, []string{
			StyleDim.Render(n.ID),
			Bold(n.Name),
			DateRange(n.StartDate, n.EndDate),
			fmt.Sprintf("%d", n.DurationDays),
			StatusPill(n.Status),
		})
		totalDays += n.DurationDays
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + StyleRed.Render(fmt.Sprintf("▲ %d nodes", len(nodes))) +
		Dim(fmt.Sprintf(" · %d scheduled days", totalDays)) + "\n")

	return RenderBox("Critical Path", b.String())
}

func scheduleReading(sv float64) string {
	switch {
	case sv > 0:
		return StyleGreen.Render("ahead of schedule")
	case sv < 0:
		return StyleRed.Render("behind schedule")
	default:
		return StyleDim.Render("on schedule")
	}
}

func costReading(cv float64) string {
	switch {
	case cv > 0:
		return StyleGreen.Render("under budget")
	case cv < 0:
		return StyleRed.Render("over budget")
	default:
		return StyleDim.Render("on budget")
	}
}
