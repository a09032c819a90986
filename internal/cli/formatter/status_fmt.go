package formatter

import (
	"fmt"
	"strings"

	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/domain"
)

const statusProgressBarWidth = 10

// FormatStatus formats a StatusReport into a styled CLI dashboard string.
func FormatStatus(report *contract.StatusReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s    %s %s    %s %s\n",
		Dim("Budget"), Bold(Currency(report.TotalBudget)),
		Dim("Spent"), Bold(Currency(report.TotalActualCost)),
		Dim("Cost variance"), SignedCurrency(report.CostVariance)))
	b.WriteString(fmt.Sprintf("%s %s    %s %s\n\n",
		Dim("Progress"), RenderProgress(report.OverallProgress, statusProgressBarWidth),
		Dim("Schedule"), SignedPercent(report.ScheduleVariance)))

	if len(report.Phases) > 0 {
		headers := []string{"PHASE", "STATUS", "PROGRESS", "BUDGET", "ACTUAL", "CV"}
		rows := make([][]string, 0, len(report.Phases))
		for _, p := range report.Phases {
			rows = append(rows, []string{
				Bold(p.Name),
				StatusPill(p.Status),
				RenderProgress(p.Progress, statusProgressBarWidth),
				Currency(p.Budget),
				Currency(p.ActualCost),
				SignedCurrency(p.CostVariance),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	if len(report.Milestones) > 0 {
		b.WriteString(Header("Milestones") + "\n")
		for _, m := range report.Milestones {
			mark := StyleBlue.Render("○")
			if m.Completed {
				mark = StyleGreen.Render("✔")
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n", mark, m.Name, Dim(ShortDate(m.Due))))
		}
		b.WriteString("\n")
	}

	b.WriteString(statusCountsLine(report) + "\n")

	return RenderBox("Project Status", b.String())
}

func statusCountsLine(report *contract.StatusReport) string {
	parts := []string{
		StyleGreen.Render(fmt.Sprintf("%d completed", report.CountsByStatus[domain.StatusCompleted])),
		StyleYellow.Render(fmt.Sprintf("%d in progress", report.CountsByStatus[domain.StatusInProgress])),
		StyleBlue.Render(fmt.Sprintf("%d not started", report.CountsByStatus[domain.StatusNotStarted])),
	}
	if onHold := report.CountsByStatus[domain.StatusOnHold]; onHold > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d on hold", onHold)))
	}
	line := strings.Join(parts, Dim(" · "))
	if report.CriticalCount > 0 {
		line += Dim(" · ") + StyleRed.Render(fmt.Sprintf("%d critical", report.CriticalCount))
	}
	return line
}
