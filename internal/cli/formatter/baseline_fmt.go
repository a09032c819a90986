package formatter

import (
	"fmt"
	"strings"

	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/domain"
)

// FormatBaselineList renders captured baselines as a table.
func FormatBaselineList(baselines []*domain.Baseline) string {
	if len(baselines) == 0 {
		return RenderBox("Baselines", Dim("No baselines captured yet."))
	}

	headers := []string{"LABEL", "CAPTURED", "BY", "DESCRIPTION"}
	rows := make([][]string, 0, len(baselines))

	for _, b := range baselines {
		by := b.CreatedBy
		if by == "" {
			by = Dim("--")
		}
		desc := b.Description
		if desc == "" {
			desc = Dim("--")
		}
		rows = append(rows, []string{
			Bold(b.Label),
			ShortDate(b.CapturedAt),
			by,
			desc,
		})
	}

	return RenderBox("Baselines", RenderTable(headers, rows))
}

// FormatBaselineCapture confirms a freshly captured baseline.
func FormatBaselineCapture(b *domain.Baseline) string {
	line := StyleGreen.Render("✔ ") + fmt.Sprintf("Baseline %s captured at %s (%d nodes)",
		Bold(b.Label), ShortDate(b.CapturedAt), len(b.Entries))
	return line
}

// FormatBaselineDelta renders the drift of one node against a baseline.
func FormatBaselineDelta(n *domain.WBSNode, d *contract.BaselineDelta) string {
	var b strings.Builder

	b.WriteString(Bold(n.Name) + "  " + StyleDim.Render(n.ID) + "\n")
	b.WriteString(Dim("against baseline ") + StylePurple.Render(d.BaselineLabel) + "\n\n")

	headers := []string{"FIELD", "DRIFT"}
	rows := [][]string{
		{"Budget", SignedCurrency(d.BudgetDelta)},
		{"Duration", SignedDays(d.DurationDelta)},
		{"Start date", shiftReading(d.StartShiftDays)},
		{"End date", shiftReading(d.EndShiftDays)},
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Baseline Drift", b.String())
}

func shiftReading(days int) string {
	switch {
	case days > 0:
		return StyleRed.Render(fmt.Sprintf("slipped %dd later", days))
	case days < 0:
		return StyleGreen.Render(fmt.Sprintf("pulled %dd earlier", -days))
	default:
		return StyleDim.Render("unchanged")
	}
}
