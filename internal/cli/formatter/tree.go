package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pvlab/helios/internal/domain"
)

// TreeItem is one row of a rendered WBS hierarchy.
type TreeItem struct {
	Code      string // dotted WBS code, e.g. "1.2.3"
	Title     string
	Level     int
	IsLast    bool
	Status    domain.NodeStatus
	Critical  bool
	Milestone bool
	Badge     string // right-aligned detail, e.g. "60% · $300,000"
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders TreeItems as an indented tree with box-drawing
// connectors. Completed nodes are dimmed with a green check, in-progress
// nodes highlighted, critical-path nodes carry a red marker, and badges
// are right-aligned past the widest row.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	maxWidth := 0

	for idx, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix.WriteString(treePipe)
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		title := StyleDim.Render(item.Code+" ") + item.Title
		marker := ""

		switch item.Status {
		case domain.StatusCompleted:
			marker = StyleGreen.Render("✔ ")
			title = Dim(item.Code + " " + item.Title)
		case domain.StatusInProgress:
			marker = StyleYellowBold.Render("▶ ")
			title = StyleDim.Render(item.Code+" ") + StyleYellowBold.Render(item.Title)
		case domain.StatusOnHold:
			marker = StyleDim.Render("⊘ ")
		}
		if item.Milestone {
			marker = StylePurple.Render("◆ ") + marker
		}

		line := prefix.String() + marker + title
		if item.Critical {
			line += " " + StyleRed.Render("▲")
		}
		contents[idx] = line

		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for idx, item := range items {
		line := contents[idx]
		if item.Badge != "" {
			pad := maxWidth - lipgloss.Width(line)
			if pad < 0 {
				pad = 0
			}
			line += strings.Repeat(" ", pad) + "  " + StyleBlue.Render("[ "+item.Badge+" ]")
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}
