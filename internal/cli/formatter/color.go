package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pvlab/helios/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored status indicator for a WBS node status.
func StatusPill(status domain.NodeStatus) string {
	switch status {
	case domain.StatusNotStarted:
		return StyleBlue.Render("○ Not Started")
	case domain.StatusInProgress:
		return StyleYellow.Render("▶ In Progress")
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.StatusOnHold:
		return StyleDim.Render("⊘ On Hold")
	default:
		return StyleDim.Render(string(status))
	}
}

// KindBadge returns a capitalized, purple-styled node kind label.
func KindBadge(k domain.NodeKind) string {
	label := string(k)
	if label == "" {
		return StyleDim.Render("--")
	}
	label = strings.ToUpper(label[:1]) + label[1:]
	return StylePurple.Render(label)
}

// CriticalMark returns a red marker for critical-path nodes, empty otherwise.
func CriticalMark(critical bool) string {
	if critical {
		return StyleRed.Render("▲")
	}
	return ""
}

// MilestoneMark returns a diamond marker for milestones, empty otherwise.
func MilestoneMark(milestone bool) string {
	if milestone {
		return StylePurple.Render("◆")
	}
	return ""
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
