package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableGap = 2

// RenderTable renders an aligned table with a dim separator under the
// header row. Column widths are the maximum visible width in each column;
// lipgloss.Width ignores ANSI sequences so styled cells align correctly.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder

	styledHeaders := make([]string, len(headers))
	for i, h := range headers {
		styledHeaders[i] = StyleHeader.Render(h)
	}
	writeRow(&b, styledHeaders, widths)

	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, separators, widths)

	for _, row := range rows {
		writeRow(&b, row, widths)
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			pad := w - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+tableGap))
		}
	}
	b.WriteString("\n")
}
