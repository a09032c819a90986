package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// Currency formats an amount as dollars with thousands separators,
// e.g. $1,234,500.
func Currency(amount float64) string {
	negative := amount < 0
	whole := int64(math.Round(math.Abs(amount)))

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// SignedCurrency formats a variance amount with an explicit sign and
// favorable/unfavorable coloring: positive green, negative red, zero dim.
func SignedCurrency(amount float64) string {
	switch {
	case amount > 0:
		return StyleGreen.Render("+" + Currency(amount))
	case amount < 0:
		return StyleRed.Render(Currency(amount))
	default:
		return StyleDim.Render(Currency(0))
	}
}

// Percent formats a 0-100 percentage with one decimal place.
func Percent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// SignedPercent formats a percentage-point variance with an explicit sign
// and favorable/unfavorable coloring.
func SignedPercent(pct float64) string {
	text := fmt.Sprintf("%+.1f pts", pct)
	switch {
	case pct > 0:
		return StyleGreen.Render(text)
	case pct < 0:
		return StyleRed.Render(text)
	default:
		return StyleDim.Render("0.0 pts")
	}
}

// SignedDays formats a day count with an explicit sign, e.g. "+3d".
func SignedDays(days int) string {
	if days == 0 {
		return StyleDim.Render("0d")
	}
	return fmt.Sprintf("%+dd", days)
}

// DateRange formats a start/end pair like "Jan 5 – Feb 4, 2026".
func DateRange(start, end time.Time) string {
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s – %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

// ShortDate formats a date like "Jan 5, 2026".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
