package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pvlab/helios/internal/cli/formatter"
	"github.com/pvlab/helios/internal/domain"
)

// heliosHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func heliosHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runNodeAddForm collects node fields interactively, pre-filled from
// whatever flags were already set.
func runNodeAddForm(n *domain.WBSNode, start, end *string) error {
	kind := string(n.Kind)
	duration := ""
	if n.DurationDays > 0 {
		duration = strconv.Itoa(n.DurationDays)
	}
	budget := ""
	if n.Budget > 0 {
		budget = strconv.FormatFloat(n.Budget, 'f', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Environmental Testing").
				Value(&n.Name).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Task", "task"),
					huh.NewOption("Phase", "phase"),
					huh.NewOption("Project", "project"),
				).
				Value(&kind),
			dateInput("Start Date (YYYY-MM-DD)", "2026-01-05", start),
			dateInput("End Date (YYYY-MM-DD)", "2026-02-04", end),
			huh.NewInput().
				Title("Duration (days)").
				Placeholder("30").
				Value(&duration).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Budget ($)").
				Placeholder("100000").
				Value(&budget).
				Validate(validateNonNegativeFloat),
			huh.NewInput().
				Title("Assignee").
				Placeholder("Lisa Thompson").
				Value(&n.Assignee),
			huh.NewConfirm().
				Title("Milestone?").
				Value(&n.IsMilestone),
			huh.NewConfirm().
				Title("On the critical path?").
				Value(&n.IsCritical),
		),
	).WithTheme(heliosHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	n.Kind = domain.NodeKind(kind)
	if duration != "" {
		n.DurationDays, _ = strconv.Atoi(duration)
	}
	if budget != "" {
		n.Budget, _ = strconv.ParseFloat(budget, 64)
	}
	if n.IsMilestone {
		n.DurationDays = 0
	}
	return nil
}

// dateInput returns a huh.Input for a date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateDateString)
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDateString(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a non-negative number.
func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative amount")
	}
	return nil
}
