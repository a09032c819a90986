package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pvlab/helios/internal/cli/formatter"
	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/domain"
	"github.com/pvlab/helios/internal/wbs"
	"github.com/spf13/cobra"
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	nodes  []*domain.WBSNode
	report *contract.StatusReport
	err    error
}

type dashboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Critical key.Binding
	Variance key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Critical: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "critical only")),
		Variance: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "variance")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dashboardModel is a split-pane TUI: a navigable node tree on the left
// and detail for the selected node on the right.
type dashboardModel struct {
	app  *App
	keys dashboardKeyMap

	nodes        []*domain.WBSNode
	report       *contract.StatusReport
	cursor       int
	critOnly     bool
	showVariance bool
	loading      bool
	err          error
	width        int
}

func newDashboardModel(app *App) *dashboardModel {
	return &dashboardModel{
		app:     app,
		keys:    newDashboardKeyMap(),
		loading: true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		nodes, err := m.app.WBS.Tree(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		report, err := m.app.Reports.Status(ctx, contract.StatusRequest{})
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{nodes: nodes, report: report}
	}
}

func (m *dashboardModel) visible() []*domain.WBSNode {
	if !m.critOnly {
		return m.nodes
	}
	out := make([]*domain.WBSNode, 0, len(m.nodes))
	for _, n := range m.nodes {
		if n.IsCritical {
			out = append(out, n)
		}
	}
	return out
}

func (m *dashboardModel) clampCursor() {
	if max := len(m.visible()) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.nodes = msg.nodes
			m.report = msg.report
			m.clampCursor()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor--
			m.clampCursor()
		case key.Matches(msg, m.keys.Down):
			m.cursor++
			m.clampCursor()
		case key.Matches(msg, m.keys.Critical):
			m.critOnly = !m.critOnly
			m.clampCursor()
		case key.Matches(msg, m.keys.Variance):
			m.showVariance = !m.showVariance
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m *dashboardModel) View() string {
	if m.loading {
		return formatter.Dim("Loading...") + "\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	visible := m.visible()
	if len(visible) == 0 {
		return formatter.Dim("No nodes yet. Run 'helios demo' first.") + "\n"
	}

	left := m.renderList(visible)
	selected := visible[m.cursor]
	right := formatter.FormatNodeInspect(selected)
	if m.showVariance {
		now := time.Now().UTC()
		right = formatter.FormatVariance(selected, &contract.VarianceResult{
			NodeID:           selected.ID,
			ScheduleVariance: wbs.ScheduleVariance(selected, now),
			CostVariance:     wbs.CostVariance(selected),
		})
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var b strings.Builder
	b.WriteString(formatter.Header("Helios Dashboard") + "\n\n")
	if m.report != nil {
		b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
			formatter.Dim("Budget"), formatter.Currency(m.report.TotalBudget),
			formatter.Dim("Spent"), formatter.Currency(m.report.TotalActualCost),
			formatter.Dim("Progress"), formatter.Percent(m.report.OverallProgress)))
	}
	b.WriteString(panes + "\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *dashboardModel) renderList(visible []*domain.WBSNode) string {
	var b strings.Builder
	for i, n := range visible {
		indent := strings.Repeat("  ", n.Level)
		var line string
		if i == m.cursor {
			line = indent + formatter.StyleHeader.Render("> ") + formatter.Bold(n.ID+" "+n.Name)
		} else {
			line = indent + "  " + formatter.StyleDim.Render(n.ID) + " " + n.Name
		}
		if n.IsCritical {
			line += " " + formatter.CriticalMark(true)
		}
		b.WriteString(line + "\n")
	}
	if m.critOnly {
		b.WriteString("\n" + formatter.StyleRed.Render("▲ critical path only") + "\n")
	}
	return b.String()
}

func (m *dashboardModel) renderHelp() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Critical, m.keys.Variance, m.keys.Refresh, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, formatter.Dim(b.Help().Key+" "+b.Help().Desc))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}
			p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
