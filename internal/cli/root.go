package cli

import (
	"github.com/pvlab/helios/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	WBS     service.WBSService
	Reports service.ReportService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and the dashboard refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "helios" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "helios",
		Short: "Work breakdown structure tracker for PV test programs",
	}

	root.AddCommand(
		newNodeCmd(app),
		newTreeCmd(app),
		newImportCmd(app),
		newDemoCmd(app),
		newRollupCmd(app),
		newCriticalCmd(app),
		newVarianceCmd(app),
		newBaselineCmd(app),
		newStatusCmd(app),
		newDashboardCmd(app),
	)

	return root
}
