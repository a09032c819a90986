package cli

import (
	"context"
	"fmt"

	"github.com/pvlab/helios/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the breakdown as an indented tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := app.WBS.Tree(context.Background())
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No nodes yet. Try 'helios demo' or 'helios import'.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s", formatter.FormatWBSTree(nodes))
			return nil
		},
	}
}
