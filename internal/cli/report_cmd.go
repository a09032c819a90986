package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pvlab/helios/internal/cli/formatter"
	"github.com/pvlab/helios/internal/contract"
	"github.com/spf13/cobra"
)

func newRollupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rollup",
		Short: "Recompute derived progress, duration, and cost figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.WBS.Rollup(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Rollup complete.")
			return nil
		},
	}
}

func newCriticalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "critical",
		Short: "Show the critical path in schedule order",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := app.WBS.CriticalPath(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatCriticalPath(nodes))
			return nil
		},
	}
}

func newVarianceCmd(app *App) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "variance CODE",
		Short: "Show schedule and cost variance for a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.VarianceRequest{NodeID: args[0]}
			if asOf != "" {
				t, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid as-of date %q: %w", asOf, err)
				}
				req.Now = &t
			}

			v, err := app.WBS.Variance(ctx, req)
			if err != nil {
				return err
			}
			n, err := app.WBS.Get(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatVariance(n, v))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Evaluate schedule variance at this date (YYYY-MM-DD)")

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the project performance summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.StatusRequest{}
			if asOf != "" {
				t, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid as-of date %q: %w", asOf, err)
				}
				req.Now = &t
			}

			report, err := app.Reports.Status(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatStatus(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Evaluate schedule figures at this date (YYYY-MM-DD)")

	return cmd
}
