package cli

import (
	"context"
	"fmt"

	"github.com/pvlab/helios/internal/cli/formatter"
	"github.com/pvlab/helios/internal/contract"
	"github.com/spf13/cobra"
)

func newBaselineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Capture and compare plan baselines",
	}

	cmd.AddCommand(
		newBaselineCaptureCmd(app),
		newBaselineListCmd(app),
		newBaselineCompareCmd(app),
	)

	return cmd
}

func newBaselineCaptureCmd(app *App) *cobra.Command {
	var label, by, notes string

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Freeze the current plan under a label",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.WBS.CaptureBaseline(context.Background(), contract.CaptureBaselineRequest{
				Label:       label,
				CreatedBy:   by,
				Description: notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatBaselineCapture(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Baseline label, e.g. contract-award")
	cmd.Flags().StringVar(&by, "by", "", "Who captured the baseline")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form description")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func newBaselineListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List captured baselines",
		RunE: func(cmd *cobra.Command, args []string) error {
			baselines, err := app.WBS.ListBaselines(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatBaselineList(baselines))
			return nil
		},
	}
}

func newBaselineCompareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compare CODE LABEL",
		Short: "Show how a node drifted from a baseline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			delta, err := app.WBS.CompareBaseline(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			n, err := app.WBS.Get(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatBaselineDelta(n, delta))
			return nil
		},
	}
}
