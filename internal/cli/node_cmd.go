package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pvlab/helios/internal/cli/formatter"
	"github.com/pvlab/helios/internal/domain"
	"github.com/pvlab/helios/internal/wbs"
	"github.com/spf13/cobra"
)

func newNodeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage WBS nodes",
	}

	cmd.AddCommand(
		newNodeAddCmd(app),
		newNodeUpdateCmd(app),
		newNodeInspectCmd(app),
		newNodeRemoveCmd(app),
		newNodeListCmd(app),
	)

	return cmd
}

func newNodeAddCmd(app *App) *cobra.Command {
	var (
		parent, name, kind, start, end, assignee string
		deps                                     []string
		duration, order                          int
		budget                                   float64
		milestone, critical, interactive         bool
	)

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Add a node to the breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			n := &domain.WBSNode{
				ID:           args[0],
				Name:         name,
				Kind:         domain.NodeKind(kind),
				DurationDays: duration,
				Assignee:     assignee,
				Status:       domain.StatusNotStarted,
				Budget:       budget,
				Dependencies: deps,
				IsMilestone:  milestone,
				IsCritical:   critical,
				OrderIndex:   order,
			}
			if parent != "" {
				n.ParentID = &parent
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("interactive mode requires a terminal")
				}
				if err := runNodeAddForm(n, &start, &end); err != nil {
					return err
				}
			}

			var err error
			n.StartDate, err = time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			n.EndDate, err = time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			existing, err := app.WBS.Tree(ctx)
			if err != nil {
				return err
			}
			n.Level = levelUnder(existing, n.ParentID)

			if err := app.WBS.Ingest(ctx, append(existing, n)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added node %s %q\n", n.ID, n.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent node code (empty for a root)")
	cmd.Flags().StringVar(&name, "name", "", "Node name")
	cmd.Flags().StringVar(&kind, "kind", "task", "Node kind (project, phase, task)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Planned duration in days")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Responsible person or team")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Planned budget in dollars")
	cmd.Flags().StringSliceVar(&deps, "deps", nil, "Predecessor node codes")
	cmd.Flags().BoolVar(&milestone, "milestone", false, "Mark as milestone (zero duration)")
	cmd.Flags().BoolVar(&critical, "critical", false, "Mark as on the critical path")
	cmd.Flags().IntVar(&order, "order", 0, "Sibling sort order")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields with a form")

	return cmd
}

func newNodeUpdateCmd(app *App) *cobra.Command {
	var (
		status     string
		progress   float64
		actualCost float64
	)

	cmd := &cobra.Command{
		Use:   "update CODE",
		Short: "Update status, progress, or actual cost on a leaf node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch wbs.LeafPatch
			if cmd.Flags().Changed("status") {
				s := domain.NodeStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("progress") {
				patch.Progress = &progress
			}
			if cmd.Flags().Changed("actual-cost") {
				patch.ActualCost = &actualCost
			}
			if patch.Status == nil && patch.Progress == nil && patch.ActualCost == nil {
				return fmt.Errorf("nothing to update: pass --status, --progress, or --actual-cost")
			}

			if err := app.WBS.MutateLeaf(context.Background(), args[0], patch); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated node %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (not_started, in_progress, completed, on_hold)")
	cmd.Flags().Float64Var(&progress, "progress", 0, "New progress (0-100)")
	cmd.Flags().Float64Var(&actualCost, "actual-cost", 0, "New actual cost in dollars")

	return cmd
}

func newNodeInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect CODE",
		Short: "Show node details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.WBS.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatNodeInspect(n))
			return nil
		},
	}
}

func newNodeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CODE",
		Short: "Remove a node from the breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			existing, err := app.WBS.Tree(ctx)
			if err != nil {
				return err
			}

			kept := make([]*domain.WBSNode, 0, len(existing))
			found := false
			for _, n := range existing {
				if n.ID == args[0] {
					found = true
					continue
				}
				kept = append(kept, n)
			}
			if !found {
				return fmt.Errorf("node %s: %w", args[0], wbs.ErrNotFound)
			}

			if err := app.WBS.Ingest(ctx, kept); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed node %s\n", args[0])
			return nil
		},
	}
}

func newNodeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all nodes as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := app.WBS.Tree(context.Background())
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No nodes yet. Try 'helios demo' or 'helios import'.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatNodeList(nodes))
			return nil
		},
	}
}

// levelUnder computes the level a new child of parentID would occupy.
func levelUnder(nodes []*domain.WBSNode, parentID *string) int {
	if parentID == nil {
		return 0
	}
	for _, n := range nodes {
		if n.ID == *parentID {
			return n.Level + 1
		}
	}
	// Unknown parent surfaces as a structural error during Ingest.
	return 0
}
