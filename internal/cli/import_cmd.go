package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pvlab/helios/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the breakdown from a JSON import file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Import file has %d problem(s):\n", len(errs))
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
				}
				return fmt.Errorf("import aborted")
			}

			nodes, err := importer.Convert(schema)
			if err != nil {
				return err
			}

			if err := app.WBS.Ingest(context.Background(), nodes); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d nodes from %s\n", len(nodes), args[0])
			return nil
		},
	}
}

func newDemoCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Load the sample PV module certification project",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			nodes := importer.SampleProject(base)
			if err := app.WBS.Ingest(context.Background(), nodes); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded sample project (%d nodes) starting %s\n", len(nodes), start)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", time.Now().UTC().Format("2006-01-02"), "Project start date (YYYY-MM-DD)")

	return cmd
}
