package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pvlab/helios/internal/cli"
	"github.com/pvlab/helios/internal/db"
	"github.com/pvlab/helios/internal/repository"
	"github.com/pvlab/helios/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.helios/helios.db
	dbPath := os.Getenv("HELIOS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".helios", "helios.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	nodeRepo := repository.NewSQLiteWBSNodeRepo(database)
	baselineRepo := repository.NewSQLiteBaselineRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		WBS:     service.NewWBSService(nodeRepo, baselineRepo, uow),
		Reports: service.NewReportService(nodeRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
