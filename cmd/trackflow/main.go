package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/trackflow/internal/cli"
	"github.com/alexanderramin/trackflow/internal/cli/formatter"
	"github.com/alexanderramin/trackflow/internal/config"
	"github.com/alexanderramin/trackflow/internal/db"
	"github.com/alexanderramin/trackflow/internal/importer"
	"github.com/alexanderramin/trackflow/internal/service"
	"github.com/alexanderramin/trackflow/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	formatter.ApplyColorProfile(cfg.NoColor)

	ctx := context.Background()

	// Without a database file the schedule lives for this process only.
	var uow db.UnitOfWork
	if cfg.Persistent() {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		uow = db.NewSQLiteUnitOfWork(database)
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	schedule := service.NewScheduleService(store.New(), uow, observers...)
	found, err := schedule.Load(ctx)
	if err != nil {
		return err
	}
	if !found && cfg.ImportPath != "" {
		schema, err := importer.LoadImportSchema(cfg.ImportPath)
		if err != nil {
			return fmt.Errorf("importing %s: %w", cfg.ImportPath, err)
		}
		if _, err := schedule.Import(ctx, schema); err != nil {
			return fmt.Errorf("importing %s: %w", cfg.ImportPath, err)
		}
	}

	app := &cli.App{
		Schedule: schedule,
		// Detect interactive terminal for the shell entrypoint.
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
