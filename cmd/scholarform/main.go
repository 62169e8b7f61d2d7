package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/scholarform/internal/cli"
	"github.com/alexanderramin/scholarform/internal/config"
	"github.com/alexanderramin/scholarform/internal/db"
	"github.com/alexanderramin/scholarform/internal/form"
	"github.com/alexanderramin/scholarform/internal/repository"
	"github.com/alexanderramin/scholarform/internal/service"
	"github.com/alexanderramin/scholarform/internal/validate"
	"github.com/alexanderramin/scholarform/internal/wizard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	registry := validate.NewRegistry()
	definition, err := form.NewDefinition(registry)
	if err != nil {
		return fmt.Errorf("building form definition: %w", err)
	}

	var (
		database *sql.DB
		logFile  io.Closer
	)
	defer func() {
		if database != nil {
			database.Close()
		}
		if logFile != nil {
			logFile.Close()
		}
	}()

	app := &cli.App{
		Registry:   registry,
		Definition: definition,
	}

	// Detect interactive terminal for the bare entrypoint and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Configuration depends on parsed flags, so wiring happens once cobra
	// has picked the command.
	app.Bootstrap = func(flags *pflag.FlagSet, tui bool) error {
		cfg, err := config.Load(flags)
		if err != nil {
			return err
		}

		logger, closer, err := config.NewLogger(cfg.Log, tui)
		if err != nil {
			return err
		}
		logFile = closer

		database, err = db.OpenDB(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		logger.Debug("database opened", "path", cfg.Database.Path)

		// Wire repository and unit of work for transactional submits
		apps := repository.NewSQLiteApplicationRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)

		app.Applications = service.NewApplicationService(definition, apps, uow, service.NewSlogUseCaseObserver(logger))
		app.Transitions = wizard.NewLogObserver(logger)
		app.ShowHelp = cfg.UI.ShowHelp
		return nil
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
