package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/dbtalk/internal/cli"
	"github.com/alexanderramin/dbtalk/internal/config"
	"github.com/alexanderramin/dbtalk/internal/engine"
	"github.com/alexanderramin/dbtalk/internal/history"
	"github.com/alexanderramin/dbtalk/internal/sqlbuild"
	"github.com/alexanderramin/dbtalk/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	if cfg.NoColor {
		// lipgloss and huh honor the NO_COLOR convention.
		os.Setenv("NO_COLOR", "1")
	}

	// Target database the user's requests run against.
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening target database: %w", err)
	}
	defer st.Close()

	// Meta database holding the conversation transcript.
	metaDB, err := history.OpenMeta(cfg.MetaDBPath)
	if err != nil {
		return fmt.Errorf("opening meta database: %w", err)
	}
	defer metaDB.Close()

	app := &cli.App{
		Engine: engine.New(st, sqlbuild.NewWithRowLimit(cfg.RowLimit)),
		Turns:  history.NewSQLiteTurnRepo(metaDB),
		Cfg:    cfg,
	}

	// Detect interactive terminal for the shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
