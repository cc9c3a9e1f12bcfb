package cli

import (
	"context"

	"github.com/alexanderramin/dbtalk/internal/config"
	"github.com/alexanderramin/dbtalk/internal/domain"
	"github.com/alexanderramin/dbtalk/internal/engine"
	"github.com/alexanderramin/dbtalk/internal/history"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// App holds everything the CLI commands need.
type App struct {
	Engine *engine.Engine
	Turns  *history.SQLiteTurnRepo
	Cfg    config.Config

	// IsInteractive reports whether stdin is a terminal. Decides both
	// the default entrypoint and the confirmation prompt style.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dbtalk" command and registers all
// subcommands against the provided App. Running dbtalk without a
// subcommand on a terminal starts the interactive shell.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dbtalk",
		Short: "Talk to your SQLite database in plain language",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newSQLCmd(app),
		newShellCmd(app),
		newHistoryCmd(app),
	)

	return root
}

// recordExchange appends the user utterance and the assistant reply to
// the persisted transcript. Best effort: a failing history write never
// fails the turn.
func (app *App) recordExchange(ctx context.Context, res *engine.Resolution, reply string) {
	if app.Turns == nil {
		return
	}
	_ = app.Turns.Append(ctx, &history.Turn{
		ID:   uuid.NewString(),
		Role: domain.RoleUser,
		Text: res.UserText,
	})
	_ = app.Turns.Append(ctx, &history.Turn{
		ID:       uuid.NewString(),
		Role:     domain.RoleAssistant,
		Text:     reply,
		SQL:      res.Statement.SQL,
		RiskTier: res.Assessment.Tier,
	})
}
