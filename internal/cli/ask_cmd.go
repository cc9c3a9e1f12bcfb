package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/dbtalk/internal/cli/formatter"
	"github.com/alexanderramin/dbtalk/internal/engine"
	"github.com/alexanderramin/dbtalk/internal/intent"
	"github.com/alexanderramin/dbtalk/internal/respond"
	"github.com/alexanderramin/dbtalk/internal/sqlbuild"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   `ask "<natural language>"`,
		Short: "Translate a plain-language request into SQL and run it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Engine.Plan(args[0])
			if err != nil {
				if msg, ok := rephrasePrompt(err); ok {
					fmt.Println(msg)
					return nil
				}
				return err
			}

			fmt.Print(formatter.FormatResolution(res))

			if !app.gatePassed(res, assumeYes) {
				fmt.Println("Cancelled.")
				return nil
			}

			return app.runAndReport(cmd.Context(), res)
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false,
		"skip confirmation for LOW and MEDIUM risk statements")
	return cmd
}

// gatePassed runs the confirmation gate, honoring --yes for the tiers
// it may skip. HIGH risk always prompts.
func (app *App) gatePassed(res *engine.Resolution, assumeYes bool) bool {
	if assumeYes && res.State != engine.StateNeedsAcknowledgment {
		return true
	}
	ok, err := app.confirm(res)
	return err == nil && ok
}

// runAndReport executes a confirmed statement, prints the reply, and
// records the exchange.
func (app *App) runAndReport(ctx context.Context, res *engine.Resolution) error {
	out, err := app.Engine.Execute(ctx, res)
	if err != nil {
		reply := respond.ComposeError(err)
		fmt.Println(reply)
		app.recordExchange(ctx, res, reply)
		return nil
	}

	reply := app.Engine.Respond(res, out)
	fmt.Print(formatter.FormatOutcome(out, reply))
	app.recordExchange(ctx, res, reply)
	return nil
}

// rephrasePrompt maps a translation failure to the sentence shown to
// the user. Returns false for errors that are not rephrase-able.
func rephrasePrompt(err error) (string, bool) {
	switch {
	case errors.Is(err, intent.ErrUnresolvedIntent),
		errors.Is(err, intent.ErrMissingTable),
		errors.Is(err, sqlbuild.ErrMissingColumns),
		errors.Is(err, sqlbuild.ErrMissingValues),
		errors.Is(err, sqlbuild.ErrMissingSetClause),
		errors.Is(err, sqlbuild.ErrUnsafeDelete):
		return fmt.Sprintf("Sorry, %v. Try rephrasing your request.", err), true
	}
	return "", false
}
