package cli

import (
	"fmt"

	"github.com/alexanderramin/dbtalk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversation turns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			turns, err := app.Turns.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			fmt.Print(formatter.FormatHistory(turns))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", app.Cfg.HistoryLimit, "how many turns to show")
	return cmd
}
