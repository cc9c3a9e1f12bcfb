package cli

import (
	"fmt"

	"github.com/alexanderramin/dbtalk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// newSQLCmd is the escape hatch: classify, gate, and run a raw SQL
// statement without the translation pipeline. The risk gate still
// applies — raw SQL gets no free pass.
func newSQLCmd(app *App) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   `sql "<statement>"`,
		Short: "Classify and run a raw SQL statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Engine.PlanRaw(args[0])

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
