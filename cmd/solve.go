package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"adventcli/internal/adapters/render/report"
	"adventcli/internal/domain"
)

func newSolveCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Run a day's solution against its puzzle input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDay(args[0])
			if err != nil {
				return err
			}

			p, err := app.partition(cmd)
			if err != nil {
				return err
			}

			rep, err := app.harness.RunOne(day, p)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.SolveView(rep))
			return err
		},
	}

	// Solutions run interpreted, so there is no optimized build to select.
	// The flag is accepted so muscle memory from compiled setups still works.
	cmd.Flags().Bool("release", false, "no-op; kept for familiarity")

	return cmd
}
