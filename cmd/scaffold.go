package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"adventcli/internal/adapters/render/report"
	"adventcli/internal/domain"
)

func newScaffoldCmd(app *app) *cobra.Command {
	var download bool

	cmd := &cobra.Command{
		Use:   "scaffold <day>",
		Short: "Create solution, test and data files for a day",
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

			result, err := app.generator.Scaffold(cmd.Context(), day, p, download)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.ScaffoldView(day, result, download))
			return err
		},
	}

	cmd.Flags().BoolVarP(&download, "download", "d", false, "also download the puzzle input and text via aoc-cli")

	return cmd
}
