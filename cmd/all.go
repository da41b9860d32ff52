package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"adventcli/internal/adapters/render/report"
	"adventcli/internal/domain"
)

func newAllCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every scaffolded day in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := app.partition(cmd)
			if err != nil {
				return err
			}

			days, err := app.registry.List(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.BatchHeader(len(days)))
			if len(days) == 0 {
				return nil
			}

			summary, err := app.harness.RunAll(p, func(r domain.ExecutionReport) {
				fmt.Fprintln(out, report.DayLine(r))
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, report.BatchFooter(summary))
			return err
		},
	}
}
