package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"adventcli/internal/domain"
)

func newTimeCmd(app *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "time [day]",
		Short: "Benchmark a day's parts via the test runner",
		Long:  "Benchmark delegates to `go test -bench` against the partition's tests package and reports whatever the runner prints. Its exit status becomes this command's exit status.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.partition(cmd)
			if err != nil {
				return err
			}

			bench := app.bench(cmd)

			switch {
			case all:
				code, err := bench.TimeAll(cmd.Context(), p)
				return exitWith(code, err)
			case len(args) == 1:
				day, err := domain.ParseDay(args[0])
				if err != nil {
					return err
				}
				code, err := bench.TimeOne(cmd.Context(), day, p)
				return exitWith(code, err)
			default:
				return errors.New("specify a day or pass --all")
			}
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "benchmark every scaffolded day")

	return cmd
}

func exitWith(code int, err error) error {
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitStatusError{Code: code}
	}
	return nil
}
