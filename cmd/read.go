package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"adventcli/internal/domain"
)

func newReadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <day>",
		Short: "Print a day's puzzle text",
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

			text, err := app.reader.Puzzle(day, p)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}
