package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"adventcli/internal/domain"
)

func newDownloadCmd(app *app) *cobra.Command {
	var (
		inputOnly  bool
		puzzleOnly bool
	)

	cmd := &cobra.Command{
		Use:   "download <day>",
		Short: "Download a day's input and puzzle text via aoc-cli",
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

			if !app.downloader.Available() {
				return fmt.Errorf("%w: install it with `cargo install aoc-cli`, then run `aoc credentials -s <session_cookie>`",
					domain.ErrDownloadToolMissing)
			}

			out := cmd.OutOrStdout()

			if !puzzleOnly {
				target := app.layout.Resolve(day, p, domain.KindInput)
				err := runDownloadSpinner(cmd.Context(), cmd.ErrOrStderr(),
					fmt.Sprintf("Downloading input for day %s...", day.Padded()),
					func(ctx context.Context) error {
						return app.downloader.DownloadInput(ctx, day, p.Year(), target)
					})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Input saved to %s\n", target)
			}

			if !inputOnly {
				target := app.layout.Resolve(day, p, domain.KindPuzzle)
				err := runDownloadSpinner(cmd.Context(), cmd.ErrOrStderr(),
					fmt.Sprintf("Downloading puzzle for day %s...", day.Padded()),
					func(ctx context.Context) error {
						return app.downloader.DownloadPuzzle(ctx, day, p.Year(), target)
					})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Puzzle saved to %s\n", target)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&inputOnly, "input-only", false, "only download the puzzle input")
	cmd.Flags().BoolVar(&puzzleOnly, "puzzle-only", false, "only download the puzzle text")
	cmd.MarkFlagsMutuallyExclusive("input-only", "puzzle-only")

	return cmd
}
