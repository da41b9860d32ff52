package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "advent",
		Short:         "Advent of Code workspace manager: scaffold, run and time daily solutions",
		Long:          "advent scaffolds per-day solution and test files, discovers which days have been implemented, runs each day's solution against its puzzle input with timings, and delegates downloads and benchmarks to external tools.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().Int("year", app.cfg.Year, "year partition to operate on")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(app),
		newScaffoldCmd(app),
		newDownloadCmd(app),
		newReadCmd(app),
		newSolveCmd(app),
		newAllCmd(app),
		newTimeCmd(app),
	)

	return rootCmd
}
