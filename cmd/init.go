package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"adventcli/internal/config"
)

func newInitCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the workspace config and a year's directory tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath := config.Path(app.root)
			if _, err := os.Stat(cfgPath); err == nil {
				return fmt.Errorf("workspace already initialized: %s exists", cfgPath)
			}

			p, err := app.partition(cmd)
			if err != nil {
				return err
			}

			if err := config.Write(app.root, config.Config{Year: p.Year()}); err != nil {
				return err
			}

			dirs := []string{
				app.layout.SolutionsDir(p),
				app.layout.TestsDir(p),
				filepath.Join(app.layout.DataDir(p), "examples"),
				filepath.Join(app.layout.DataDir(p), "inputs"),
				filepath.Join(app.layout.DataDir(p), "puzzles"),
			}
			for _, dir := range dirs {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create %s: %w", dir, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Initialized workspace for %s at %s\n", p, app.root)
			return nil
		},
	}
}
