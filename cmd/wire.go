package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adventcli/internal/adapters/aoccli"
	"adventcli/internal/adapters/gotest"
	"adventcli/internal/config"
	"adventcli/internal/domain"
	"adventcli/internal/inputs"
	"adventcli/internal/layout"
	"adventcli/internal/ports"
	"adventcli/internal/registry"
	"adventcli/internal/runner"
	"adventcli/internal/scaffold"
	"adventcli/internal/solution"
)

type app struct {
	root       string
	cfg        config.Config
	layout     *layout.Resolver
	registry   *registry.Enumerator
	reader     *inputs.Reader
	loader     *solution.Loader
	harness    *runner.Harness
	generator  *scaffold.Generator
	downloader ports.Downloader
}

func wireApp() (*app, error) {
	root := envOrDefault("ADVENT_WORKSPACE", "")
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		root = wd
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	resolver, err := layout.NewResolver(root)
	if err != nil {
		return nil, err
	}

	enum := registry.NewEnumerator(resolver)
	reader := inputs.NewReader(resolver)
	loader := solution.NewLoader(resolver)
	downloader := aoccli.New(resolver.Root())

	generator, err := scaffold.NewGenerator(resolver, downloader, cfg.Year)
	if err != nil {
		return nil, fmt.Errorf("wire scaffold generator: %w", err)
	}

	return &app{
		root:       resolver.Root(),
		cfg:        cfg,
		layout:     resolver,
		registry:   enum,
		reader:     reader,
		loader:     loader,
		harness:    runner.NewHarness(loader, reader, enum, ports.SystemClock{}),
		generator:  generator,
		downloader: downloader,
	}, nil
}

// partition reads the (possibly overridden) --year flag. The CLI always
// addresses a year partition; the unpartitioned root stays reachable through
// the library API.
func (a *app) partition(cmd *cobra.Command) (domain.Partition, error) {
	year, err := cmd.Flags().GetInt("year")
	if err != nil {
		return domain.Partition{}, err
	}

	return domain.YearPartition(year), nil
}

func (a *app) bench(cmd *cobra.Command) *runner.Bench {
	return runner.NewBench(a.layout, a.registry, gotest.NewRunner(a.root, cmd.OutOrStdout(), cmd.ErrOrStderr()))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
