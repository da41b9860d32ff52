package runner

import (
	"context"
	"fmt"
	"os"

	"adventcli/internal/domain"
	"adventcli/internal/layout"
	"adventcli/internal/ports"
	"adventcli/internal/registry"
)

// Bench delegates benchmarking to the external test runner. Its only jobs
// are path resolution and propagating the subprocess exit status.
type Bench struct {
	layout   *layout.Resolver
	registry *registry.Enumerator
	runner   ports.BenchRunner
}

func NewBench(resolver *layout.Resolver, enum *registry.Enumerator, runner ports.BenchRunner) *Bench {
	return &Bench{
		layout:   resolver,
		registry: enum,
		runner:   runner,
	}
}

// TimeOne benchmarks a single day's stubs.
func (b *Bench) TimeOne(ctx context.Context, day domain.Day, p domain.Partition) (int, error) {
	testPath := b.layout.Resolve(day, p, domain.KindTest)
	if _, err := os.Stat(testPath); err != nil {
		if os.IsNotExist(err) {
			return 1, fmt.Errorf("%w: %s", domain.ErrTestNotFound, testPath)
		}
		return 1, fmt.Errorf("stat test file %s: %w", testPath, err)
	}

	return b.runner.Run(ctx, b.layout.TestsPkgPath(p), "BenchmarkDay"+day.Padded())
}

// TimeAll benchmarks every scaffolded day in the partition.
func (b *Bench) TimeAll(ctx context.Context, p domain.Partition) (int, error) {
	days, err := b.registry.List(p)
	if err != nil {
		return 1, err
	}
	if len(days) == 0 {
		return 1, fmt.Errorf("%w: no days scaffolded in %s", domain.ErrTestNotFound, p)
	}

	return b.runner.Run(ctx, b.layout.TestsPkgPath(p), "BenchmarkDay")
}
