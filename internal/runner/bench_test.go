package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventcli/internal/domain"
	"adventcli/internal/layout"
	"adventcli/internal/registry"
)

type fakeBenchRunner struct {
	pkgPath string
	pattern string
	code    int
}

func (f *fakeBenchRunner) Run(_ context.Context, pkgPath, pattern string) (int, error) {
	f.pkgPath = pkgPath
	f.pattern = pattern
	return f.code, nil
}

func newBench(t *testing.T, fake *fakeBenchRunner) (*Bench, *layout.Resolver) {
	t.Helper()

	resolver, err := layout.NewResolver(t.TempDir())
	require.NoError(t, err)

	return NewBench(resolver, registry.NewEnumerator(resolver), fake), resolver
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("package tests\n"), 0o644))
}

func TestTimeOneDelegatesToRunner(t *testing.T) {
	t.Parallel()

	fake := &fakeBenchRunner{code: 0}
	bench, resolver := newBench(t, fake)
	p := domain.YearPartition(2025)
	writeFile(t, resolver.Resolve(7, p, domain.KindTest))

	code, err := bench.TimeOne(context.Background(), 7, p)
	require.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t, "./2025/tests", fake.pkgPath)
	assert.Equal(t, "BenchmarkDay07", fake.pattern)
}

func TestTimeOnePropagatesExitStatus(t *testing.T) {
	t.Parallel()

	fake := &fakeBenchRunner{code: 2}
	bench, resolver := newBench(t, fake)
	p := domain.YearPartition(2025)
	writeFile(t, resolver.Resolve(7, p, domain.KindTest))

	code, err := bench.TimeOne(context.Background(), 7, p)
	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

func TestTimeOneMissingTestFile(t *testing.T) {
	t.Parallel()

	bench, _ := newBench(t, &fakeBenchRunner{})

	code, err := bench.TimeOne(context.Background(), 7, domain.YearPartition(2025))
	assert.ErrorIs(t, err, domain.ErrTestNotFound)
	assert.Equal(t, 1, code)
}

func TestTimeAll(t *testing.T) {
	t.Parallel()

	fake := &fakeBenchRunner{}
	bench, resolver := newBench(t, fake)
	p := domain.YearPartition(2025)
	writeFile(t, filepath.Join(resolver.SolutionsDir(p), "day01.go"))

	code, err := bench.TimeAll(context.Background(), p)
	require.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t, "./2025/tests", fake.pkgPath)
	assert.Equal(t, "BenchmarkDay", fake.pattern)
}

func TestTimeAllEmptyPartition(t *testing.T) {
	t.Parallel()

	bench, _ := newBench(t, &fakeBenchRunner{})

	_, err := bench.TimeAll(context.Background(), domain.YearPartition(2025))
	assert.ErrorIs(t, err, domain.ErrTestNotFound)
}
