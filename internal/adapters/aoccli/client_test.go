package aoccli

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventcli/internal/domain"
)

func TestAvailable(t *testing.T) {
	t.Parallel()

	client := New(t.TempDir())
	client.lookPath = func(string) (string, error) { return "/usr/bin/aoc", nil }
	assert.True(t, client.Available())

	client.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	assert.False(t, client.Available())
}

func TestDownloadToolMissing(t *testing.T) {
	t.Parallel()

	client := New(t.TempDir())
	client.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	err := client.DownloadInput(context.Background(), 7, 2025, filepath.Join(t.TempDir(), "07.txt"))
	require.ErrorIs(t, err, domain.ErrDownloadToolMissing)
	assert.Contains(t, err.Error(), "cargo install aoc-cli")
}

func TestDownloadInputBuildsToolInvocation(t *testing.T) {
	t.Parallel()

	workdir := t.TempDir()
	target := filepath.Join(t.TempDir(), "inputs", "07.txt")

	client := New(workdir)
	client.lookPath = func(string) (string, error) { return "/usr/bin/aoc", nil }

	var gotName string
	var gotArgs []string
	client.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		// stand-in for a successful download: the tool writes the target
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, []byte("data\n"), 0o644))
		return exec.CommandContext(ctx, "true")
	}

	err := client.DownloadInput(context.Background(), 7, 2025, target)
	require.NoError(t, err)

	assert.Equal(t, "aoc", gotName)
	assert.Equal(t, []string{
		"download",
		"--year", "2025",
		"--day", "7",
		"--input-only",
		"--input-file", target,
		"--overwrite",
	}, gotArgs)
}

func TestDownloadPuzzleBuildsToolInvocation(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "puzzles", "03.md")

	client := New(t.TempDir())
	client.lookPath = func(string) (string, error) { return "/usr/bin/aoc", nil }

	var gotArgs []string
	client.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotArgs = args
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, []byte("# puzzle\n"), 0o644))
		return exec.CommandContext(ctx, "true")
	}

	require.NoError(t, client.DownloadPuzzle(context.Background(), 3, 2024, target))
	assert.Contains(t, gotArgs, "--puzzle-only")
	assert.Contains(t, gotArgs, "--puzzle-file")
	assert.Contains(t, gotArgs, "2024")
}

func TestDownloadFailureSurfacesStderr(t *testing.T) {
	t.Parallel()

	client := New(t.TempDir())
	client.lookPath = func(string) (string, error) { return "/usr/bin/aoc", nil }
	client.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", "echo 'invalid session cookie' >&2; exit 1")
	}

	err := client.DownloadInput(context.Background(), 7, 2025, filepath.Join(t.TempDir(), "07.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session cookie")
}

func TestDownloadFailsWhenTargetNotCreated(t *testing.T) {
	t.Parallel()

	client := New(t.TempDir())
	client.lookPath = func(string) (string, error) { return "/usr/bin/aoc", nil }
	client.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "true")
	}

	target := filepath.Join(t.TempDir(), "07.txt")
	err := client.DownloadInput(context.Background(), 7, 2025, target)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrDownloadToolMissing))
	assert.Contains(t, err.Error(), target)
}
