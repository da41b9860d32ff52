// Package gotest runs the generated benchmark stubs through `go test`,
// which plays the role the original workflow gives an external benchmark
// runner: the harness resolves paths, the subprocess does the measuring.
package gotest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"adventcli/internal/ports"
)

type Runner struct {
	workdir string
	stdout  io.Writer
	stderr  io.Writer
}

var _ ports.BenchRunner = (*Runner)(nil)

func NewRunner(workdir string, stdout, stderr io.Writer) *Runner {
	return &Runner{
		workdir: workdir,
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Run blocks until the subprocess finishes and reports its exit code. A
// non-zero exit is not an error here; the caller propagates the status.
func (r *Runner) Run(ctx context.Context, pkgPath, benchPattern string) (int, error) {
	cmd := exec.CommandContext(ctx, "go", benchArgs(pkgPath, benchPattern)...)
	cmd.Dir = r.workdir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("run go test: %w", err)
	}

	return 0, nil
}

func benchArgs(pkgPath, benchPattern string) []string {
	return []string{
		"test",
		"-run", "^$",
		"-bench", benchPattern,
		"-benchmem",
		pkgPath,
	}
}
