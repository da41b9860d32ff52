package ports

import "context"

// BenchRunner executes benchmark stubs for a test package and reports the
// subprocess exit code alongside any spawn error.
type BenchRunner interface {
	Run(ctx context.Context, pkgPath, benchPattern string) (int, error)
}
