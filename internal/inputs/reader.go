// Package inputs reads the per-day data files kept alongside solutions.
//
// Scaffolding touches zero-byte placeholders so directories stay
// predictable; a zero-byte file is therefore reported the same as an absent
// one, with the resolved path in the error so the condition is actionable.
package inputs

import (
	"fmt"
	"os"

	"adventcli/internal/domain"
	"adventcli/internal/layout"
)

type Reader struct {
	layout *layout.Resolver
}

func NewReader(resolver *layout.Resolver) *Reader {
	return &Reader{layout: resolver}
}

func (r *Reader) Input(day domain.Day, p domain.Partition) (string, error) {
	return r.read(day, p, domain.KindInput, domain.ErrInputNotFound)
}

func (r *Reader) Example(day domain.Day, p domain.Partition) (string, error) {
	return r.read(day, p, domain.KindExample, domain.ErrExampleNotFound)
}

func (r *Reader) Puzzle(day domain.Day, p domain.Partition) (string, error) {
	return r.read(day, p, domain.KindPuzzle, domain.ErrPuzzleNotFound)
}

func (r *Reader) read(day domain.Day, p domain.Partition, kind domain.ResourceKind, missing error) (string, error) {
	path := r.layout.Resolve(day, p, kind)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", missing, path)
		}
		return "", fmt.Errorf("read %s file %s: %w", kind, path, err)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", missing, path)
	}

	return string(data), nil
}
