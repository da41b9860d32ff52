// Package layout computes the on-disk location of every named per-day
// resource. Resolution is pure path math: no I/O, no side effects.
package layout

import (
	"fmt"
	"path/filepath"
	"strconv"

	"adventcli/internal/domain"
)

type Resolver struct {
	root string
}

// NewResolver anchors a resolver at the workspace root.
func NewResolver(root string) (*Resolver, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}

	return &Resolver{root: filepath.Clean(absRoot)}, nil
}

func (r *Resolver) Root() string {
	return r.root
}

// Resolve maps (day, partition, kind) to an absolute path. The root
// partition lives under src/solutions, tests and data; a year partition
// under <year>/solutions, <year>/tests and <year>/data.
func (r *Resolver) Resolve(day domain.Day, p domain.Partition, kind domain.ResourceKind) string {
	padded := day.Padded()

	switch kind {
	case domain.KindSolution:
		return filepath.Join(r.SolutionsDir(p), "day"+padded+".go")
	case domain.KindTest:
		return filepath.Join(r.TestsDir(p), "day"+padded+"_test.go")
	case domain.KindHelpers:
		return filepath.Join(r.TestsDir(p), "helpers_test.go")
	case domain.KindExample:
		return filepath.Join(r.DataDir(p), "examples", padded+".txt")
	case domain.KindInput:
		return filepath.Join(r.DataDir(p), "inputs", padded+".txt")
	case domain.KindPuzzle:
		return filepath.Join(r.DataDir(p), "puzzles", padded+".md")
	default:
		panic(fmt.Sprintf("layout: unknown resource kind %q", kind))
	}
}

// ResourceSet resolves every per-day path for one (day, partition) pair.
func (r *Resolver) ResourceSet(day domain.Day, p domain.Partition) domain.ResourceSet {
	return domain.ResourceSet{
		Solution: r.Resolve(day, p, domain.KindSolution),
		Test:     r.Resolve(day, p, domain.KindTest),
		Example:  r.Resolve(day, p, domain.KindExample),
		Input:    r.Resolve(day, p, domain.KindInput),
		Puzzle:   r.Resolve(day, p, domain.KindPuzzle),
	}
}

func (r *Resolver) SolutionsDir(p domain.Partition) string {
	if p.IsRoot() {
		return filepath.Join(r.root, "src", "solutions")
	}
	return filepath.Join(r.root, strconv.Itoa(p.Year()), "solutions")
}

func (r *Resolver) TestsDir(p domain.Partition) string {
	if p.IsRoot() {
		return filepath.Join(r.root, "tests")
	}
	return filepath.Join(r.root, strconv.Itoa(p.Year()), "tests")
}

func (r *Resolver) DataDir(p domain.Partition) string {
	if p.IsRoot() {
		return filepath.Join(r.root, "data")
	}
	return filepath.Join(r.root, strconv.Itoa(p.Year()), "data")
}

// TestsPkgPath is the package path handed to the benchmark runner, relative
// to the workspace root.
func (r *Resolver) TestsPkgPath(p domain.Partition) string {
	if p.IsRoot() {
		return "./tests"
	}
	return "./" + strconv.Itoa(p.Year()) + "/tests"
}
