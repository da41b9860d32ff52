// Package scaffold creates a new day's solution, test and data files from
// templates. Scaffolding is strictly create-once: an existing solution file
// is never overwritten.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"adventcli/internal/domain"
	"adventcli/internal/layout"
	"adventcli/internal/ports"
)

type Generator struct {
	layout      *layout.Resolver
	downloader  ports.Downloader
	templates   *Templates
	defaultYear int
}

func NewGenerator(resolver *layout.Resolver, downloader ports.Downloader, defaultYear int) (*Generator, error) {
	templates, err := NewTemplates()
	if err != nil {
		return nil, err
	}

	return &Generator{
		layout:      resolver,
		downloader:  downloader,
		templates:   templates,
		defaultYear: defaultYear,
	}, nil
}

// Result carries the created paths plus a non-fatal download warning, so
// callers decide how to surface it instead of it vanishing into a print.
type Result struct {
	Set             domain.ResourceSet
	DownloadWarning error
}

// Scaffold creates the day's ResourceSet. Side effects run in a fixed order:
// optional download, directories, package marker, helpers bootstrap, solution
// file, test skeleton, zero-byte data placeholders. Everything except the
// solution and test writes is idempotent; the solution file is created with
// O_EXCL so the existence check and the write are a single atomic region.
func (g *Generator) Scaffold(ctx context.Context, day domain.Day, p domain.Partition, download bool) (Result, error) {
	set := g.layout.ResourceSet(day, p)

	if _, err := os.Stat(set.Solution); err == nil {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrAlreadyScaffolded, set.Solution)
	}

	result := Result{Set: set}
	if download {
		result.DownloadWarning = g.downloadData(ctx, day, p, set)
	}

	for _, dir := range []string{
		filepath.Dir(set.Solution),
		filepath.Dir(set.Test),
		filepath.Dir(set.Example),
		filepath.Dir(set.Input),
		filepath.Dir(set.Puzzle),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if err := g.ensurePackageMarker(p); err != nil {
		return Result{}, err
	}
	if err := g.ensureHelpers(day, p); err != nil {
		return Result{}, err
	}

	solutionContent, err := g.templates.Solution(g.year(p), day)
	if err != nil {
		return Result{}, err
	}
	if err := writeExclusive(set.Solution, solutionContent); err != nil {
		if errors.Is(err, os.ErrExist) {
			return Result{}, fmt.Errorf("%w: %s", domain.ErrAlreadyScaffolded, set.Solution)
		}
		return Result{}, fmt.Errorf("write solution file: %w", err)
	}

	testContent, err := g.templates.TestSkeleton(g.year(p), day)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(set.Test, []byte(testContent), 0o644); err != nil {
		return Result{}, fmt.Errorf("write test file: %w", err)
	}

	for _, placeholder := range []string{set.Example, set.Input, set.Puzzle} {
		if err := touch(placeholder); err != nil {
			return Result{}, err
		}
	}

	return result, nil
}

func (g *Generator) year(p domain.Partition) int {
	if p.IsRoot() {
		return g.defaultYear
	}
	return p.Year()
}

// downloadData is best effort: scaffolding proceeds whatever happens here.
func (g *Generator) downloadData(ctx context.Context, day domain.Day, p domain.Partition, set domain.ResourceSet) error {
	if err := g.downloader.DownloadInput(ctx, day, g.year(p), set.Input); err != nil {
		return err
	}
	return g.downloader.DownloadPuzzle(ctx, day, g.year(p), set.Puzzle)
}

func (g *Generator) ensurePackageMarker(p domain.Partition) error {
	path := filepath.Join(g.layout.SolutionsDir(p), "doc.go")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	content, err := g.templates.PackageMarker(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write package marker: %w", err)
	}

	return nil
}

func (g *Generator) ensureHelpers(day domain.Day, p domain.Partition) error {
	path := g.layout.Resolve(day, p, domain.KindHelpers)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	content, err := g.templates.Helpers(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write test helpers: %w", err)
	}

	return nil
}

func writeExclusive(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// touch creates an empty placeholder without truncating an existing file, so
// downloaded data survives and later reads fail predictably instead of
// hitting a missing parent directory.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("create placeholder %s: %w", path, err)
	}
	return f.Close()
}
