package scaffold

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"adventcli/internal/domain"
)

// daySlots are the three substitution slots every per-day blueprint may use.
type daySlots struct {
	Year   int
	Day    int
	Padded string
}

// partitionSlots parametrize the partition-wide files (package marker and
// test helpers bootstrap).
type partitionSlots struct {
	Year    int
	Root    bool
	RootRel string
}

const solutionTemplate = `package solutions

// Advent of Code {{.Year}} - Day {{.Padded}}.
// https://adventofcode.com/{{.Year}}/day/{{.Day}}

import "strings"

func ParseInput(input string) []string {
	return strings.Split(strings.TrimSpace(input), "\n")
}

func PartOne(data []string) int {
	return 0
}

func PartTwo(data []string) int {
	return 0
}
`

const testTemplate = `package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay{{.Padded}}PartOne(t *testing.T) {
	unit := loadDay(t, {{.Day}})
	data := parseExample(t, unit, {{.Day}})

	got, err := unit.PartOne(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got) // expected example answer for part one
}

func TestDay{{.Padded}}PartTwo(t *testing.T) {
	unit := loadDay(t, {{.Day}})
	data := parseExample(t, unit, {{.Day}})

	got, err := unit.PartTwo(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got) // expected example answer for part two
}

func BenchmarkDay{{.Padded}}PartOne(b *testing.B) {
	unit := loadDay(b, {{.Day}})
	data := parseInput(b, unit, {{.Day}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := unit.PartOne(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDay{{.Padded}}PartTwo(b *testing.B) {
	unit := loadDay(b, {{.Day}})
	data := parseInput(b, unit, {{.Day}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := unit.PartTwo(data); err != nil {
			b.Fatal(err)
		}
	}
}
`

const helpersTemplate = `package tests

// Shared fixtures for the {{if .Root}}workspace{{else}}{{.Year}}{{end}} puzzle tests. Written by the first
// scaffold in this partition; edit freely, later scaffolds leave it alone.

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"adventcli/internal/domain"
	"adventcli/internal/inputs"
	"adventcli/internal/layout"
	"adventcli/internal/solution"
)

func testPartition() domain.Partition {
	{{if .Root}}return domain.RootPartition(){{else}}return domain.YearPartition({{.Year}}){{end}}
}

func testResolver(tb testing.TB) *layout.Resolver {
	tb.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(tb, ok)

	resolver, err := layout.NewResolver(filepath.Join(filepath.Dir(file), "{{.RootRel}}"))
	require.NoError(tb, err)
	return resolver
}

func loadDay(tb testing.TB, day int) *solution.Unit {
	tb.Helper()

	unit, err := solution.NewLoader(testResolver(tb)).Load(domain.Day(day), testPartition())
	require.NoError(tb, err)
	return unit
}

func parseExample(tb testing.TB, unit *solution.Unit, day int) any {
	tb.Helper()

	raw, err := inputs.NewReader(testResolver(tb)).Example(domain.Day(day), testPartition())
	if errors.Is(err, domain.ErrExampleNotFound) {
		tb.Skipf("example not available: %v", err)
	}
	require.NoError(tb, err)

	data, err := unit.ParseInput(raw)
	require.NoError(tb, err)
	return data
}

func parseInput(tb testing.TB, unit *solution.Unit, day int) any {
	tb.Helper()

	raw, err := inputs.NewReader(testResolver(tb)).Input(domain.Day(day), testPartition())
	if errors.Is(err, domain.ErrInputNotFound) {
		tb.Skipf("input not available: %v", err)
	}
	require.NoError(tb, err)

	data, err := unit.ParseInput(raw)
	require.NoError(tb, err)
	return data
}
`

const markerTemplate = `// Package solutions holds the hand-written per-day puzzle solutions{{if not .Root}} for {{.Year}}{{end}}.
// Each dayNN.go is loaded by path and interpreted at run time, and must
// export ParseInput, PartOne and PartTwo.
package solutions
`

// Templates renders the scaffold blueprints. Substitution slots are checked
// by a probe render at construction, so an undefined slot fails here rather
// than halfway through the first scaffold.
type Templates struct {
	solution *template.Template
	test     *template.Template
	helpers  *template.Template
	marker   *template.Template
}

func NewTemplates() (*Templates, error) {
	t := &Templates{}
	for _, b := range []struct {
		name  string
		text  string
		dst   **template.Template
		probe any
	}{
		{"solution", solutionTemplate, &t.solution, daySlots{Year: 2000, Day: 1, Padded: "01"}},
		{"test", testTemplate, &t.test, daySlots{Year: 2000, Day: 1, Padded: "01"}},
		{"helpers", helpersTemplate, &t.helpers, partitionSlots{Year: 2000, RootRel: "../.."}},
		{"marker", markerTemplate, &t.marker, partitionSlots{Year: 2000}},
	} {
		tmpl, err := template.New(b.name).Option("missingkey=error").Parse(b.text)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", b.name, err)
		}
		if err := tmpl.Execute(io.Discard, b.probe); err != nil {
			return nil, fmt.Errorf("validate %s template slots: %w", b.name, err)
		}
		*b.dst = tmpl
	}

	return t, nil
}

func (t *Templates) Solution(year int, day domain.Day) (string, error) {
	return render(t.solution, daySlots{Year: year, Day: int(day), Padded: day.Padded()})
}

func (t *Templates) TestSkeleton(year int, day domain.Day) (string, error) {
	return render(t.test, daySlots{Year: year, Day: int(day), Padded: day.Padded()})
}

func (t *Templates) Helpers(p domain.Partition) (string, error) {
	return render(t.helpers, partitionSlotsFor(p))
}

func (t *Templates) PackageMarker(p domain.Partition) (string, error) {
	return render(t.marker, partitionSlotsFor(p))
}

func partitionSlotsFor(p domain.Partition) partitionSlots {
	if p.IsRoot() {
		// tests/ sits directly under the workspace root
		return partitionSlots{Root: true, RootRel: ".."}
	}
	return partitionSlots{Year: p.Year(), RootRel: "../.."}
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
