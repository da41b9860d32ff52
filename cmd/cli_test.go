package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldCreatesFilesAndPrintsPaths(t *testing.T) {
	ws := t.TempDir()

	stdout, _, err := executeCLI(t, ws, "scaffold", "7", "--year", "2025")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Scaffolded day 07")
	assert.Contains(t, stdout, filepath.Join(ws, "2025", "solutions", "day07.go"))
	assert.Contains(t, stdout, filepath.Join(ws, "2025", "tests", "day07_test.go"))

	solution, err := os.ReadFile(filepath.Join(ws, "2025", "solutions", "day07.go"))
	require.NoError(t, err)
	assert.Contains(t, string(solution), "package solutions")
	assert.Contains(t, string(solution), "func PartOne(")

	assert.FileExists(t, filepath.Join(ws, "2025", "tests", "helpers_test.go"))
	assert.FileExists(t, filepath.Join(ws, "2025", "data", "examples", "07.txt"))
	assert.FileExists(t, filepath.Join(ws, "2025", "data", "inputs", "07.txt"))
}

func TestScaffoldSameDayTwiceFails(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "scaffold", "3")
	require.NoError(t, err)

	_, _, err = executeCLI(t, ws, "scaffold", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already scaffolded")
}

func TestScaffoldRejectsOutOfRangeDay(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "scaffold", "26")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 25")
}

func TestScaffoldUsesConfiguredYear(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ws, ".advent.toml"), []byte("year = 2019\n"), 0o644))

	_, _, err := executeCLI(t, ws, "scaffold", "1")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(ws, "2019", "solutions", "day01.go"))
}

func TestYearFlagOverridesConfiguredYear(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ws, ".advent.toml"), []byte("year = 2019\n"), 0o644))

	_, _, err := executeCLI(t, ws, "scaffold", "1", "--year", "2020")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(ws, "2020", "solutions", "day01.go"))
	assert.NoFileExists(t, filepath.Join(ws, "2019", "solutions", "day01.go"))
}

func TestSolveMissingSolution(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "solve", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solution file not found")
}

func TestSolveFreshScaffoldReportsMissingInput(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "scaffold", "4")
	require.NoError(t, err)

	// the scaffolded input placeholder is zero bytes, which counts as absent
	_, _, err = executeCLI(t, ws, "solve", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestSolveRunsScaffoldedSolution(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "scaffold", "4", "--year", "2025")
	require.NoError(t, err)

	input := filepath.Join(ws, "2025", "data", "inputs", "04.txt")
	require.NoError(t, os.WriteFile(input, []byte("a\nb\nc\n"), 0o644))

	stdout, _, err := executeCLI(t, ws, "solve", "4", "--year", "2025")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Day 04")
	assert.Contains(t, stdout, "Part 1: ")
	assert.Contains(t, stdout, "Part 2: ")
	assert.Contains(t, stdout, "ms)")
}

func TestReadMissingPuzzle(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "read", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "puzzle file not found")
}

func TestReadPrintsPuzzleText(t *testing.T) {
	ws := t.TempDir()

	puzzles := filepath.Join(ws, "2025", "data", "puzzles")
	require.NoError(t, os.MkdirAll(puzzles, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(puzzles, "02.md"), []byte("# Day 2: Example Puzzle\n"), 0o644))

	stdout, _, err := executeCLI(t, ws, "read", "2", "--year", "2025")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# Day 2: Example Puzzle")
}

func TestAllWithEmptyWorkspace(t *testing.T) {
	ws := t.TempDir()

	stdout, _, err := executeCLI(t, ws, "all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No solutions found")
}

func TestAllIsolatesPerDayFailures(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "scaffold", "1", "--year", "2025")
	require.NoError(t, err)
	_, _, err = executeCLI(t, ws, "scaffold", "2", "--year", "2025")
	require.NoError(t, err)

	// give day 2 real input, leave day 1's placeholder empty
	input := filepath.Join(ws, "2025", "data", "inputs", "02.txt")
	require.NoError(t, os.WriteFile(input, []byte("x\ny\n"), 0o644))

	stdout, _, err := executeCLI(t, ws, "all", "--year", "2025")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Running 2 days...")
	assert.Contains(t, stdout, "✗ Day 01")
	assert.Contains(t, stdout, "Day 02: ")
	assert.Contains(t, stdout, "Total time: ")
}

func TestTimeRequiresDayOrAll(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "time")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "specify a day or pass --all")
}

func TestTimeMissingTestFile(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "time", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test file not found")
}

func TestDownloadToolMissing(t *testing.T) {
	ws := t.TempDir()
	t.Setenv("PATH", ws)

	_, _, err := executeCLI(t, ws, "download", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aoc command not found")
}

func TestInitWritesConfigAndDirectories(t *testing.T) {
	ws := t.TempDir()

	stdout, _, err := executeCLI(t, ws, "init", "--year", "2022")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialized workspace for 2022")

	raw, err := os.ReadFile(filepath.Join(ws, ".advent.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "year = 2022")

	assert.DirExists(t, filepath.Join(ws, "2022", "solutions"))
	assert.DirExists(t, filepath.Join(ws, "2022", "tests"))
	assert.DirExists(t, filepath.Join(ws, "2022", "data", "inputs"))
}

func TestInitRefusesSecondRun(t *testing.T) {
	ws := t.TempDir()

	_, _, err := executeCLI(t, ws, "init")
	require.NoError(t, err)

	_, _, err = executeCLI(t, ws, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestVersionPrintsBuildVersion(t *testing.T) {
	ws := t.TempDir()

	stdout, _, err := executeCLI(t, ws, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "advent")
}

func executeCLI(t *testing.T, workspace string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ADVENT_WORKSPACE", workspace)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
