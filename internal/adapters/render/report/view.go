// Package report renders execution and scaffold outcomes for the console.
// All functions are pure string builders; callers own the writers.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"adventcli/internal/domain"
	"adventcli/internal/runner"
	"adventcli/internal/scaffold"
)

const ruleWidth = 40

// SolveView renders a single day's full results block.
func SolveView(r domain.ExecutionReport) string {
	s := newStyles()

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Day "+r.Day.Padded()),
		s.rule.Render(strings.Repeat("-", ruleWidth)),
		partLine("Part 1", r.PartOne, s),
		partLine("Part 2", r.PartTwo, s),
	)
}

func partLine(label string, part domain.PartResult, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.label.Render(label+": "),
		s.value.Render(fmt.Sprintf("%v", part.Value)),
		" ",
		s.timing.Render("("+formatMillis(part.Elapsed)+")"),
	)
}

// BatchHeader opens a batch run.
func BatchHeader(days int) string {
	s := newStyles()
	if days == 0 {
		return s.empty.Render("No solutions found")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Running %d days...", days),
		s.rule.Render(strings.Repeat("=", ruleWidth)),
	)
}

// DayLine renders one batch row: results for a clean run, the failure
// reason otherwise.
func DayLine(r domain.ExecutionReport) string {
	s := newStyles()

	if r.Failed() {
		return s.failure.Render(fmt.Sprintf("✗ Day %s: %v", r.Day.Padded(), r.Err))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.success.Render("Day "+r.Day.Padded()+": "),
		s.value.Render(fmt.Sprintf("%v, %v", r.PartOne.Value, r.PartTwo.Value)),
		" ",
		s.timing.Render("("+formatMillis(r.Elapsed())+")"),
	)
}

// BatchFooter closes a batch run with the aggregate over succeeded days.
func BatchFooter(summary runner.Summary) string {
	s := newStyles()

	return lipgloss.JoinVertical(lipgloss.Left,
		s.rule.Render(strings.Repeat("=", ruleWidth)),
		s.label.Render("Total time: ")+s.value.Render(formatMillis(summary.Total)),
	)
}

// ScaffoldView lists the created paths and any download warning.
func ScaffoldView(day domain.Day, result scaffold.Result, downloaded bool) string {
	s := newStyles()

	lines := []string{
		s.success.Render("✓ Scaffolded day " + day.Padded()),
		"  " + s.label.Render("Solution: ") + s.path.Render(result.Set.Solution),
		"  " + s.label.Render("Tests: ") + s.path.Render(result.Set.Test),
		"  " + s.label.Render("Example: ") + s.path.Render(result.Set.Example),
	}

	if result.DownloadWarning != nil {
		lines = append(lines, s.warning.Render(fmt.Sprintf("  Warning: could not download data: %v", result.DownloadWarning)))
	} else if downloaded {
		lines = append(lines, "  "+s.label.Render("Input and puzzle downloaded"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", d.Seconds()*1000)
}
