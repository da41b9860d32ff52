// Package runner executes loaded solutions against puzzle input and measures
// per-part wall-clock time.
package runner

import (
	"time"

	"adventcli/internal/domain"
	"adventcli/internal/inputs"
	"adventcli/internal/ports"
	"adventcli/internal/registry"
	"adventcli/internal/solution"
)

type Harness struct {
	loader   *solution.Loader
	reader   *inputs.Reader
	registry *registry.Enumerator
	clock    ports.Clock
}

func NewHarness(loader *solution.Loader, reader *inputs.Reader, enum *registry.Enumerator, clock ports.Clock) *Harness {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Harness{
		loader:   loader,
		reader:   reader,
		registry: enum,
		clock:    clock,
	}
}

// Summary aggregates a batch run. Total covers only fully-succeeded days.
type Summary struct {
	Reports   []domain.ExecutionReport
	Succeeded int
	Total     time.Duration
}

// RunOne loads and executes a single day: parse once, then part one and part
// two in that order, each timed independently. The first failure wins.
func (h *Harness) RunOne(day domain.Day, p domain.Partition) (domain.ExecutionReport, error) {
	report := domain.ExecutionReport{Day: day}

	unit, err := h.loader.Load(day, p)
	if err != nil {
		report.Err = err
		return report, err
	}

	raw, err := h.reader.Input(day, p)
	if err != nil {
		report.Err = err
		return report, err
	}

	data, err := unit.ParseInput(raw)
	if err != nil {
		report.Err = &domain.ExecutionError{Day: day, Phase: "parse input", Cause: err}
		return report, report.Err
	}

	report.PartOne, err = h.timePart(day, "part one", unit.PartOne, data)
	if err != nil {
		report.Err = err
		return report, err
	}

	report.PartTwo, err = h.timePart(day, "part two", unit.PartTwo, data)
	if err != nil {
		report.Err = err
		return report, err
	}

	return report, nil
}

// RunAll executes every scaffolded day in ascending order, strictly
// sequentially. A day's failure is reported through emit and never aborts
// the batch.
func (h *Harness) RunAll(p domain.Partition, emit func(domain.ExecutionReport)) (Summary, error) {
	days, err := h.registry.List(p)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Reports: make([]domain.ExecutionReport, 0, len(days))}
	for _, day := range days {
		report, err := h.RunOne(day, p)
		summary.Reports = append(summary.Reports, report)
		if err == nil {
			summary.Succeeded++
			summary.Total += report.Elapsed()
		}
		if emit != nil {
			emit(report)
		}
	}

	return summary, nil
}

func (h *Harness) timePart(day domain.Day, phase string, part func(any) (any, error), data any) (domain.PartResult, error) {
	start := h.clock.Now()
	value, err := part(data)
	elapsed := h.clock.Now().Sub(start)

	if err != nil {
		return domain.PartResult{}, &domain.ExecutionError{Day: day, Phase: phase, Cause: err}
	}

	return domain.PartResult{Value: value, Elapsed: elapsed}, nil
}
