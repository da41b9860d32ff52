package domain

import "time"

// PartResult is one puzzle part's answer with its wall-clock time.
type PartResult struct {
	Value   any
	Elapsed time.Duration
}

// ExecutionReport is the per-day outcome of a harness run. Either Err is set
// or both part results are. Reports are console-only and never persisted.
type ExecutionReport struct {
	Day     Day
	PartOne PartResult
	PartTwo PartResult
	Err     error
}

func (r ExecutionReport) Failed() bool {
	return r.Err != nil
}

// Elapsed is the combined time of both parts.
func (r ExecutionReport) Elapsed() time.Duration {
	return r.PartOne.Elapsed + r.PartTwo.Elapsed
}
