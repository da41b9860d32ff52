package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSolutionNotFound    = errors.New("solution file not found")
	ErrTestNotFound        = errors.New("test file not found")
	ErrInputNotFound       = errors.New("input file not found")
	ErrExampleNotFound     = errors.New("example file not found")
	ErrPuzzleNotFound      = errors.New("puzzle file not found")
	ErrAlreadyScaffolded   = errors.New("day already scaffolded")
	ErrContractViolation   = errors.New("solution contract violation")
	ErrDownloadToolMissing = errors.New("aoc command not found in PATH")
)

// ExecutionError wraps a failure raised by a solution's own code during one
// of the three contract phases. It halts execution for that day only.
type ExecutionError struct {
	Day   Day
	Phase string
	Cause error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("day %s: %s: %v", e.Day.Padded(), e.Phase, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}
