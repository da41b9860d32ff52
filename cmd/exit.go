package cmd

import (
	"errors"
	"fmt"
)

// ExitStatusError carries a subprocess exit status that should become the
// process's own, e.g. from the delegated benchmark runner.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exit *ExitStatusError
	if errors.As(err, &exit) {
		return exit.Code
	}

	return 1
}
