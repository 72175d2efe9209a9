package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, connection failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown entity kinds.
	ExitUsage = 2

	// ExitNotFound indicates a requested row was not found.
	// Use for: Update or delete of an id that does not exist.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Fields outside the allow-list, malformed numbers, values too
	// long for their column, constraint violations and non-positive counts.
	ExitValidation = 5
)

// CodeError carries the process exit code of a command whose failure has
// already been reported to the user
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps a dispatch outcome onto an exit code
func ExitCodeFor(outcome dispatch.Outcome) int {
	switch outcome {
	case dispatch.OutcomeOK:
		return ExitSuccess
	case dispatch.OutcomeNotFound:
		return ExitNotFound
	case dispatch.OutcomeRejected:
		return ExitValidation
	default:
		return ExitError
	}
}

// ResultError returns nil for a successful result and a *CodeError otherwise
func ResultError(res dispatch.Result) error {
	if res.OK() {
		return nil
	}
	err := res.Err
	if err == nil {
		err = errors.New(res.Message)
	}
	return &CodeError{Code: ExitCodeFor(res.Outcome), Err: err}
}

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
