package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/flashquiz/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage failures, configuration errors, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid IDs, unknown flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested deck or card was not found.
	ExitNotFound = 3

	// ExitDataErr indicates an unreadable, malformed or unwritable file.
	// Use for: Import/export failures.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank names, questions or answers, and duplicate deck names.
	ExitValidation = 5
)

// CodedError carries the process exit code of a failure that was already
// reported to the user.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error { return e.Err }

// ExitCode maps an error to a process exit code
func ExitCode(err error) int {
	var exitErr *CodedError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrDuplicateName):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrIO):
		return ExitDataErr
	default:
		return ExitError
	}
}

// UsageError builds an error that exits with ExitUsage
func UsageError(message string) error {
	return &CodedError{Code: ExitUsage, Err: errors.New(message)}
}
