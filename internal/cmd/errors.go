package cmd

import (
	"errors"

	ierrors "github.com/ivbench/cli/internal/errors"
)

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *ierrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ierrors.ErrParse),
		errors.Is(err, ierrors.ErrMissingField),
		errors.Is(err, ierrors.ErrInvalidValue),
		errors.Is(err, ierrors.ErrInconsistentConfig):
		return ExitValidationError
	case errors.Is(err, ierrors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
