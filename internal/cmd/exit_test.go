package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	ierrors "github.com/ivbench/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "parse error",
			err:      ierrors.ErrParse,
			wantCode: ExitValidationError,
		},
		{
			name:     "wrapped parse error",
			err:      ierrors.Wrap(ierrors.ErrParse, "document malformed"),
			wantCode: ExitValidationError,
		},
		{
			name:     "missing field error",
			err:      ierrors.ErrMissingField,
			wantCode: ExitValidationError,
		},
		{
			name:     "invalid value error",
			err:      ierrors.ErrInvalidValue,
			wantCode: ExitValidationError,
		},
		{
			name:     "inconsistent config error",
			err:      ierrors.ErrInconsistentConfig,
			wantCode: ExitValidationError,
		},
		{
			name:     "not found error",
			err:      ierrors.ErrNotFound,
			wantCode: ExitNotFound,
		},
		{
			name:     "detail error unwraps to its cause",
			err:      ierrors.NewNotFoundError("missing", "f.json", ""),
			wantCode: ExitNotFound,
		},
		{
			name:     "exit error carries its own code",
			err:      &ierrors.ExitError{Err: errors.New("boom"), Code: ExitValidationError},
			wantCode: ExitValidationError,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("unknown error"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExitCodeFromError(tt.err)
			assert.Equal(t, tt.wantCode, got)
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitGeneralError)
	assert.Equal(t, 2, ExitValidationError)
	assert.Equal(t, 5, ExitNotFound)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "General Error", ExitCodeName(ExitGeneralError))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
