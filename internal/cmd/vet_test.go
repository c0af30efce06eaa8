package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierrors "github.com/ivbench/cli/internal/errors"
	"github.com/ivbench/cli/internal/output"
	"github.com/ivbench/cli/internal/sweep"
)

// writeSweepFile marshals cfg into a temp file and returns its path.
func writeSweepFile(t *testing.T, cfg *sweep.Config) string {
	t.Helper()
	data, err := sweep.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "sweep_config.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func runVetCmd(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewVetCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestNewVetCmd(t *testing.T) {
	cmd := NewVetCmd()

	assert.Contains(t, cmd.Use, "vet")
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("strict"))
}

func TestVet_ValidFile(t *testing.T) {
	path := writeSweepFile(t, TemplateConfig())

	assert.NoError(t, runVetCmd(t, path))
}

func TestVet_InvalidValue(t *testing.T) {
	cfg := TemplateConfig()
	cfg.Sourcemeter.SourceRange = 10
	cfg.Sourcemeter.SourceRangeValidOptions = []float64{0.2, 2, 20, 200}
	path := writeSweepFile(t, cfg)

	err := runVetCmd(t, path)
	require.Error(t, err)

	var exitErr *ierrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitValidationError, exitErr.Code)
	assert.True(t, exitErr.Printed)
}

func TestVet_MissingFile(t *testing.T) {
	err := runVetCmd(t, filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	var exitErr *ierrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitNotFound, exitErr.Code)
}

func TestVet_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := runVetCmd(t, path)
	require.Error(t, err)

	var exitErr *ierrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitValidationError, exitErr.Code)
}

func TestVet_MultipleFilesOneBad(t *testing.T) {
	good := writeSweepFile(t, TemplateConfig())

	bad := TemplateConfig()
	bad.Sweep.NumberOfPoints = 0
	badPath := writeSweepFile(t, bad)

	err := runVetCmd(t, good, badPath)
	require.Error(t, err)

	var exitErr *ierrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitValidationError, exitErr.Code)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestVet_StrictPromotesWarnings(t *testing.T) {
	cfg := TemplateConfig()
	cfg.Sourcemeter.NPLC = 3.5
	path := writeSweepFile(t, cfg)

	// Accepted with a warning normally
	assert.NoError(t, runVetCmd(t, path))

	// Rejected under --strict
	err := runVetCmd(t, path, "--strict")
	require.Error(t, err)

	var exitErr *ierrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitValidationError, exitErr.Code)
}

func TestViolationStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing field", ierrors.ErrMissingField, output.StatusMissing},
		{"inconsistent", ierrors.ErrInconsistentConfig, output.StatusInconsistent},
		{"invalid value", ierrors.ErrInvalidValue, output.StatusInvalid},
		{"unclassified", errors.New("boom"), output.StatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &sweep.Violation{Field: "f", Message: "m", Err: tt.err}
			assert.Equal(t, tt.want, violationStatus(v))
		})
	}
}
