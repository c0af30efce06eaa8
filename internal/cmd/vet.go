package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	ierrors "github.com/ivbench/cli/internal/errors"
	"github.com/ivbench/cli/internal/output"
	"github.com/ivbench/cli/internal/sweep"
)

var vetStrictFlag bool

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet <file>...",
		Short: "Validate sweep configuration files",
		Long: `Validate one or more sweep configuration files.

Each file is loaded and checked against every rule: required fields, enum
values, valid-options companion arrays, and consistency between dependent
fields (source range vs source mode, measure range vs measure function,
frequency vs instrument span). Every problem in a file is reported, not just
the first, so one edit pass can fix them all.

Instrument-specific checks use the built-in model catalog, extended by
--models-dir when set. Unknown models produce a warning and skip the
model-dependent checks.

Examples:
  # Validate one file
  ivbench vet sweep_config.json

  # Validate a directory of configurations
  ivbench vet configs/*.json

  # Treat warnings as errors
  ivbench vet sweep_config.json --strict`,
		Args: cobra.MinimumNArgs(1),
		RunE: runVet,
	}

	cmd.Flags().BoolVar(&vetStrictFlag, "strict", false,
		"Treat warnings as validation errors")

	return cmd
}

// fileReport is the outcome of vetting one file.
type fileReport struct {
	path     string
	lines    []string
	warnings []string
	failed   bool
	err      error
}

func runVet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	validator := &sweep.Validator{Catalog: cat, Strict: vetStrictFlag}

	output.Debug("validating configurations",
		"files", len(args),
		"models", cat.Len(),
		"strict", vetStrictFlag,
	)

	reports := make([]*fileReport, len(args))
	vetAll := func() error {
		for i, path := range args {
			reports[i] = vetFile(validator, path)
		}
		return nil
	}

	// A batch can take a moment on large catalogs; show progress on a TTY.
	if len(args) > 1 && output.IsTTY() {
		if err := output.RunWithSpinner(ctx, vetAll,
			output.WithTitle("Validating sweep configurations...")); err != nil {
			return err
		}
	} else {
		_ = vetAll()
	}

	failures := 0
	for _, rep := range reports {
		for _, line := range rep.lines {
			output.Println(line)
		}
		for _, w := range rep.warnings {
			output.Warn(w, "file", rep.path)
		}
		if rep.failed {
			failures++
		}
	}

	if failures > 0 {
		code := ExitValidationError
		// A single missing file is a lookup failure, not a validation one.
		if len(args) == 1 && reports[0].err != nil {
			code = ExitCodeFromError(reports[0].err)
		}
		return &ierrors.ExitError{
			Code:    code,
			Err:     fmt.Errorf("%d of %d file(s) failed validation", failures, len(args)),
			Printed: true,
		}
	}

	output.Println(output.FormatSummary("%d file(s) valid", len(args)))
	return nil
}

// vetFile loads and validates a single file, collecting its report lines.
func vetFile(validator *sweep.Validator, path string) *fileReport {
	rep := &fileReport{path: path}
	base := filepath.Base(path)

	cfg, err := sweep.LoadFile(path)
	if err != nil {
		rep.failed = true
		rep.err = err
		rep.lines = append(rep.lines, output.FormatCrossmark(base+": "+summarizeLoadError(err)))
		return rep
	}
	rep.lines = append(rep.lines, output.FormatVetCheck("Document well-formed", base))

	result := validator.Validate(cfg)
	rep.warnings = result.Warnings

	for _, v := range result.Violations {
		field := v.Field
		if field == "" {
			field = base
		}
		rep.lines = append(rep.lines, output.FormatFieldLine(field, violationStatus(v)))
		rep.lines = append(rep.lines, "  "+v.Message)
	}

	if result.OK() {
		rep.lines = append(rep.lines, output.FormatCheckmark(fmt.Sprintf("%s: configuration valid", base)))
	} else {
		rep.failed = true
		rep.lines = append(rep.lines, output.FormatCrossmark(
			fmt.Sprintf("%s: %d problem(s) found", base, len(result.Violations))))
	}

	return rep
}

// violationStatus maps a violation's sentinel to a field status word.
func violationStatus(v *sweep.Violation) string {
	switch {
	case errors.Is(v.Err, ierrors.ErrMissingField):
		return output.StatusMissing
	case errors.Is(v.Err, ierrors.ErrInconsistentConfig):
		return output.StatusInconsistent
	default:
		return output.StatusInvalid
	}
}

// summarizeLoadError keeps the crossmark line short; the full detail is in
// the error itself.
func summarizeLoadError(err error) string {
	var detail *ierrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
