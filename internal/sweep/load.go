package sweep

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	ierrors "github.com/ivbench/cli/internal/errors"
)

// Load reads a sweep configuration document from r. Decoding is strict:
// unknown keys, mistyped values and missing top-level sections abort
// immediately with an error wrapping ErrParse. Field-level problems are the
// validator's job.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data, "")
}

// LoadFile reads a sweep configuration document from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ierrors.NewNotFoundError("sweep configuration file not found", path,
				"Run 'ivbench init' to create a template configuration")
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parse(data, path)
}

// document mirrors Config with pointer sections so absent sections are
// distinguishable from empty ones.
type document struct {
	Sourcemeter *SourcemeterConfig `json:"sourcemeter"`
	Analyzer    *AnalyzerConfig    `json:"impedance_analyzer"`
	Sweep       *SweepConfig       `json:"sweep"`
}

func parse(data []byte, location string) (*Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, parseError(err, location)
	}

	// A second value after the document is as malformed as a bad token.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ierrors.NewParseError("trailing data after configuration document", location, "")
	}

	var missing []string
	if doc.Sourcemeter == nil {
		missing = append(missing, "sourcemeter")
	}
	if doc.Analyzer == nil {
		missing = append(missing, "impedance_analyzer")
	}
	if doc.Sweep == nil {
		missing = append(missing, "sweep")
	}
	if len(missing) > 0 {
		return nil, ierrors.NewParseError(
			fmt.Sprintf("required section(s) absent: %v", missing), location,
			"A sweep configuration needs sourcemeter, impedance_analyzer and sweep sections")
	}

	return &Config{
		Sourcemeter: *doc.Sourcemeter,
		Analyzer:    *doc.Analyzer,
		Sweep:       *doc.Sweep,
	}, nil
}

// parseError maps an encoding/json error onto the ErrParse taxonomy,
// preserving the offending field path when the decoder knows it.
func parseError(err error, location string) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ierrors.DetailError{
			Type:     "parse failed",
			Message:  fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
			Location: location,
			Field:    typeErr.Field,
			Cause:    ierrors.ErrParse,
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return ierrors.NewParseError(
			fmt.Sprintf("%v (offset %d)", syntaxErr, syntaxErr.Offset), location, "")
	}

	return ierrors.NewParseError(err.Error(), location, "")
}

// Marshal serializes cfg back into the document format. Load(Marshal(cfg))
// reproduces cfg exactly.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append(data, '\n'), nil
}
