package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffFiles computes a human-readable, structure-aware diff between two
// configuration documents on disk. ytbx handles both JSON and YAML inputs.
// Returns the empty string when the documents are semantically identical.
func DiffFiles(fromPath, toPath string) (string, error) {
	from, err := ytbx.LoadFile(fromPath)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", fromPath, err)
	}

	to, err := ytbx.LoadFile(toPath)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", toPath, err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing documents: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report)
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	// Clean up output - remove trailing whitespace from lines
	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
