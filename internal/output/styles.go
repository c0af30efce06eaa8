package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, field paths,
	// model names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "valid" field status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "warning" field status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the failing field statuses.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorRedCross is used for the failure cross (✘).
	ColorRedCross = lipgloss.Color("196")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (paths, fields, models).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Field status constants.
const (
	StatusValid        = "valid"
	StatusWarning      = "warning"
	StatusMissing      = "missing"
	StatusInvalid      = "invalid"
	StatusInconsistent = "inconsistent"
)

// statusStyle returns the lipgloss style for a field status string. Unknown
// statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusValid:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusMissing, StatusInvalid, StatusInconsistent:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFieldColumnWidth is the minimum width for the field path column before
// the status suffix, so status words align across lines.
const minFieldColumnWidth = 44

// FormatFieldLine renders a field path with a right-aligned, color-coded
// status suffix.
//
// Format: f:<section.field>  <status>
//
// The "f:" prefix is dim, the path is cyan, and the status uses statusStyle.
func FormatFieldLine(field, status string) string {
	padding := minFieldColumnWidth - len(field)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("f:")
	styledField := StyleNoun.Render(field)
	styledStatus := statusStyle(status).Render(status)

	return prefix + styledField + strings.Repeat(" ", padding) + styledStatus
}

// minVetLabelWidth aligns the detail column across vet check lines.
const minVetLabelWidth = 32

// FormatVetCheck renders one passed vet check: a checkmark, a label and an
// optional dim detail aligned in a column.
func FormatVetCheck(label, detail string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	if detail == "" {
		return check + " " + label
	}

	padding := minVetLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return check + " " + label + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCrossmark renders a red cross with a message.
func FormatCrossmark(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorRedCross).Render("✘")
	return cross + " " + msg
}

// FormatSummary renders the bold final line of a command.
func FormatSummary(format string, args ...interface{}) string {
	return StyleSummary.Render(fmt.Sprintf(format, args...))
}
