package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, class names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" and "registered" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBorder is used for table borders and tree connectors.
	ColorBorder = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, class names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (step prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Step status constants.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusSkipped     = "skipped"
	StatusRegistered  = "registered"
	StatusUnchanged   = "unchanged"
	StatusFailed      = "failed"
)

// StatusStyle returns the lipgloss style for a given step status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusRegistered:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped, StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width of the path column so status
// words align.
const minPathColumnWidth = 56

// FormatStepLine renders one pipeline step with a right-aligned, color-coded
// status suffix.
//
// Format: <step>:<path>  <status>
func FormatStepLine(step, path, status string) string {
	padding := minPathColumnWidth - len(step) - len(path) - 1
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render(step + ":")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatFailure renders a red cross with a message for stdout output.
func FormatFailure(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}

// FormatSummary renders the final line of a generation run.
func FormatSummary(className string, failed int) string {
	if failed == 0 {
		return FormatCheckmark(StyleSummary.Render(fmt.Sprintf("%s created successfully.", className)))
	}
	return FormatFailure(StyleSummary.Render(fmt.Sprintf("%s completed with %d failed step(s).", className, failed)))
}
