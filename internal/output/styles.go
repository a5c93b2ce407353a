package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the CLI. These are the single source of truth; never
// use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, library names, URLs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success checkmarks and "updated" status.
	ColorGreen = lipgloss.Color("10")

	// ColorYellow is used for warnings and "skipped" status.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for "unchanged" status and structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles mapping domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (file paths, library names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSuccess styles success markers.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarn styles warning markers.
	StyleWarn = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome (unchanged files, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeading styles section headings and summary lines.
	StyleHeading = lipgloss.NewStyle().Bold(true)
)

// File patch status constants, reported per patched file.
const (
	StatusUpdated   = "updated"
	StatusUnchanged = "unchanged"
	StatusNotFound  = "not found"
)

// StatusStyle returns the lipgloss style for a file patch status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusUpdated:
		return StyleSuccess
	case StatusUnchanged:
		return StyleDim
	case StatusNotFound:
		return StyleWarn
	default:
		return lipgloss.NewStyle()
	}
}

// Successf prints a green checkmark line to stdout.
func Successf(format string, args ...any) {
	fmt.Printf("%s %s\n", StyleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// Warnf prints a yellow warning line to stdout.
func Warnf(format string, args ...any) {
	fmt.Printf("%s %s\n", StyleWarn.Render("⚠"), fmt.Sprintf(format, args...))
}

// Infof prints an indented informational line to stdout.
func Infof(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
