package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, spinner
	ColorHighlight = "205" // Magenta - focused input, borders
	ColorDanger    = "196" // Red - error alerts
	ColorSuccess   = "42"  // Green - success alerts
	ColorMuted     = "241" // Gray - hints, blurred labels
	ColorText      = "252" // Light gray - normal text
	ColorToastBg   = "236" // Dark gray - toast background
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // Screen titles
	TitleSuccess lipgloss.Style // Alert header after a successful sign-up
	TitleDanger  lipgloss.Style // Alert header after a failure

	Box        lipgloss.Style // Screen frame
	BoxSuccess lipgloss.Style // Success alert frame
	BoxDanger  lipgloss.Style // Error alert frame
	BoxLoading lipgloss.Style // Loading indicator frame

	Label        lipgloss.Style // Field label
	LabelFocused lipgloss.Style // Label of the focused field
	Normal       lipgloss.Style
	Hint         lipgloss.Style // Help/hint text
	Button       lipgloss.Style // Alert button
	Toast        lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleSuccess: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSuccess)),
	TitleDanger: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxSuccess: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	BoxLoading: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	LabelFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),
	Toast: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorToastBg)).
		Padding(0, 2),
}
