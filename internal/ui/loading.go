package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingIndicator is the blocking spinner shown while an account is created.
type LoadingIndicator struct {
	Visible bool
	Label   string
	spinner spinner.Model
}

// NewLoadingIndicator returns a hidden indicator.
func NewLoadingIndicator() *LoadingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &LoadingIndicator{Label: "Creando cuenta…", spinner: s}
}

// Show makes the indicator visible and starts the spinner.
func (l *LoadingIndicator) Show() tea.Cmd {
	if l.Visible {
		return nil
	}
	l.Visible = true
	return l.spinner.Tick
}

// Hide stops drawing the indicator. Pending ticks are dropped in Update.
func (l *LoadingIndicator) Hide() {
	l.Visible = false
}

// Update advances the spinner while visible.
func (l *LoadingIndicator) Update(msg tea.Msg) tea.Cmd {
	if !l.Visible {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the indicator, or "" when hidden.
func (l *LoadingIndicator) View() string {
	if !l.Visible {
		return ""
	}
	return Styles.BoxLoading.Render(l.spinner.View() + " " + Styles.Normal.Render(l.Label))
}
