package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeView is the landing screen after a successful sign-up.
type HomeView struct{}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the home screen.
func NewHomeView() *HomeView {
	return &HomeView{}
}

// Init implements View.
func (v *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View. Quit is an app-level binding.
func (v *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	return v, nil
}

// HelpBindings returns the screen's own keys for the help line.
func (v *HomeView) HelpBindings() []key.Binding {
	return nil
}

// View implements View.
func (v *HomeView) View() string {
	return Styles.Box.Render(
		Styles.Title.Render("Inicio") + "\n\n" +
			Styles.Normal.Render("Bienvenido. Tu cuenta está lista."),
	)
}
