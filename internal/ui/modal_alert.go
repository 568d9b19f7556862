package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cuenta/internal/signup"
)

// AlertModal shows a titled message with acknowledgement buttons.
// Enter presses the selected button; Esc dismisses.
type AlertModal struct {
	Alert      signup.Alert
	selected   int
	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
}

// Ensure AlertModal implements View.
var _ View = (*AlertModal)(nil)

// NewAlertModal creates a modal for a; an alert without buttons gets "OK".
func NewAlertModal(a signup.Alert) *AlertModal {
	if len(a.Buttons) == 0 {
		a.Buttons = []string{signup.ButtonOK}
	}
	m := &AlertModal{
		Alert:      a,
		boxStyle:   Styles.BoxSuccess,
		titleStyle: Styles.TitleSuccess,
	}
	if a.Header == signup.TitleError {
		m.boxStyle = Styles.BoxDanger
		m.titleStyle = Styles.TitleDanger
	}
	return m
}

// Init implements View.
func (m *AlertModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AlertModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", " ":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "left", "shift+tab":
			if m.selected > 0 {
				m.selected--
			}
		case "right", "tab":
			if m.selected < len(m.Alert.Buttons)-1 {
				m.selected++
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *AlertModal) View() string {
	content := m.titleStyle.Render(m.Alert.Header) + "\n\n"
	content += Styles.Normal.Render(m.Alert.Message) + "\n\n"

	buttons := make([]string, len(m.Alert.Buttons))
	for i, b := range m.Alert.Buttons {
		label := "[ " + b + " ]"
		if i == m.selected {
			buttons[i] = Styles.Button.Render(label)
		} else {
			buttons[i] = Styles.Hint.Render(label)
		}
	}
	content += lipgloss.PlaceHorizontal(
		lipgloss.Width(content),
		lipgloss.Right,
		strings.Join(buttons, " "),
	)
	return m.boxStyle.Render(content)
}
