package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cuenta/internal/form"
)

// RouteSignUp is the route of the sign-up screen.
const RouteSignUp = "/signup"

var fieldLabels = map[form.Field]string{
	form.FieldEmail:    "Correo electrónico",
	form.FieldPassword: "Contraseña",
}

// SignUpView is the sign-up screen: an email and a masked password input.
// Enter on the last field sends SubmitMsg; validation is left to the
// controller so every tap goes through the same feedback path.
type SignUpView struct {
	Form   *form.SignUp
	Focus  *FocusManager
	inputs map[form.Field]*textinput.Model
}

// Ensure SignUpView implements View.
var _ View = (*SignUpView)(nil)

// NewSignUpView creates the screen with the email field focused.
func NewSignUpView() *SignUpView {
	v := &SignUpView{
		Form:   form.New(),
		inputs: make(map[form.Field]*textinput.Model, len(form.Fields)),
	}
	for _, f := range form.Fields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 254
		ti.Width = 32
		switch f {
		case form.FieldEmail:
			ti.Placeholder = "nombre@ejemplo.com"
		case form.FieldPassword:
			ti.Placeholder = "6 a 20 caracteres"
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		v.inputs[f] = &ti
	}
	v.Focus = NewFocusManager(form.Fields...)
	v.Focus.OnChange = func(from, to form.Field) {
		if in, ok := v.inputs[from]; ok {
			in.Blur()
		}
		if in, ok := v.inputs[to]; ok {
			in.Focus()
		}
	}
	v.inputs[v.Focus.Current].Focus()
	return v
}

// Init implements View.
func (v *SignUpView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *SignUpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			v.Focus.Next()
			return v, nil
		case "shift+tab", "up":
			v.Focus.Prev()
			return v, nil
		case "enter":
			if !v.Focus.Last() {
				v.Focus.Next()
				return v, nil
			}
			values := v.Form.Values()
			return v, func() tea.Msg { return SubmitMsg{Values: values} }
		}
	}

	in := v.inputs[v.Focus.Current]
	updated, cmd := in.Update(msg)
	*in = updated
	v.Form.Set(v.Focus.Current, in.Value())
	return v, cmd
}

// ResetForm clears both inputs and focuses the email field again.
func (v *SignUpView) ResetForm() {
	v.Form.Reset()
	for _, in := range v.inputs {
		in.Reset()
	}
	v.Focus.SetFocus(form.FieldEmail)
}

// Input returns the text input for f.
func (v *SignUpView) Input(f form.Field) *textinput.Model {
	return v.inputs[f]
}

// HelpBindings returns the screen's own keys for the help line.
func (v *SignUpView) HelpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "siguiente campo")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "registrarse")),
	}
}

// View implements View.
func (v *SignUpView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Crear cuenta"))
	b.WriteString("\n\n")
	for _, f := range form.Fields {
		label := Styles.Label
		if f == v.Focus.Current {
			label = Styles.LabelFocused
		}
		b.WriteString(label.Render(fieldLabels[f]))
		b.WriteString("\n")
		b.WriteString(v.inputs[f].View())
		b.WriteString("\n\n")
	}
	b.WriteString(Styles.Button.Render("[ Registrarse ]"))
	return Styles.Box.Render(b.String())
}
