package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cuenta/internal/form"
	"cuenta/internal/signup"
)

// Submitter runs a sign-up submission; *signup.Controller implements it.
type Submitter interface {
	Submit(ctx context.Context, values form.Values, p signup.Presenter) signup.Result
}

// AppModel is the root model: a routed screen stack with the loading
// indicator, toast and alert modals drawn above it.
type AppModel struct {
	Screens   ScreenStack
	Modals    ModalStack
	Loading   *LoadingIndicator
	Toast     ToastView
	Keys      *KeybindRegistry
	Routes    map[string]func() View
	Submitter Submitter
	Logger    *slog.Logger

	presenter     signup.Presenter
	submitting    bool // a Submit is in flight; cleared by SubmitDoneMsg
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model on the sign-up screen.
func NewAppModel(submitter Submitter, logger *slog.Logger) *AppModel {
	if logger == nil {
		logger = slog.Default()
	}
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "salir")
	reg.BindForRoutes("q", tea.Quit, "salir", []string{signup.HomeRoute})

	a := &AppModel{
		Loading:   NewLoadingIndicator(),
		Keys:      reg,
		Submitter: submitter,
		Logger:    logger,
		Routes: map[string]func() View{
			RouteSignUp:      func() View { return NewSignUpView() },
			signup.HomeRoute: func() View { return NewHomeView() },
		},
	}
	a.Screens.Open(RouteSignUp, NewSignUpView())
	return a
}

// Route returns the route of the screen on top.
func (m *AppModel) Route() string {
	return m.Screens.Route()
}

// Attach wires presenter calls to send, normally (*tea.Program).Send.
// It must be called before the first submission.
func (m *AppModel) Attach(send func(tea.Msg)) {
	m.presenter = NewPresenter(send)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if v := a.Screens.Top(); v != nil {
		return v.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case spinner.TickMsg:
		return a, a.Loading.Update(msg)
	case LoadingMsg:
		if msg.Visible {
			return a, a.Loading.Show()
		}
		a.Loading.Hide()
		return a, nil
	case ToastMsg:
		return a, a.Toast.Show(msg.Toast)
	case toastExpiredMsg:
		a.Toast.expire(msg.id)
		return a, nil
	case AlertMsg:
		modal := NewAlertModal(msg.Alert)
		a.Modals.Push(modal)
		return a, modal.Init()
	case DismissModalMsg:
		a.Modals.Pop()
		return a, nil
	case ResetFormMsg:
		a.Screens.Each(func(v View) {
			if s, ok := v.(*SignUpView); ok {
				s.ResetForm()
			}
		})
		return a, nil
	case NavigateMsg:
		return a, a.navigate(msg.Route)
	case SubmitMsg:
		return a, a.submit(msg.Values)
	case SubmitDoneMsg:
		a.submitting = false
		a.Logger.Debug("ui: submit done",
			slog.String("outcome", string(msg.Result.Outcome)),
			slog.String("code", msg.Result.Code),
			slog.Duration("elapsed", msg.Elapsed))
		return a, nil
	}

	v := a.Screens.Top()
	if v == nil {
		return a, nil
	}
	nv, cmd := v.Update(msg)
	a.Screens.Swap(nv)
	return a, cmd
}

// handleKey dispatches a key to, in order: global bindings, the loading
// indicator (which swallows it), the top modal, route bindings, the screen.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if cmd := a.Keys.Lookup(k, ""); cmd != nil {
		return cmd
	}
	if a.Loading.Visible {
		return nil
	}
	if cmd, ok := a.Modals.UpdateTop(msg); ok {
		return cmd
	}
	if cmd := a.Keys.Lookup(k, a.Route()); cmd != nil {
		return cmd
	}
	v := a.Screens.Top()
	if v == nil {
		return nil
	}
	nv, cmd := v.Update(msg)
	a.Screens.Swap(nv)
	return cmd
}

func (a *appModelAdapter) navigate(route string) tea.Cmd {
	newView, ok := a.Routes[route]
	if !ok {
		a.Logger.Warn("ui: navigate", slog.String("tag", "route"), slog.String("route", route))
		return nil
	}
	v := newView()
	a.Screens.Navigate(route, v)
	return v.Init()
}

// submit runs the submission off the event loop; presenter calls come back
// as messages before SubmitDoneMsg.
func (a *appModelAdapter) submit(values form.Values) tea.Cmd {
	if a.submitting || a.Loading.Visible {
		a.Logger.Debug("ui: submit ignored", slog.String("tag", "submit"))
		return nil
	}
	if a.presenter == nil || a.Submitter == nil {
		a.Logger.Error("ui: submit", slog.String("tag", "wiring"), slog.String("err", "model not attached"))
		return nil
	}
	s, p := a.Submitter, a.presenter
	a.submitting = true
	return func() tea.Msg {
		start := time.Now()
		res := s.Submit(context.Background(), values, p)
		return SubmitDoneMsg{Result: res, Elapsed: time.Since(start)}
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var body string
	switch top, hasModal := a.Modals.Peek(); {
	case a.Loading.Visible:
		body = a.Loading.View()
	case hasModal:
		body = top.View()
	default:
		if v := a.Screens.Top(); v != nil {
			body = v.View()
		}
		body = lipgloss.JoinVertical(lipgloss.Center, body, a.renderHelp())
	}
	if a.Toast.Visible() {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", a.Toast.Render(a.width))
	}
	return place(a.width, a.height, body)
}

// helpProvider is implemented by screens that add their own key hints.
type helpProvider interface {
	HelpBindings() []key.Binding
}

func (a *appModelAdapter) renderHelp() string {
	var extra []key.Binding
	if hp, ok := a.Screens.Top().(helpProvider); ok {
		extra = hp.HelpBindings()
	}
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h.ShortHelpView(NewKeyMap(a.Keys, a.Route(), extra...).ShortHelp())
}
