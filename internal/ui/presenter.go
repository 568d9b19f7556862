package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"cuenta/internal/signup"
)

// Presenter forwards signup feedback into a running program as messages.
// Submit runs off the Update goroutine, so every call is a Send.
type Presenter struct {
	send func(tea.Msg)
}

var _ signup.Presenter = (*Presenter)(nil)

// NewPresenter returns a Presenter that delivers messages via send,
// typically (*tea.Program).Send.
func NewPresenter(send func(tea.Msg)) *Presenter {
	return &Presenter{send: send}
}

func (p *Presenter) ShowLoading()          { p.send(LoadingMsg{Visible: true}) }
func (p *Presenter) DismissLoading()       { p.send(LoadingMsg{Visible: false}) }
func (p *Presenter) Toast(t signup.Toast)  { p.send(ToastMsg{Toast: t}) }
func (p *Presenter) Alert(a signup.Alert)  { p.send(AlertMsg{Alert: a}) }
func (p *Presenter) ResetForm()            { p.send(ResetFormMsg{}) }
func (p *Presenter) Navigate(route string) { p.send(NavigateMsg{Route: route}) }
