package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cuenta/internal/signup"
	"cuenta/internal/ui/textutil"
)

// ToastView draws at most one toast and hides it after its duration.
type ToastView struct {
	current *signup.Toast
	id      int
}

// Show replaces any visible toast with t and returns the expiry timer.
func (v *ToastView) Show(t signup.Toast) tea.Cmd {
	v.id++
	v.current = &t
	id := v.id
	d := t.Duration
	if d <= 0 {
		d = signup.DefaultToastDuration
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

// expire hides the toast if id is still the one on screen.
func (v *ToastView) expire(id int) {
	if id == v.id {
		v.current = nil
	}
}

// Visible reports whether a toast is on screen.
func (v *ToastView) Visible() bool {
	return v.current != nil
}

// Message returns the visible toast text, or "".
func (v *ToastView) Message() string {
	if v.current == nil {
		return ""
	}
	return v.current.Message
}

// Position returns where the visible toast is anchored.
func (v *ToastView) Position() string {
	if v.current == nil || v.current.Position == "" {
		return signup.PositionMiddle
	}
	return v.current.Position
}

// View renders the toast at full length, or "" when none is visible.
func (v *ToastView) View() string {
	return v.Render(0)
}

// Render draws the toast within width columns; width <= 0 means no limit.
func (v *ToastView) Render(width int) string {
	if v.current == nil {
		return ""
	}
	msg := v.current.Message
	if width > 0 {
		// Styles.Toast pads two columns on each side.
		msg = textutil.Truncate(msg, width-4)
	}
	return Styles.Toast.Render(msg)
}
