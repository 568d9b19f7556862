package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModalStack holds the open modals; only the top one receives keys.
type ModalStack struct {
	Stack []View
}

// Push opens v above any existing modal.
func (s *ModalStack) Push(v View) {
	s.Stack = append(s.Stack, v)
}

// Pop closes the top modal and returns it.
func (s *ModalStack) Pop() (View, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top modal without closing it.
func (s *ModalStack) Peek() (View, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open modals.
func (s *ModalStack) Len() int {
	return len(s.Stack)
}

// UpdateTop routes msg to the top modal. The bool is false when no modal
// is open and msg should go to the screen instead.
func (s *ModalStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	v, cmd := (*top).Update(msg)
	*top = v
	return cmd, true
}

// place centres fg in a width x height area. With no known size fg is
// returned as is.
func place(width, height int, fg string) string {
	if width <= 0 || height <= 0 {
		return fg
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, fg)
}
