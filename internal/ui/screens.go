package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a routed screen. Update may hand back a different View, which
// then takes the screen's place under the same route.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

type screen struct {
	route string
	view  View
}

// ScreenStack is the navigation history. Only the top screen is drawn and
// receives input. Navigate replaces the top entry instead of pushing, so
// leaving the sign-up screen for the home screen does not keep the form
// underneath it.
type ScreenStack struct {
	screens []screen
}

// Open pushes v under route.
func (s *ScreenStack) Open(route string, v View) {
	s.screens = append(s.screens, screen{route: route, view: v})
}

// Navigate replaces the top screen with v under route, or opens it when the
// stack is empty.
func (s *ScreenStack) Navigate(route string, v View) {
	if len(s.screens) == 0 {
		s.Open(route, v)
		return
	}
	s.screens[len(s.screens)-1] = screen{route: route, view: v}
}

// Swap stores the result of the top view's Update, keeping its route.
func (s *ScreenStack) Swap(v View) {
	if len(s.screens) == 0 {
		return
	}
	s.screens[len(s.screens)-1].view = v
}

// Top returns the view on screen, or nil.
func (s *ScreenStack) Top() View {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1].view
}

// Route returns the route of the view on screen.
func (s *ScreenStack) Route() string {
	if len(s.screens) == 0 {
		return ""
	}
	return s.screens[len(s.screens)-1].route
}

// Each calls fn for every view, bottom first.
func (s *ScreenStack) Each(fn func(View)) {
	for _, sc := range s.screens {
		fn(sc.view)
	}
}

// Len returns the number of open screens.
func (s *ScreenStack) Len() int {
	return len(s.screens)
}
