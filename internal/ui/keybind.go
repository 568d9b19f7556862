package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to app-level commands, optionally limited to
// some routes. Keys use tea.KeyMsg.String() notation: "q", "ctrl+c", "esc".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	routes       map[string][]string // nil/empty = every route
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		routes:       make(map[string][]string),
	}
}

// Bind registers k on every route. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd, desc string) {
	r.BindForRoutes(k, cmd, desc, nil)
}

// BindForRoutes registers k only while one of routes is on screen.
// Text-entry screens leave plain letters unbound so they reach the inputs.
func (r *KeybindRegistry) BindForRoutes(k string, cmd tea.Cmd, desc string, routes []string) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
	if len(routes) > 0 {
		r.routes[k] = routes
	} else {
		delete(r.routes, k)
	}
}

// Lookup returns the command bound to k on route, or nil.
func (r *KeybindRegistry) Lookup(k, route string) tea.Cmd {
	cmd := r.bindings[k]
	if cmd == nil || !r.appliesTo(k, route) {
		return nil
	}
	return cmd
}

func (r *KeybindRegistry) appliesTo(k, route string) bool {
	routes, ok := r.routes[k]
	if !ok || len(routes) == 0 {
		return true
	}
	for _, rt := range routes {
		if rt == route {
			return true
		}
	}
	return false
}

// Hints returns the described bindings active on route.
func (r *KeybindRegistry) Hints(route string) map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil || !r.appliesTo(k, route) {
			continue
		}
		if d := r.descriptions[k]; d != "" {
			out[k] = d
		}
	}
	return out
}

// KeyMap implements help.KeyMap over the registry for one route, plus the
// screen's own extra bindings.
type KeyMap struct {
	registry *KeybindRegistry
	route    string
	extra    []key.Binding
}

var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap creates a KeyMap for route.
func NewKeyMap(registry *KeybindRegistry, route string, extra ...key.Binding) *KeyMap {
	return &KeyMap{registry: registry, route: route, extra: extra}
}

// ShortHelp returns the screen bindings followed by the app bindings in
// key order.
func (km *KeyMap) ShortHelp() []key.Binding {
	bindings := append([]key.Binding(nil), km.extra...)
	if km.registry == nil {
		return bindings
	}
	hints := km.registry.Hints(km.route)
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}

// FullHelp returns a single column with the ShortHelp bindings.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
