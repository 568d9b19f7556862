package signup

import (
	"encoding/json"
	"sync"
)

// EffectType names a presenter call.
type EffectType string

const (
	EffectLoading        EffectType = "loading"
	EffectDismissLoading EffectType = "dismiss_loading"
	EffectToast          EffectType = "toast"
	EffectAlert          EffectType = "alert"
	EffectResetForm      EffectType = "reset_form"
	EffectNavigate       EffectType = "navigate"
)

// Effect is one recorded presenter call.
type Effect struct {
	Type  EffectType `json:"type"`
	Toast *Toast     `json:"toast,omitempty"`
	Alert *Alert     `json:"alert,omitempty"`
	Route string     `json:"route,omitempty"`
}

// MarshalJSON encodes the duration in milliseconds for web clients.
func (t Toast) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message    string `json:"message"`
		DurationMS int64  `json:"duration_ms"`
		Position   string `json:"position"`
	}{t.Message, t.Duration.Milliseconds(), t.Position})
}

// Recorder is a Presenter that keeps the calls it receives, for clients
// that render the feedback themselves.
type Recorder struct {
	mu      sync.Mutex
	effects []Effect
}

var _ Presenter = (*Recorder)(nil)

func (r *Recorder) add(e Effect) {
	r.mu.Lock()
	r.effects = append(r.effects, e)
	r.mu.Unlock()
}

func (r *Recorder) ShowLoading()    { r.add(Effect{Type: EffectLoading}) }
func (r *Recorder) DismissLoading() { r.add(Effect{Type: EffectDismissLoading}) }
func (r *Recorder) Toast(t Toast)   { r.add(Effect{Type: EffectToast, Toast: &t}) }
func (r *Recorder) Alert(a Alert)   { r.add(Effect{Type: EffectAlert, Alert: &a}) }
func (r *Recorder) ResetForm()      { r.add(Effect{Type: EffectResetForm}) }
func (r *Recorder) Navigate(route string) {
	r.add(Effect{Type: EffectNavigate, Route: route})
}

// Effects returns a copy of the recorded calls in order.
func (r *Recorder) Effects() []Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Effect, len(r.effects))
	copy(out, r.effects)
	return out
}

// Types returns just the effect types, in order.
func (r *Recorder) Types() []EffectType {
	effects := r.Effects()
	out := make([]EffectType, len(effects))
	for i, e := range effects {
		out[i] = e.Type
	}
	return out
}
