// Package metrics exposes Prometheus collectors for sign-up attempts.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SignUp records sign-up outcomes. A nil *SignUp is a no-op.
type SignUp struct {
	attempts *prometheus.CounterVec
	failures *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewSignUp creates the collectors and registers them on reg.
//
// Metrics (namespace "cuenta"):
//   - signup_attempts_total{outcome}: one per submit (invalid, created, failed).
//   - signup_failures_total{code}: provider failures by error code.
//   - signup_provider_latency_seconds: duration of the provider call.
func NewSignUp(reg prometheus.Registerer) *SignUp {
	m := &SignUp{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cuenta",
			Name:      "signup_attempts_total",
			Help:      "Sign-up submissions by outcome.",
		}, []string{"outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cuenta",
			Name:      "signup_failures_total",
			Help:      "Provider failures by error code.",
		}, []string{"code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cuenta",
			Name:      "signup_provider_latency_seconds",
			Help:      "Latency of the account-creation call.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
	if reg != nil {
		reg.MustRegister(m.attempts, m.failures, m.latency)
	}
	return m
}

// Attempt counts one submission with the given outcome.
func (m *SignUp) Attempt(outcome string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(outcome).Inc()
}

// Failure counts a provider failure.
func (m *SignUp) Failure(code string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(code).Inc()
}

// ObserveProvider records how long the provider call took.
func (m *SignUp) ObserveProvider(d time.Duration) {
	if m == nil {
		return
	}
	m.latency.Observe(d.Seconds())
}
