package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSignUp(reg)

	m.Attempt("created")
	m.Attempt("failed")
	m.Attempt("failed")
	m.Failure("auth/email-already-in-use")
	m.ObserveProvider(120 * time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.attempts.WithLabelValues("created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.attempts.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("auth/email-already-in-use")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["cuenta_signup_attempts_total"])
	assert.True(t, names["cuenta_signup_failures_total"])
	assert.True(t, names["cuenta_signup_provider_latency_seconds"])
}

func TestSignUp_NilIsNoop(t *testing.T) {
	var m *SignUp
	assert.NotPanics(t, func() {
		m.Attempt("created")
		m.Failure("auth/internal-error")
		m.ObserveProvider(time.Second)
	})
}
