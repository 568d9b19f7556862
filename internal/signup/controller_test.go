package signup

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"cuenta/internal/form"
	"cuenta/internal/identity"
	"cuenta/internal/metrics"
)

// fakeProvider returns err (or a credential) and counts calls.
type fakeProvider struct {
	mu    sync.Mutex
	calls []form.Values
	err   error
}

func (f *fakeProvider) CreateUserWithEmailAndPassword(_ context.Context, email, password string) (identity.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, form.Values{Email: email, Password: password})
	if f.err != nil {
		return identity.Credential{}, f.err
	}
	return identity.Credential{UID: "uid-1", Email: email, Provider: "fake"}, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var validValues = form.Values{Email: "ana@example.com", Password: "secreto"}

func TestSubmit_InvalidFormShowsToast(t *testing.T) {
	tests := []struct {
		name   string
		values form.Values
	}{
		{"empty email", form.Values{Password: "secreto"}},
		{"malformed email", form.Values{Email: "ana@", Password: "secreto"}},
		{"short password", form.Values{Email: "ana@example.com", Password: "12345"}},
		{"long password", form.Values{Email: "ana@example.com", Password: strings.Repeat("a", 21)}},
		{"empty form", form.Values{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			rec := &Recorder{}

			res := NewController(provider).Submit(context.Background(), tt.values, rec)

			assert.Equal(t, OutcomeInvalid, res.Outcome)
			assert.Equal(t, 0, provider.callCount(), "provider must not be contacted")
			assert.Equal(t, []EffectType{EffectLoading, EffectDismissLoading, EffectToast}, rec.Types())

			toast := rec.Effects()[2].Toast
			require.NotNil(t, toast)
			assert.Equal(t, Toast{Message: MsgServerIssue, Duration: DefaultToastDuration, Position: PositionMiddle}, *toast)
		})
	}
}

func TestSubmit_SuccessResetsAlertsAndNavigates(t *testing.T) {
	provider := &fakeProvider{}
	rec := &Recorder{}

	res := NewController(provider).Submit(context.Background(), validValues, rec)

	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.Equal(t, "uid-1", res.Credential.UID)
	assert.Equal(t, []form.Values{validValues}, provider.calls)
	assert.Equal(t, []EffectType{
		EffectLoading, EffectDismissLoading, EffectResetForm, EffectAlert, EffectNavigate,
	}, rec.Types())

	effects := rec.Effects()
	assert.Equal(t, &Alert{Header: TitleSuccess, Message: MsgAccountCreated, Buttons: []string{ButtonOK}}, effects[3].Alert)
	assert.Equal(t, HomeRoute, effects[4].Route)
}

func TestSubmit_ProviderErrorsMapToAlerts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want string
	}{
		{"invalid email", identity.NewError(identity.CodeInvalidEmail, nil), identity.CodeInvalidEmail, MsgInvalidEmail},
		{"missing email", identity.NewError(identity.CodeMissingEmail, nil), identity.CodeMissingEmail, MsgCreateFailed},
		{"already in use", identity.NewError(identity.CodeEmailAlreadyInUse, nil), identity.CodeEmailAlreadyInUse, MsgEmailRegistered},
		{"weak password", identity.NewError(identity.CodeWeakPassword, nil), identity.CodeWeakPassword, MsgCreateFailed},
		{"unknown code", &identity.Error{Code: "auth/something-else"}, "auth/something-else", MsgCreateFailed},
		{"foreign error", errors.New("connection reset"), identity.CodeInternalError, MsgCreateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{err: tt.err}
			rec := &Recorder{}

			res := NewController(provider).Submit(context.Background(), validValues, rec)

			assert.Equal(t, OutcomeFailed, res.Outcome)
			assert.Equal(t, tt.code, res.Code)
			assert.Equal(t, []EffectType{EffectLoading, EffectDismissLoading, EffectAlert}, rec.Types())
			assert.Equal(t, &Alert{Header: TitleError, Message: tt.want, Buttons: []string{ButtonOK}}, rec.Effects()[2].Alert)
		})
	}
}

func TestSubmit_LogsRawProviderError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	provider := &fakeProvider{err: identity.NewError(identity.CodeEmailAlreadyInUse, errors.New("EMAIL_EXISTS"))}

	NewController(provider, WithLogger(logger)).Submit(context.Background(), validValues, &Recorder{})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "code=auth/email-already-in-use")
	assert.Contains(t, out, "EMAIL_EXISTS")
}

func TestSubmit_Options(t *testing.T) {
	rec := &Recorder{}
	c := NewController(&fakeProvider{}, WithHomeRoute("/inicio"), WithToastDuration(0))
	c.Submit(context.Background(), validValues, rec)

	effects := rec.Effects()
	assert.Equal(t, "/inicio", effects[len(effects)-1].Route)
	assert.Equal(t, DefaultToastDuration, c.toastDuration, "non-positive durations are ignored")
}

func TestSubmit_MetricsAndSpans(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewSignUp(reg)

	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ok := NewController(&fakeProvider{}, WithMetrics(m), WithTracer(tp.Tracer("test")))
	bad := NewController(&fakeProvider{err: identity.NewError(identity.CodeInvalidEmail, nil)},
		WithMetrics(m), WithTracer(tp.Tracer("test")))

	ok.Submit(context.Background(), validValues, &Recorder{})
	ok.Submit(context.Background(), form.Values{}, &Recorder{})
	bad.Submit(context.Background(), validValues, &Recorder{})

	n, err := testutil.GatherAndCount(reg, "cuenta_signup_attempts_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = testutil.GatherAndCount(reg, "cuenta_signup_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	spans := exp.GetSpans()
	require.Len(t, spans, 3)
	outcomes := map[string]bool{}
	for _, s := range spans {
		assert.Equal(t, "signup.submit", s.Name)
		for _, kv := range s.Attributes {
			if kv.Key == "signup.outcome" {
				outcomes[kv.Value.AsString()] = true
			}
		}
	}
	assert.Equal(t, map[string]bool{"created": true, "invalid": true, "failed": true}, outcomes)
}

func TestSubmit_ConcurrentTaps(t *testing.T) {
	provider := &fakeProvider{}
	c := NewController(provider)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Submit(context.Background(), validValues, &Recorder{})
		}()
	}
	wg.Wait()

	// Nothing de-duplicates repeated taps.
	assert.Equal(t, 5, provider.callCount())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, MsgInvalidEmail, ErrorMessage("auth/invalid-email"))
	assert.Equal(t, MsgEmailRegistered, ErrorMessage("auth/email-already-in-use"))
	assert.Equal(t, MsgCreateFailed, ErrorMessage(""))
}
