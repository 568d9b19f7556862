// Package signup implements the sign-up form handler: validate, show
// loading, create the account remotely, then present the result.
package signup

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"cuenta/internal/form"
	"cuenta/internal/identity"
	"cuenta/internal/metrics"
)

// Outcome classifies a submission.
type Outcome string

const (
	OutcomeInvalid Outcome = "invalid" // form failed validation; provider not called
	OutcomeCreated Outcome = "created"
	OutcomeFailed  Outcome = "failed" // provider returned an error
)

// Result is what Submit reports back to its caller.
type Result struct {
	Outcome    Outcome
	Code       string // provider error code when Outcome is OutcomeFailed
	Credential identity.Credential
}

// Option configures a Controller.
type Option func(c *Controller)

// WithLogger sets the logger used for provider failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer for the signup.submit span.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithMetrics records outcomes on m.
func WithMetrics(m *metrics.SignUp) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithHomeRoute overrides HomeRoute.
func WithHomeRoute(route string) Option {
	return func(c *Controller) {
		if route != "" {
			c.home = route
		}
	}
}

// WithToastDuration overrides DefaultToastDuration.
func WithToastDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.toastDuration = d
		}
	}
}

// Controller drives one sign-up submission at a time per call. It keeps no
// per-submission state and is safe for concurrent use.
type Controller struct {
	provider      identity.Provider
	logger        *slog.Logger
	tracer        oteltrace.Tracer
	metrics       *metrics.SignUp
	home          string
	toastDuration time.Duration
}

// NewController returns a Controller creating accounts on provider.
func NewController(provider identity.Provider, opts ...Option) *Controller {
	c := &Controller{
		provider:      provider,
		logger:        slog.Default(),
		tracer:        noop.NewTracerProvider().Tracer("cuenta/signup"),
		home:          HomeRoute,
		toastDuration: DefaultToastDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit handles a tap on the sign-up button. The provider is contacted
// at most once and only when values pass validation.
func (c *Controller) Submit(ctx context.Context, values form.Values, p Presenter) Result {
	ctx, span := c.tracer.Start(ctx, "signup.submit")
	defer span.End()

	p.ShowLoading()

	if err := form.Validate(values); err != nil {
		p.DismissLoading()
		p.Toast(Toast{
			Message:  MsgServerIssue,
			Duration: c.toastDuration,
			Position: PositionMiddle,
		})
		span.SetAttributes(attribute.String("signup.outcome", string(OutcomeInvalid)))
		c.metrics.Attempt(string(OutcomeInvalid))
		return Result{Outcome: OutcomeInvalid}
	}

	start := time.Now()
	cred, err := c.provider.CreateUserWithEmailAndPassword(ctx, values.Email, values.Password)
	c.metrics.ObserveProvider(time.Since(start))

	if err != nil {
		p.DismissLoading()
		code := identity.CodeOf(err)
		p.Alert(Alert{
			Header:  TitleError,
			Message: ErrorMessage(code),
			Buttons: []string{ButtonOK},
		})
		c.logger.Error("signup: Submit",
			slog.String("tag", "provider"),
			slog.String("code", code),
			slog.Any("err", err))

		span.RecordError(err)
		span.SetStatus(codes.Error, code)
		span.SetAttributes(
			attribute.String("signup.outcome", string(OutcomeFailed)),
			attribute.String("signup.error_code", code),
		)
		c.metrics.Attempt(string(OutcomeFailed))
		c.metrics.Failure(code)
		return Result{Outcome: OutcomeFailed, Code: code}
	}

	p.DismissLoading()
	p.ResetForm()
	p.Alert(Alert{
		Header:  TitleSuccess,
		Message: MsgAccountCreated,
		Buttons: []string{ButtonOK},
	})
	p.Navigate(c.home)

	span.SetAttributes(
		attribute.String("signup.outcome", string(OutcomeCreated)),
		attribute.String("signup.provider", cred.Provider),
	)
	c.metrics.Attempt(string(OutcomeCreated))
	return Result{Outcome: OutcomeCreated, Credential: cred}
}

// ErrorMessage returns the alert text for a provider error code.
func ErrorMessage(code string) string {
	switch code {
	case identity.CodeInvalidEmail:
		return MsgInvalidEmail
	case identity.CodeEmailAlreadyInUse:
		return MsgEmailRegistered
	default:
		return MsgCreateFailed
	}
}
