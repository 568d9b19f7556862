package ui

import (
	"time"

	"cuenta/internal/form"
	"cuenta/internal/signup"
)

// LoadingMsg shows or hides the blocking loading indicator.
type LoadingMsg struct {
	Visible bool
}

// ToastMsg shows a transient notification.
type ToastMsg struct {
	Toast signup.Toast
}

// toastExpiredMsg hides toast id once its duration has passed.
// A newer toast has a different id and stays up.
type toastExpiredMsg struct {
	id int
}

// AlertMsg opens an alert modal on top of the current screen.
type AlertMsg struct {
	Alert signup.Alert
}

// DismissModalMsg closes the topmost modal.
type DismissModalMsg struct{}

// ResetFormMsg clears the sign-up form.
type ResetFormMsg struct{}

// NavigateMsg replaces the current screen with the one registered for Route.
type NavigateMsg struct {
	Route string
}

// SubmitMsg is sent by SignUpView when the user taps the sign-up button.
type SubmitMsg struct {
	Values form.Values
}

// SubmitDoneMsg carries the controller result once Submit returns.
type SubmitDoneMsg struct {
	Result  signup.Result
	Elapsed time.Duration
}
