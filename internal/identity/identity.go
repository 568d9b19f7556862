// Package identity defines the remote account-creation contract and the
// error codes providers report.
package identity

import (
	"context"
	"errors"
	"fmt"
)

// Error codes, named after the Firebase Web SDK codes clients already match on.
const (
	CodeInvalidEmail         = "auth/invalid-email"
	CodeMissingEmail         = "auth/missing-email"
	CodeEmailAlreadyInUse    = "auth/email-already-in-use"
	CodeWeakPassword         = "auth/weak-password"
	CodeMissingPassword      = "auth/missing-password"
	CodeOperationNotAllowed  = "auth/operation-not-allowed"
	CodeTooManyRequests      = "auth/too-many-requests"
	CodeNetworkRequestFailed = "auth/network-request-failed"
	CodeInternalError        = "auth/internal-error"
)

// Credential is returned after an account has been created.
type Credential struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresIn    int64 // seconds
	Provider     string
}

// Provider creates accounts on a remote authentication backend.
type Provider interface {
	CreateUserWithEmailAndPassword(ctx context.Context, email, password string) (Credential, error)
}

// Error is a provider failure carrying a string code.
type Error struct {
	Code    string
	Message string
	Err     error
}

// NewError returns an *Error for code wrapping err.
func NewError(code string, err error) *Error {
	e := &Error{Code: code, Err: err}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "identity: " + e.Code
	}
	return fmt.Sprintf("identity: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// CodeOf extracts the provider code from err.
// Errors that did not come from a provider map to CodeInternalError.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternalError
}
