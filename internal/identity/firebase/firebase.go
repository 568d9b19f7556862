// Package firebase creates accounts through the Firebase Identity Toolkit API.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"cuenta/internal/identity"
)

// ProviderName is reported in Credential.Provider.
const ProviderName = "firebase"

// emulatorPath is the relyingparty base path as served by the Auth emulator.
const emulatorPath = "/www.googleapis.com/identitytoolkit/v3/relyingparty/"

// serverCodes maps Identity Toolkit error messages to SDK codes.
var serverCodes = map[string]string{
	"EMAIL_EXISTS":                identity.CodeEmailAlreadyInUse,
	"INVALID_EMAIL":               identity.CodeInvalidEmail,
	"MISSING_EMAIL":               identity.CodeMissingEmail,
	"WEAK_PASSWORD":               identity.CodeWeakPassword,
	"MISSING_PASSWORD":            identity.CodeMissingPassword,
	"OPERATION_NOT_ALLOWED":       identity.CodeOperationNotAllowed,
	"PASSWORD_LOGIN_DISABLED":     identity.CodeOperationNotAllowed,
	"TOO_MANY_ATTEMPTS_TRY_LATER": identity.CodeTooManyRequests,
}

// Config selects the project API key and an optional emulator.
type Config struct {
	APIKey       string
	EmulatorHost string // host:port, e.g. "localhost:9099"
}

// Provider implements identity.Provider on top of Identity Toolkit v3.
type Provider struct {
	svc    *identitytoolkit.Service
	logger *slog.Logger
}

var _ identity.Provider = (*Provider)(nil)

// New builds a Provider. Extra client options are appended after the ones
// derived from cfg, so callers can override the endpoint or HTTP client.
func New(ctx context.Context, cfg Config, logger *slog.Logger, opts ...option.ClientOption) (*Provider, error) {
	if cfg.APIKey == "" && cfg.EmulatorHost == "" && len(opts) == 0 {
		return nil, errors.New("firebase: API key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	var copts []option.ClientOption
	if cfg.APIKey != "" {
		copts = append(copts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.EmulatorHost != "" {
		copts = append(copts, option.WithEndpoint("http://"+cfg.EmulatorHost+emulatorPath))
		if cfg.APIKey == "" {
			// The emulator accepts any key.
			copts = append(copts, option.WithAPIKey("emulator"))
		}
	}
	copts = append(copts, opts...)

	svc, err := identitytoolkit.NewService(ctx, copts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: new identitytoolkit service: %w", err)
	}
	return &Provider{svc: svc, logger: logger}, nil
}

// CreateUserWithEmailAndPassword implements identity.Provider.
func (p *Provider) CreateUserWithEmailAndPassword(ctx context.Context, email, password string) (identity.Credential, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}
	resp, err := p.svc.Relyingparty.SignupNewUser(req).Context(ctx).Do()
	if err != nil {
		ierr := translate(err)
		p.logger.Debug("firebase: SignupNewUser",
			slog.String("tag", "identitytoolkit"),
			slog.String("code", ierr.Code),
			slog.Any("err", err))
		return identity.Credential{}, ierr
	}
	return identity.Credential{
		UID:          resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		Provider:     ProviderName,
	}, nil
}

// translate turns an API or transport error into an *identity.Error.
func translate(err error) *identity.Error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return identity.NewError(identity.CodeNetworkRequestFailed, err)
	}
	msg := gerr.Message
	if msg == "" && len(gerr.Errors) > 0 {
		msg = gerr.Errors[0].Message
	}
	code, ok := serverCodes[serverCode(msg)]
	if !ok {
		code = identity.CodeInternalError
	}
	return &identity.Error{Code: code, Message: msg, Err: err}
}

// serverCode strips the detail from messages such as
// "WEAK_PASSWORD : Password should be at least 6 characters".
func serverCode(msg string) string {
	code, _, _ := strings.Cut(msg, ":")
	return strings.TrimSpace(code)
}
