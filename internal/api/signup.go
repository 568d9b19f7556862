package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"cuenta/internal/form"
	"cuenta/internal/signup"
)

// Submitter runs one sign-up; *signup.Controller implements it.
type Submitter interface {
	Submit(ctx context.Context, values form.Values, p signup.Presenter) signup.Result
}

// SignUpHandler exposes the sign-up flow over HTTP.
type SignUpHandler struct {
	submitter Submitter
	logger    *slog.Logger
}

func NewSignUpHandler(submitter Submitter, logger *slog.Logger) *SignUpHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SignUpHandler{submitter: submitter, logger: logger}
}

type credentialResponse struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
	Provider     string `json:"provider"`
}

type signUpResponse struct {
	Outcome    signup.Outcome      `json:"outcome"`
	Code       string              `json:"code,omitempty"`
	Credential *credentialResponse `json:"credential,omitempty"`
	Effects    []signup.Effect     `json:"effects"`
}

// SignUp accepts {email, password} as JSON or a form post and answers with
// the feedback the screen would show.
//
// Status codes: 201 account created, 422 form invalid, 200 provider failure
// (the alert is in effects), 400 unreadable body.
func (h *SignUpHandler) SignUp(c *fiber.Ctx) error {
	var req form.Values
	if err := c.BodyParser(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	rec := &signup.Recorder{}
	res := h.submitter.Submit(c.UserContext(), req, rec)

	resp := signUpResponse{
		Outcome: res.Outcome,
		Code:    res.Code,
		Effects: rec.Effects(),
	}
	status := http.StatusOK
	switch res.Outcome {
	case signup.OutcomeCreated:
		status = http.StatusCreated
		cred := res.Credential
		resp.Credential = &credentialResponse{
			UID:          cred.UID,
			Email:        cred.Email,
			IDToken:      cred.IDToken,
			RefreshToken: cred.RefreshToken,
			ExpiresIn:    cred.ExpiresIn,
			Provider:     cred.Provider,
		}
	case signup.OutcomeInvalid:
		status = http.StatusUnprocessableEntity
	}

	h.logger.Info("api: SignUp",
		slog.String("outcome", string(res.Outcome)),
		slog.String("code", res.Code),
		slog.Int("status", status))
	return JSON(c, status, resp)
}
