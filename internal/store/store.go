// Package store persists accounts for the self-hosted identity provider.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors returned by repositories.
var (
	ErrNotFound      = errors.New("store: not found")
	ErrAccountExists = errors.New("store: account already exists")
)

// Account is a registered email/password identity.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountRepository abstracts account persistence.
// Emails are compared case-insensitively.
type AccountRepository interface {
	Create(ctx context.Context, account Account) error
	GetByEmail(ctx context.Context, email string) (Account, error)
	Ping(ctx context.Context) error
}
