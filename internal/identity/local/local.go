// Package local is a self-hosted identity provider: accounts live in an
// AccountRepository and callers receive an HS256 ID token.
package local

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/bcrypt"

	"cuenta/internal/form"
	"cuenta/internal/identity"
	"cuenta/internal/store"
)

// ProviderName is reported in Credential.Provider.
const ProviderName = "local"

const (
	defaultIssuer   = "cuenta"
	defaultTokenTTL = time.Hour
	minPasswordLen  = 6

	defaultTakenCacheSize = 1024
	defaultTakenCacheTTL  = 10 * time.Minute
)

// Option configures a Provider.
type Option func(p *Provider)

// WithIssuer sets the "iss" claim of issued tokens.
func WithIssuer(issuer string) Option {
	return func(p *Provider) {
		if issuer != "" {
			p.tokens.issuer = issuer
		}
	}
}

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.tokens.ttl = d
		}
	}
}

// WithBcryptCost overrides bcrypt.DefaultCost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(p *Provider) {
		p.cost = cost
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTakenCache sizes the cache of emails known to be registered. A size
// of zero disables it.
func WithTakenCache(ttl time.Duration, size int) Option {
	return func(p *Provider) {
		p.takenTTL = ttl
		p.takenSize = size
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// Provider implements identity.Provider against an AccountRepository.
type Provider struct {
	repo   store.AccountRepository
	tokens *TokenIssuer
	cost   int
	logger *slog.Logger
	now    func() time.Time

	// taken remembers registered emails so repeated attempts skip the store.
	taken     *expirable.LRU[string, struct{}]
	takenTTL  time.Duration
	takenSize int
}

var _ identity.Provider = (*Provider)(nil)

// New returns a Provider that signs tokens with secret.
func New(repo store.AccountRepository, secret string, opts ...Option) *Provider {
	p := &Provider{
		repo:   repo,
		tokens: NewTokenIssuer(secret, defaultIssuer, defaultTokenTTL),
		cost:   bcrypt.DefaultCost,
		logger: slog.Default(),
		now:    time.Now,

		takenTTL:  defaultTakenCacheTTL,
		takenSize: defaultTakenCacheSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.tokens.now = p.now
	if p.takenSize > 0 {
		p.taken = expirable.NewLRU[string, struct{}](p.takenSize, nil, p.takenTTL)
	}
	return p
}

// CreateUserWithEmailAndPassword implements identity.Provider.
func (p *Provider) CreateUserWithEmailAndPassword(ctx context.Context, email, password string) (identity.Credential, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return identity.Credential{}, &identity.Error{Code: identity.CodeMissingEmail, Message: "missing email"}
	}
	if !form.ValidEmail(email) {
		return identity.Credential{}, &identity.Error{Code: identity.CodeInvalidEmail, Message: "invalid email"}
	}
	if password == "" {
		return identity.Credential{}, &identity.Error{Code: identity.CodeMissingPassword, Message: "missing password"}
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return identity.Credential{}, &identity.Error{Code: identity.CodeWeakPassword, Message: "password should be at least 6 characters"}
	}

	key := strings.ToLower(email)
	if p.isTaken(key) {
		return identity.Credential{}, &identity.Error{Code: identity.CodeEmailAlreadyInUse, Message: "email already in use"}
	}

	// Best-effort early check; the unique index is authoritative.
	if _, err := p.repo.GetByEmail(ctx, email); err == nil {
		p.markTaken(key)
		return identity.Credential{}, &identity.Error{Code: identity.CodeEmailAlreadyInUse, Message: "email already in use"}
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error("local: GetByEmail",
			slog.String("tag", "db"),
			slog.String("email", email),
			slog.Any("err", err))
		return identity.Credential{}, identity.NewError(identity.CodeInternalError, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return identity.Credential{}, identity.NewError(identity.CodeInternalError, err)
	}

	account := store.Account{
		ID:           uuid.New(),
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		CreatedAt:    p.now().UTC(),
	}
	if err := p.repo.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			p.markTaken(key)
			return identity.Credential{}, identity.NewError(identity.CodeEmailAlreadyInUse, err)
		}
		p.logger.Error("local: Create",
			slog.String("tag", "db"),
			slog.String("email", email),
			slog.Any("err", err))
		return identity.Credential{}, identity.NewError(identity.CodeInternalError, err)
	}

	p.markTaken(key)

	token, err := p.tokens.Issue(account)
	if err != nil {
		return identity.Credential{}, identity.NewError(identity.CodeInternalError, err)
	}
	return identity.Credential{
		UID:       account.ID.String(),
		Email:     account.Email,
		IDToken:   token,
		ExpiresIn: int64(p.tokens.ttl / time.Second),
		Provider:  ProviderName,
	}, nil
}

func (p *Provider) isTaken(email string) bool {
	if p.taken == nil {
		return false
	}
	_, ok := p.taken.Get(email)
	return ok
}

func (p *Provider) markTaken(email string) {
	if p.taken != nil {
		p.taken.Add(email, struct{}{})
	}
}
