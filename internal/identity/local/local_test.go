package local

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cuenta/internal/identity"
	"cuenta/internal/store"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newProvider(t *testing.T, repo store.AccountRepository) *Provider {
	t.Helper()
	if repo == nil {
		r, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "local.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = r.Close() })
		repo = r
	}
	return New(repo, "test-secret",
		WithBcryptCost(bcrypt.MinCost),
		WithIssuer("cuenta-test"),
		WithTokenTTL(30*time.Minute),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestProvider_CreateUser(t *testing.T) {
	p := newProvider(t, nil)

	cred, err := p.CreateUserWithEmailAndPassword(context.Background(), "Ana@Example.com", "secreto")
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", cred.Email)
	assert.Equal(t, ProviderName, cred.Provider)
	assert.Equal(t, int64(1800), cred.ExpiresIn)
	assert.NotEmpty(t, cred.UID)

	claims, err := p.tokens.Verify(cred.IDToken)
	require.NoError(t, err)
	assert.Equal(t, cred.UID, claims.Subject)
	assert.Equal(t, "cuenta-test", claims.Issuer)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, fixedNow.Add(30*time.Minute), claims.ExpiresAt.Time.UTC())

	account, err := p.repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secreto")))
}

func TestProvider_CreateUser_Duplicate(t *testing.T) {
	p := newProvider(t, nil)
	ctx := context.Background()

	_, err := p.CreateUserWithEmailAndPassword(ctx, "ana@example.com", "secreto")
	require.NoError(t, err)

	_, err = p.CreateUserWithEmailAndPassword(ctx, "ANA@example.com", "otro-secreto")
	assert.Equal(t, identity.CodeEmailAlreadyInUse, identity.CodeOf(err))
}

func TestProvider_CreateUser_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"empty email", "", "secreto", identity.CodeMissingEmail},
		{"blank email", "   ", "secreto", identity.CodeMissingEmail},
		{"malformed email", "ana.example.com", "secreto", identity.CodeInvalidEmail},
		{"non-ascii email", "josé@ejemplo.com", "secreto", identity.CodeInvalidEmail},
		{"missing password", "ana@example.com", "", identity.CodeMissingPassword},
		{"weak password", "ana@example.com", "12345", identity.CodeWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProvider(t, nil)
			_, err := p.CreateUserWithEmailAndPassword(context.Background(), tt.email, tt.password)
			assert.Equal(t, tt.want, identity.CodeOf(err))
		})
	}
}

type brokenRepo struct {
	getErr    error
	createErr error
}

func (r brokenRepo) Create(context.Context, store.Account) error { return r.createErr }
func (r brokenRepo) GetByEmail(context.Context, string) (store.Account, error) {
	return store.Account{}, r.getErr
}
func (r brokenRepo) Ping(context.Context) error { return nil }

func TestProvider_CreateUser_StoreFailures(t *testing.T) {
	dbErr := errors.New("disk full")

	p := newProvider(t, brokenRepo{getErr: dbErr})
	_, err := p.CreateUserWithEmailAndPassword(context.Background(), "ana@example.com", "secreto")
	assert.Equal(t, identity.CodeInternalError, identity.CodeOf(err))
	assert.ErrorIs(t, err, dbErr)

	// Lost race against a concurrent sign-up: the unique index decides.
	p = newProvider(t, brokenRepo{getErr: store.ErrNotFound, createErr: store.ErrAccountExists})
	_, err = p.CreateUserWithEmailAndPassword(context.Background(), "ana@example.com", "secreto")
	assert.Equal(t, identity.CodeEmailAlreadyInUse, identity.CodeOf(err))
}

// countingRepo counts GetByEmail calls on the wrapped repository.
type countingRepo struct {
	store.AccountRepository
	lookups int
}

func (r *countingRepo) GetByEmail(ctx context.Context, email string) (store.Account, error) {
	r.lookups++
	return r.AccountRepository.GetByEmail(ctx, email)
}

func TestProvider_TakenCache(t *testing.T) {
	base, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = base.Close() })
	repo := &countingRepo{AccountRepository: base}

	p := newProvider(t, repo)
	_, err = p.CreateUserWithEmailAndPassword(context.Background(), "ana@example.com", "secreto")
	require.NoError(t, err)
	require.Equal(t, 1, repo.lookups)

	for _, email := range []string{"ana@example.com", "ANA@example.com"} {
		_, err = p.CreateUserWithEmailAndPassword(context.Background(), email, "secreto")
		assert.Equal(t, identity.CodeEmailAlreadyInUse, identity.CodeOf(err))
	}
	assert.Equal(t, 1, repo.lookups, "known emails are answered from the cache")

	// Without the cache every attempt reaches the store.
	repo.lookups = 0
	uncached := New(repo, "test-secret", WithBcryptCost(bcrypt.MinCost), WithTakenCache(0, 0))
	for i := 0; i < 2; i++ {
		_, err = uncached.CreateUserWithEmailAndPassword(context.Background(), "ana@example.com", "secreto")
		assert.Equal(t, identity.CodeEmailAlreadyInUse, identity.CodeOf(err))
	}
	assert.Equal(t, 2, repo.lookups)
}

func TestTokenIssuer_RejectsForeignTokens(t *testing.T) {
	a := NewTokenIssuer("secret-a", "cuenta", time.Hour)
	b := NewTokenIssuer("secret-b", "cuenta", time.Hour)

	tok, err := a.Issue(store.Account{Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = b.Verify(tok)
	assert.Error(t, err)

	other := NewTokenIssuer("secret-a", "someone-else", time.Hour)
	_, err = other.Verify(tok)
	assert.Error(t, err)
}
