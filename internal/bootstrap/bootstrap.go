// Package bootstrap builds the identity provider and its backing store
// from configuration. Both binaries share it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cuenta/internal/config"
	"cuenta/internal/health"
	"cuenta/internal/identity"
	"cuenta/internal/identity/firebase"
	"cuenta/internal/identity/local"
	"cuenta/internal/store"
)

// Deps is what a binary needs to run the sign-up flow.
type Deps struct {
	Provider identity.Provider
	Checkers []health.Checker
	closers  []func() error
}

// Close releases the store, if any.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	return errors.Join(errs...)
}

// Open builds the provider named by cfg.Provider.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Deps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	switch cfg.Provider {
	case config.ProviderFirebase:
		return openFirebase(ctx, cfg, logger)
	default:
		return openLocal(ctx, cfg, logger)
	}
}

func openFirebase(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Deps, error) {
	p, err := firebase.New(ctx, firebase.Config{
		APIKey:       cfg.FirebaseAPIKey,
		EmulatorHost: cfg.FirebaseEmulatorHost,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: firebase: %w", err)
	}
	logger.Info("bootstrap: provider", slog.String("provider", config.ProviderFirebase),
		slog.Bool("emulator", cfg.FirebaseEmulatorHost != ""))
	return &Deps{Provider: p}, nil
}

// repository is an account store that can be closed.
type repository interface {
	store.AccountRepository
	Close() error
}

func openLocal(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Deps, error) {
	var (
		repo repository
		name string
	)
	if cfg.DatabaseURL != "" {
		pool, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		pg, err := store.NewPostgresRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		repo, name = pg, "postgres"
	} else {
		lite, err := store.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		repo, name = lite, "sqlite"
	}

	p := local.New(repo, cfg.JWTSecret,
		local.WithIssuer(cfg.JWTIssuer),
		local.WithTokenTTL(cfg.JWTTTL()),
		local.WithLogger(logger),
	)
	logger.Info("bootstrap: provider", slog.String("provider", config.ProviderLocal), slog.String("store", name))
	return &Deps{
		Provider: p,
		Checkers: []health.Checker{health.NewPingChecker(name, repo)},
		closers:  []func() error{repo.Close},
	}, nil
}
