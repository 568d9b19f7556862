// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Identity providers.
const (
	ProviderLocal    = "local"
	ProviderFirebase = "firebase"
)

type Config struct {
	Provider string

	FirebaseAPIKey       string
	FirebaseEmulatorHost string

	DatabaseURL string
	SQLitePath  string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	Port      string
	HomeRoute string

	OTLPEndpoint string
	ServiceName  string
}

// Load reads environment variables, optionally from the given .env files
// (".env" when none are named). Missing files are not an error.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv never overrides variables already set.
		_ = godotenv.Load(f)
	}

	return Config{
		Provider:             getEnv("CUENTA_PROVIDER", ProviderLocal),
		FirebaseAPIKey:       os.Getenv("FIREBASE_API_KEY"),
		FirebaseEmulatorHost: os.Getenv("FIREBASE_AUTH_EMULATOR_HOST"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		SQLitePath:           getEnv("CUENTA_SQLITE_PATH", "cuenta.db"),
		JWTSecret:            getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:            getEnv("JWT_ISSUER", "cuenta"),
		JWTTTLMinutes:        getEnvInt("JWT_TTL_MINUTES", 60),
		Port:                 getEnv("PORT", "8080"),
		HomeRoute:            getEnv("CUENTA_HOME_ROUTE", "/home"),
		OTLPEndpoint:         os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:          getEnv("OTEL_SERVICE_NAME", "cuenta"),
	}
}

// JWTTTL returns the token lifetime.
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderLocal:
		if c.DatabaseURL == "" && c.SQLitePath == "" {
			return fmt.Errorf("config: local provider needs DATABASE_URL or CUENTA_SQLITE_PATH")
		}
	case ProviderFirebase:
		if c.FirebaseAPIKey == "" && c.FirebaseEmulatorHost == "" {
			return fmt.Errorf("config: firebase provider needs FIREBASE_API_KEY or FIREBASE_AUTH_EMULATOR_HOST")
		}
	default:
		return fmt.Errorf("config: unknown CUENTA_PROVIDER %q", c.Provider)
	}
	if c.JWTTTLMinutes <= 0 {
		return fmt.Errorf("config: JWT_TTL_MINUTES must be positive, got %d", c.JWTTTLMinutes)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
