// Package backend selects and constructs the transaction store from
// configuration: the remote postgres store for authenticated sessions, the
// local sqlite store as the unauthenticated fallback, or the in-memory store.
package backend

import (
	"fmt"

	"budgetly/internal/config"
	"budgetly/internal/store"
)

// Type is the kind of transaction store backing the application.
type Type string

const (
	PostgresBackend Type = "postgres"
	SQLiteBackend   Type = "sqlite"
	MemoryBackend   Type = "memory"
)

func (t Type) String() string { return string(t) }

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case PostgresBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{PostgresBackend, SQLiteBackend, MemoryBackend}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the constructed store and an optional cleanup function.
type Result struct {
	Store   store.TransactionStore
	Cleanup CleanupFunc
}

// Config holds what is needed to construct a backend.
type Config struct {
	Type Type

	PostgresDSN  string
	SQLiteDBPath string
}

// FromAppConfig converts the application config to a backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	t := Type(appConfig.DataBackend)
	if !t.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:         t,
		PostgresDSN:  appConfig.PostgresDSN,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

// Validate checks the backend configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	switch c.Type {
	case PostgresBackend:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres DSN is required for postgres backend")
		}
		// The sqlite path is also required: it is the fallback for
		// unauthenticated sessions.
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("sqlite database path is required as the unauthenticated fallback")
		}
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("sqlite database path is required for sqlite backend")
		}
	case MemoryBackend:
		// Nothing to validate.
	}
	return nil
}
