package backend

import (
	"context"
	"fmt"
	"log/slog"

	"budgetly/internal/core"
	"budgetly/internal/store"
	"budgetly/internal/store/memory"
	"budgetly/internal/store/postgres"
	"budgetly/internal/store/sqlite"
)

// Factory creates transaction stores based on configuration.
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateStore implements Factory.
func (f *DefaultFactory) CreateStore(_ context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case PostgresBackend:
		return f.createPostgres(config)
	case SQLiteBackend:
		return f.createSQLite(config)
	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{Store: memory.New()}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createPostgres(config Config) (*Result, error) {
	remote, err := postgres.New(config.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("initialize postgres store: %w", err)
	}

	local, err := sqlite.New(config.SQLiteDBPath)
	if err != nil {
		remote.Close()
		return nil, fmt.Errorf("initialize sqlite fallback store: %w", err)
	}

	f.logger.Info("Initialized postgres backend with local fallback",
		"sqlite_path", config.SQLiteDBPath)

	fb := &fallbackStore{remote: remote, local: local}
	return &Result{
		Store: fb,
		Cleanup: func() error {
			lerr := local.Close()
			if rerr := remote.Close(); rerr != nil {
				return rerr
			}
			return lerr
		},
	}, nil
}

func (f *DefaultFactory) createSQLite(config Config) (*Result, error) {
	local, err := sqlite.New(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite store: %w", err)
	}

	f.logger.Info("Initialized sqlite backend", "db_path", config.SQLiteDBPath)

	return &Result{Store: local, Cleanup: local.Close}, nil
}

// fallbackStore routes authenticated sessions to the remote store and
// everything else to the local one. The two stores never mix data: the local
// store is the single-user offline list, the remote store is per-user.
type fallbackStore struct {
	remote *postgres.Store
	local  *sqlite.Store
}

func (s *fallbackStore) pick(sess store.Session) store.TransactionStore {
	if sess.Authenticated() {
		return s.remote
	}
	return s.local
}

func (s *fallbackStore) List(ctx context.Context, sess store.Session) ([]core.Transaction, error) {
	return s.pick(sess).List(ctx, sess)
}

func (s *fallbackStore) Create(ctx context.Context, sess store.Session, t core.Transaction) (core.Transaction, error) {
	return s.pick(sess).Create(ctx, sess, t)
}

func (s *fallbackStore) Delete(ctx context.Context, sess store.Session, id string) error {
	return s.pick(sess).Delete(ctx, sess, id)
}
