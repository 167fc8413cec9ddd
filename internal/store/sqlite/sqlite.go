// Package sqlite implements the local fallback TransactionStore. It is used
// when no authenticated session is available: the full transaction list
// persists in a local database file, with dates stored as ISO strings so a
// reload reproduces the originals at day precision.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"budgetly/internal/core"
	"budgetly/internal/store"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// List implements store.TransactionStore. The session is ignored: the local
// store holds a single user's data.
func (s *Store) List(ctx context.Context, _ store.Session) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, amount_cents, category, description, date, payment_mode
		FROM transactions
		ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t       core.Transaction
			typ     string
			isoDate string
			mode    sql.NullString
		)
		if err := rows.Scan(&t.ID, &typ, &t.Amount.Cents, &t.Category, &t.Description, &isoDate, &mode); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = core.TransactionType(typ)
		d, err := core.ParseISO(isoDate)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", isoDate, err)
		}
		t.Date = d
		if mode.Valid {
			t.PaymentMode = mode.String
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create implements store.TransactionStore.
func (s *Store) Create(ctx context.Context, _ store.Session, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.ID = uuid.NewString()

	var mode any
	if t.PaymentMode != "" {
		mode = t.PaymentMode
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, type, amount_cents, category, description, date, payment_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Type), t.Amount.Cents, t.Category, t.Description, t.Date.ISO(), mode)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to local store",
		"id", t.ID,
		"type", string(t.Type),
		"amount_cents", t.Amount.Cents,
		"category", t.Category)
	return t, nil
}

// Delete implements store.TransactionStore.
func (s *Store) Delete(ctx context.Context, _ store.Session, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	slog.InfoContext(ctx, "Transaction deleted from local store", "id", id)
	return nil
}
