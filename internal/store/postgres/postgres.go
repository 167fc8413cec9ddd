// Package postgres implements the remote TransactionStore. Rows are scoped
// to the authenticated user carried by the session; unauthenticated calls
// are rejected so callers fall back to the local store instead.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"budgetly/internal/core"
	"budgetly/internal/store"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// ErrNoSession is returned when a call arrives without a user identity.
var ErrNoSession = errors.New("postgres store requires an authenticated session")

type Store struct {
	db *sql.DB
}

func New(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := RunMigrations(db); err != nil {
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

// List implements store.TransactionStore, date descending.
func (s *Store) List(ctx context.Context, sess store.Session) ([]core.Transaction, error) {
	if !sess.Authenticated() {
		return nil, ErrNoSession
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, amount_cents, category, description, date::text, payment_mode
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC`, sess.UserID)
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
func (s *Store) Create(ctx context.Context, sess store.Session, t core.Transaction) (core.Transaction, error) {
	if !sess.Authenticated() {
		return core.Transaction{}, ErrNoSession
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.ID = uuid.NewString()

	var mode any
	if t.PaymentMode != "" {
		mode = t.PaymentMode
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, type, amount_cents, category, description, date, payment_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, sess.UserID, string(t.Type), t.Amount.Cents, t.Category, t.Description, t.Date.ISO(), mode)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to remote store",
		"id", t.ID,
		"type", string(t.Type),
		"amount_cents", t.Amount.Cents,
		"category", t.Category)
	return t, nil
}

// Delete implements store.TransactionStore.
func (s *Store) Delete(ctx context.Context, sess store.Session, id string) error {
	if !sess.Authenticated() {
		return ErrNoSession
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, sess.UserID)
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
	slog.InfoContext(ctx, "Transaction deleted from remote store", "id", id)
	return nil
}

// IsNoSession reports whether err is the missing-session error.
func IsNoSession(err error) bool {
	return errors.Is(err, ErrNoSession)
}
