// Package store defines the outbound port for transaction persistence and
// the session value threaded into every call.
package store

import (
	"context"
	"errors"

	"budgetly/internal/core"
)

// Session identifies the acting user. It is passed explicitly on every store
// call; there is no ambient auth state. An empty UserID means no
// authenticated session, in which case the application uses the local
// fallback store.
type Session struct {
	UserID string
}

// Authenticated reports whether the session carries a user identity.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// ErrNotFound is returned by Delete when no transaction has the given id.
var ErrNotFound = errors.New("transaction not found")

// TransactionStore is the outbound port for transaction persistence.
type TransactionStore interface {
	// List returns the user's transactions ordered by date descending.
	List(ctx context.Context, sess Session) ([]core.Transaction, error)

	// Create persists a transaction and returns it with its assigned id.
	// Callers must not add to in-memory state until Create acknowledges.
	Create(ctx context.Context, sess Session, t core.Transaction) (core.Transaction, error)

	// Delete removes one transaction by id. Returns ErrNotFound when the id
	// does not exist for this user.
	Delete(ctx context.Context, sess Session, id string) error
}
