// Package memory provides an in-process TransactionStore used by tests and
// ad-hoc runs without any persistence configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"budgetly/internal/core"
	"budgetly/internal/store"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New() *Store {
	return &Store{}
}

// Seed pre-loads transactions, assigning ids to any that lack one.
func Seed(transactions []core.Transaction) *Store {
	s := New()
	for _, t := range transactions {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		s.items = append(s.items, t)
	}
	return s
}

// List returns a copy of the stored transactions, date descending.
func (s *Store) List(_ context.Context, _ store.Session) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]core.Transaction(nil), s.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out, nil
}

// Create validates, assigns an id and stores the transaction.
func (s *Store) Create(_ context.Context, _ store.Session, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	return t, nil
}

// Delete removes a transaction by id.
func (s *Store) Delete(_ context.Context, _ store.Session, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
