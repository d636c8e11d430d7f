// Package ledger owns the authoritative collection of transactions and
// the balance derived from it.
package ledger

import (
	"errors"
	"sync"

	"tally/internal/core"
)

// ErrNotFound reports an update against an id no longer in the store.
var ErrNotFound = errors.New("transaction not found")

// Store is a mutex-guarded, insertion-ordered transaction collection.
// It holds no ambient state: callers construct one and inject it.
type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
}

func New() *Store {
	return &Store{nextID: 1}
}

// Add validates the transaction, assigns the next identifier and appends
// the record. Nothing is stored when validation fails.
func (s *Store) Add(t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextID
	s.nextID++
	s.items = append(s.items, t)
	return t, nil
}

// Update overwrites every field of the record with the given id, keeping
// the id itself stable. Validates exactly as Add; returns ErrNotFound if
// the id is absent, with no mutation in either failure case.
func (s *Store) Update(id int64, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			t.ID = id
			s.items[i] = t
			return t, nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

// Remove deletes all records matching id and returns how many were
// removed. Removing an absent id is a no-op.
func (s *Store) Remove(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, t := range s.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	return removed
}

// Get returns the record with the given id, if present.
func (s *Store) Get(id int64) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}

// List returns a snapshot of the records in store order. Mutating the
// returned slice does not affect the store.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...)
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Balance returns income minus expense over all current records. It is
// recomputed on every call rather than cached.
func (s *Store) Balance() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b core.Money
	for _, t := range s.items {
		if t.Type == core.Income {
			b = b.Add(t.Amount)
		} else {
			b = b.Sub(t.Amount)
		}
	}
	return b
}
