package memory

import (
	"context"
	"sync"

	"pocketledger/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.Expense
}

func New() *Store {
	return &Store{}
}

// Insert stores the expense at the end of the sequence.
func (s *Store) Insert(_ context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return nil
}

// All returns a copy of the stored expenses.
func (s *Store) All(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense{}, s.items...), nil
}

func (s *Store) Delete(_ context.Context, id int64) (core.Expense, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.ID != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return e, true, nil
	}
	return core.Expense{}, false, nil
}

// Len reports the number of stored expenses.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
