// Package memory holds an in-memory ledger, used as the default backend
// and as the substitutable fake in tests.
package memory

import (
	"context"
	"sync"

	"kopilka/internal/core"
	"kopilka/internal/ledger"
)

type Store struct {
	mu      sync.Mutex
	records []core.Record
}

var _ ledger.Source = (*Store)(nil)

func New(records ...core.Record) *Store {
	s := &Store{}
	s.Append(records...)
	return s
}

// Load returns a copy of the stored ledger in insertion order.
func (s *Store) Load(_ context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Store) Append(records ...core.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}
