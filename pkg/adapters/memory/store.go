// Package memory provides an in-memory population store, mostly for tests
// and short-lived evolutionary runs.
package memory

import (
	"context"
	"sync"

	"github.com/evofsm/evofsm/pkg/codec"
	"github.com/evofsm/evofsm/pkg/domain"
)

// Store implements ports.PopulationStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Genome
	mu   sync.RWMutex
}

// NewStore creates an empty in-memory population store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Genome),
	}
}

// Put stores a genome under its canonical encoding.
func (s *Store) Put(ctx context.Context, g domain.Genome) (string, error) {
	key := codec.Encode(g)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = g.Clone()
	return key, nil
}

// Get retrieves a genome by key.
func (s *Store) Get(ctx context.Context, key string) (domain.Genome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.data[key]
	if !ok {
		return domain.Genome{}, domain.ErrGenomeNotFound
	}
	// Copy on read so callers cannot mutate stored genomes.
	return g.Clone(), nil
}

// Keys lists all stored keys.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}

// Delete removes a genome by key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Clear removes the whole population.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]domain.Genome)
	return nil
}
