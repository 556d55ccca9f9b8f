// Package redis provides a Redis-backed population store for shared corpora
// that outlive a single process.
package redis

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/evofsm/evofsm/pkg/codec"
	"github.com/evofsm/evofsm/pkg/domain"
)

// Store implements ports.PopulationStore using Redis. Each genome lives in a
// set member keyed by its canonical encoding, so the population behaves like
// a set across processes.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix for the population namespace.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store connecting to the given address.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "evofsm:population:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(genomeKey string) string {
	return s.prefix + genomeKey
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Put stores a genome under its canonical encoding and registers the key in
// the population index.
func (s *Store) Put(ctx context.Context, g domain.Genome) (string, error) {
	key := codec.Encode(g)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(key), key, 0)
	pipe.SAdd(ctx, s.indexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store genome: %w", err)
	}
	return key, nil
}

// Get retrieves and decodes a genome by key.
func (s *Store) Get(ctx context.Context, key string) (domain.Genome, error) {
	encoded, err := s.client.Get(ctx, s.key(key)).Result()
	if err == backend.Nil {
		return domain.Genome{}, domain.ErrGenomeNotFound
	}
	if err != nil {
		return domain.Genome{}, fmt.Errorf("failed to load genome: %w", err)
	}
	return codec.Decode(encoded)
}

// Keys lists all genome keys in the population index.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list population: %w", err)
	}
	return keys, nil
}

// Delete removes a genome and its index entry.
func (s *Store) Delete(ctx context.Context, key string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(key))
	pipe.SRem(ctx, s.indexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete genome: %w", err)
	}
	return nil
}

// Clear removes the whole population and its index.
func (s *Store) Clear(ctx context.Context) error {
	keys, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to list population: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, s.key(key))
	}
	pipe.Del(ctx, s.indexKey())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear population: %w", err)
	}
	return nil
}
