package ports

import (
	"context"

	"github.com/evofsm/evofsm/pkg/domain"
)

// PopulationStore persists a population of genomes. Genomes are keyed by
// their canonical text encoding, so a population is naturally a set: storing
// the same genome twice is idempotent.
type PopulationStore interface {
	// Put stores a genome and returns the key it was stored under.
	Put(ctx context.Context, g domain.Genome) (string, error)

	// Get retrieves the genome stored under key.
	// Returns domain.ErrGenomeNotFound when the key is absent.
	Get(ctx context.Context, key string) (domain.Genome, error)

	// Keys lists the keys of all stored genomes.
	Keys(ctx context.Context) ([]string, error)

	// Delete removes the genome stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes the whole population.
	Clear(ctx context.Context) error
}

// BulkVisitor receives one genome per line during a bulk load: the raw line
// (which doubles as the population key), the decoded and re-sorted genome,
// and the sequential line id.
type BulkVisitor func(key string, g domain.Genome, id int)
