package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/evofsm/evofsm/pkg/domain"
)

// RunPopulationStoreContract verifies that a store behaves according to the
// PopulationStore interface. Adapter test suites call this against their
// implementation.
func RunPopulationStoreContract(t *testing.T, store PopulationStore) {
	t.Helper()
	ctx := context.Background()

	genome := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Label: '0', Flags: domain.StateStart},
			{ID: 1, Label: '1', Flags: domain.StateFinal},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 1, StateTo: 1, SymbolWrite: 1},
		},
	}

	t.Run("PutGet", func(t *testing.T) {
		key, err := store.Put(ctx, genome)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if key == "" {
			t.Fatal("Put returned empty key")
		}

		got, err := store.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !got.Equal(genome) {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, genome)
		}
	})

	t.Run("PutIdempotent", func(t *testing.T) {
		k1, err := store.Put(ctx, genome)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		k2, err := store.Put(ctx, genome)
		if err != nil {
			t.Fatalf("second Put failed: %v", err)
		}
		if k1 != k2 {
			t.Errorf("keys differ for identical genome: %q vs %q", k1, k2)
		}

		keys, err := store.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		seen := 0
		for _, k := range keys {
			if k == k1 {
				seen++
			}
		}
		if seen != 1 {
			t.Errorf("expected key to appear once, appeared %d times", seen)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "no-such-key")
		if !errors.Is(err, domain.ErrGenomeNotFound) {
			t.Errorf("expected ErrGenomeNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		key, err := store.Put(ctx, genome)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Delete(ctx, key); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, key); !errors.Is(err, domain.ErrGenomeNotFound) {
			t.Errorf("expected ErrGenomeNotFound after delete, got %v", err)
		}
		// Deleting again must not fail.
		if err := store.Delete(ctx, key); err != nil {
			t.Errorf("repeated Delete failed: %v", err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		if _, err := store.Put(ctx, genome); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}

		keys, err := store.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		if len(keys) != 0 {
			t.Errorf("population not empty after Clear: %v", keys)
		}
	})
}
