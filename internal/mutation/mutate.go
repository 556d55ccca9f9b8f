// Package mutation implements the genetic operators over genomes: the
// per-gene mutation passes and the construction of fresh random genomes.
// All stochastic decisions come from a caller-owned random source, so a
// fixed seed reproduces a run exactly.
package mutation

import (
	"log/slog"
	"slices"

	"github.com/evofsm/evofsm/pkg/domain"
)

// choice draws a uniform value from the inclusive range [lo, hi].
func choice(rng domain.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// MutateGenome applies one round of mutation to a genome and returns the
// offspring. The input genome is never modified.
//
// The round proceeds in fixed passes: survivor selection and flag toggles
// over the states, an optional state creation bounded by maxStates,
// transition remapping through the new state ids, start- and final-state
// normalization, per-field transition mutation with optional drops, and a
// single optional transition spawn. Labels are re-derived from the new ids
// and the result is canonically sorted.
func MutateGenome(
	genome domain.Genome,
	rates domain.MutationRates,
	alphabet *domain.Alphabet,
	rng domain.Rand,
	maxStates int,
	allowEmptyFinal bool,
	logger *slog.Logger,
) domain.Genome {
	var target domain.Genome

	// States might get dropped, which renumbers every surviving state and
	// invalidates transition endpoints. The states pass therefore also
	// produces the remapped transition list that the transitions pass
	// consumes.
	remapped := mutateStates(genome, rates, &target, rng, maxStates, allowEmptyFinal, logger)
	target.Transitions = mutateTransitions(remapped, rates, alphabet, len(target.States), rng)

	target.RewriteLabels()
	target.SortTransitions()

	return target
}

// mutateStates runs the states pass and returns the transition genes with
// endpoints rewritten to the new state ids. Transitions touching a deleted
// state are dropped.
func mutateStates(
	genome domain.Genome,
	rates domain.MutationRates,
	target *domain.Genome,
	rng domain.Rand,
	maxStates int,
	allowEmptyFinal bool,
	logger *slog.Logger,
) []domain.TransitionGene {
	var startIDs []int
	nAccepting := 0

	var removed []int
	idMap := make(map[int]int)

	counter := 0
	for origin := range genome.States {
		state := domain.StateGene{
			ID:    len(target.States),
			Label: genome.States[origin].Label,
			Flags: genome.States[origin].Flags,
		}

		if rng.Float64() < rates.DeleteState {
			// Dropping a state shifts the ids of everything behind it; the
			// removed set and the id map fix up the transitions below.
			logger.Debug("removing state", "id", origin)
			removed = append(removed, origin)
			continue
		}

		if rng.Float64() < rates.ModifyStateStart {
			state.Flags = state.Flags.Toggle(domain.StateStart)
		}
		if rng.Float64() < rates.ModifyStateAccepting {
			state.Flags = state.Flags.Toggle(domain.StateFinal)
		}

		if state.Flags.IsStart() {
			startIDs = append(startIDs, counter)
		}
		if state.Flags.IsFinal() {
			nAccepting++
		}

		target.States = append(target.States, state)
		idMap[origin] = len(target.States) - 1
		counter++
	}

	// Maybe add a new state, always when nothing survived.
	if len(target.States) < maxStates {
		if len(target.States) == 0 || rng.Float64() < rates.CreateState {
			id := len(target.States)
			state := domain.StateGene{ID: id, Label: domain.LabelFor(id)}

			if rng.Float64() < rates.ModifyStateStart {
				state.Flags = state.Flags.Toggle(domain.StateStart)
			}
			if rng.Float64() < rates.ModifyStateAccepting {
				state.Flags = state.Flags.Toggle(domain.StateFinal)
			}

			if state.Flags.IsStart() {
				startIDs = append(startIDs, counter)
			}
			if state.Flags.IsFinal() {
				nAccepting++
			}

			target.States = append(target.States, state)
		}
	}

	// Remap transition endpoints through the new ids. A missing remap entry
	// for a non-removed endpoint means the genome referenced a state it
	// never had; report and drop the transition.
	var transitions []domain.TransitionGene
	for _, t := range genome.Transitions {
		if slices.Contains(removed, t.StateFrom) || slices.Contains(removed, t.StateTo) {
			continue
		}

		from, ok := idMap[t.StateFrom]
		if !ok {
			logger.Error("mutate: state id map missing source key", "state", t.StateFrom)
			continue
		}
		to, ok := idMap[t.StateTo]
		if !ok {
			logger.Error("mutate: state id map missing target key", "state", t.StateTo)
			continue
		}

		transitions = append(transitions, domain.TransitionGene{
			StateFrom:   from,
			SymbolRead:  t.SymbolRead,
			StateTo:     to,
			SymbolWrite: t.SymbolWrite,
		})
	}

	if len(target.States) > 0 {
		// Normalize to exactly one starting state.
		if len(startIDs) == 0 {
			id := choice(rng, 0, len(target.States)-1)
			target.States[id].Flags = target.States[id].Flags.Toggle(domain.StateStart)
		} else if len(startIDs) > 1 {
			keep := startIDs[choice(rng, 0, len(startIDs)-1)]
			for _, i := range startIDs {
				if i == keep {
					continue
				}
				target.States[i].Flags = target.States[i].Flags.Without(domain.StateStart)
			}
		}

		if !allowEmptyFinal && nAccepting < 1 {
			id := choice(rng, 0, len(target.States)-1)
			target.States[id].Flags = target.States[id].Flags.Toggle(domain.StateFinal)
		}
	}

	return transitions
}

// mutateTransitions runs the transitions pass over the remapped transition
// list: each transition is dropped with probability DropTransition, otherwise
// each of its four fields is independently redrawn with its own rate. A
// single brand-new transition may be spawned, suppressed when a tuple-equal
// one already exists.
func mutateTransitions(
	origin []domain.TransitionGene,
	rates domain.MutationRates,
	alphabet *domain.Alphabet,
	nStates int,
	rng domain.Rand,
) []domain.TransitionGene {
	var target []domain.TransitionGene
	if nStates == 0 {
		return target
	}
	nInput := alphabet.InputLen()

	for _, t := range origin {
		if rng.Float64() < rates.DropTransition {
			continue
		}

		if rng.Float64() < rates.ModifyTransitionSource {
			t.StateFrom = choice(rng, 0, nStates-1)
		}
		if rng.Float64() < rates.ModifyTransitionTarget {
			t.StateTo = choice(rng, 0, nStates-1)
		}
		if rng.Float64() < rates.ModifyTransitionSymbol {
			t.SymbolRead = choice(rng, 0, nInput-1)
		}
		if rng.Float64() < rates.ModifyTransitionEmission {
			t.SymbolWrite = choice(rng, 0, nInput-1)
		}

		target = append(target, t)
	}

	if rng.Float64() < rates.SpawnTransition {
		t := domain.TransitionGene{
			StateFrom:   choice(rng, 0, nStates-1),
			SymbolRead:  choice(rng, 0, nInput-1),
			StateTo:     choice(rng, 0, nStates-1),
			SymbolWrite: choice(rng, 0, nInput-1),
		}
		if !slices.Contains(target, t) {
			target = append(target, t)
		}
	}

	return target
}
