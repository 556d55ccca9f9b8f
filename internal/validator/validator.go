// Package validator checks genomes for well-formedness. Validation is an
// explicit, advisory step: decoded or mutated genomes are never validated
// automatically, and a flagged genome remains usable.
package validator

import (
	"github.com/evofsm/evofsm/pkg/domain"
)

// Validate examines a genome against an alphabet and returns the combined
// defect flags. A zero result means the genome encodes a well-formed DFA.
func Validate(alphabet *domain.Alphabet, genome domain.Genome, allowEmptyFinal bool) domain.ValidationFlags {
	// Unless a per-(state, input symbol) fan-out above one is found below,
	// the genome encodes a DFA.
	result := domain.IsDFA

	if len(genome.States) == 0 {
		result |= domain.MissingStates
	}
	if len(genome.Transitions) == 0 {
		result |= domain.MissingTransitions
	}

	// Exactly one starting state; final states are only required when empty
	// final-state sets are disallowed (acceptors want one, transducers may
	// not care).
	starts, finals := 0, 0
	for _, s := range genome.States {
		if s.Flags.IsStart() {
			starts++
		}
		if s.Flags.IsFinal() {
			finals++
		}
	}
	switch {
	case starts == 0:
		result |= domain.MissingStartingState
	case starts > 1:
		result |= domain.MultipleStartingStates
	}
	if !allowEmptyFinal && finals == 0 {
		result |= domain.NoFinalStates
	}

	nStates := len(genome.States)
	for _, t := range genome.Transitions {
		if t.StateFrom >= nStates {
			result |= domain.TransitionSourceUnknown
		}
		if t.StateTo >= nStates {
			result |= domain.TransitionTargetUnknown
		}
	}

	if len(genome.Transitions) > 0 && len(genome.States) > 0 {
		for i := 0; i < len(genome.Transitions)-1; i++ {
			for j := i + 1; j < len(genome.Transitions); j++ {
				if genome.Transitions[i] == genome.Transitions[j] {
					result |= domain.DuplicateTransition
				}
			}
		}

		// Count transitions per (state, input symbol) pair. More than one
		// makes the automaton nondeterministic. Transitions with
		// out-of-range endpoints or symbols are excluded here; the range
		// flags above already report them.
		nInput := alphabet.InputLen()
		counter := make([]int, nStates*nInput)
		for _, t := range genome.Transitions {
			if t.StateFrom >= nStates || t.SymbolRead >= nInput {
				continue
			}
			counter[t.StateFrom*nInput+t.SymbolRead]++
		}
		for _, c := range counter {
			if c > 1 {
				result |= domain.IsNFA
				break
			}
		}
	}

	// Transitions are only defined over input symbols, never blanks.
	nInput := alphabet.InputLen()
	for _, t := range genome.Transitions {
		if t.SymbolRead >= nInput || t.SymbolWrite >= nInput {
			result |= domain.TransitionSymbolUnknown
		}
	}

	return result
}
