package mutation

import (
	"github.com/evofsm/evofsm/pkg/domain"
)

// RandomGenome builds a fresh genome with the given number of states. State 0
// is the starting state; every state is independently accepting with
// probability 0.5. For every (state, input symbol) pair, candidate targets
// 0..nStates-1 are tried in order and each accepted with probability
// 1/nStates; the first success yields a transition. The written symbol
// equals the read symbol unless randomEmission asks for a uniform redraw
// over the input symbols.
func RandomGenome(
	alphabet *domain.Alphabet,
	nStates int,
	randomEmission bool,
	rng domain.Rand,
) domain.Genome {
	var genome domain.Genome
	if nStates <= 0 {
		return genome
	}

	for i := 0; i < nStates; i++ {
		flags := domain.StateDefault
		if i == 0 {
			flags = flags.With(domain.StateStart)
		}
		if rng.Float64() < 0.5 {
			flags = flags.With(domain.StateFinal)
		}
		genome.States = append(genome.States, domain.StateGene{
			ID:    i,
			Label: domain.LabelFor(i),
			Flags: flags,
		})
	}

	// Transitions read and write only input symbols; blanks stay reserved.
	prob := 1 / float64(nStates)
	for i := 0; i < nStates; i++ {
		for j := 0; j < alphabet.InputLen(); j++ {
			k := 0
			for k < nStates {
				if rng.Float64() < prob {
					break
				}
				k++
			}
			if k >= nStates {
				continue
			}

			l := j
			if randomEmission {
				l = choice(rng, 0, alphabet.InputLen()-1)
			}

			genome.Transitions = append(genome.Transitions, domain.TransitionGene{
				StateFrom:   i,
				SymbolRead:  alphabet.Symbol(j).ID,
				StateTo:     k,
				SymbolWrite: alphabet.Symbol(l).ID,
			})
		}
	}

	genome.SortTransitions()
	return genome
}
