package runtime

import (
	"slices"

	"github.com/evofsm/evofsm/pkg/domain"
)

// translate instantiates the realized states and transitions for a genome.
// State arena ids are positions; the gene id is kept alongside so that
// transition endpoints resolve through it. Endpoints that reference a
// missing gene id stay None.
func translate(genome domain.Genome) (states []State, starts, accepting []int, transitions []Transition) {
	for i, gene := range genome.States {
		s := State{
			ID:     i,
			GeneID: gene.ID,
			Label:  gene.Label,
			Flags:  gene.Flags,
		}
		states = append(states, s)
		if s.Flags.IsStart() {
			starts = append(starts, i)
		}
		if s.Flags.IsFinal() {
			accepting = append(accepting, i)
		}
	}

	for i, gene := range genome.Transitions {
		t := Transition{
			ID:    i,
			From:  stateByGeneID(states, gene.StateFrom),
			To:    stateByGeneID(states, gene.StateTo),
			Read:  gene.SymbolRead,
			Write: gene.SymbolWrite,
		}
		transitions = append(transitions, t)

		if t.From != None && !slices.Contains(states[t.From].Outgoing, i) {
			states[t.From].Outgoing = append(states[t.From].Outgoing, i)
		}
		if t.To != None && !slices.Contains(states[t.To].Incoming, i) {
			states[t.To].Incoming = append(states[t.To].Incoming, i)
		}
	}

	return states, starts, accepting, transitions
}

// stateByGeneID finds the arena index of the state translated from the given
// gene id, or None.
func stateByGeneID(states []State, geneID int) int {
	for i := range states {
		if states[i].GeneID == geneID {
			return i
		}
	}
	return None
}
