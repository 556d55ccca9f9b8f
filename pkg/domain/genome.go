package domain

import (
	"slices"
	"strconv"
)

// StateGene encodes one state of an automaton within a genome. The ID is the
// gene's index in the genome's state list; the label is a cosmetic rendering
// of the ID (first decimal digit, so ids >= 10 collide) and never carries
// identity.
type StateGene struct {
	ID    int
	Label byte
	Flags StateFlags
}

// TransitionGene encodes one transducer transition, Q x Sigma -> Q x Sigma.
// All four fields are indices: states into the genome's state list, symbols
// into the alphabet. Two transition genes are equal iff all four fields are
// equal.
type TransitionGene struct {
	StateFrom   int
	SymbolRead  int
	StateTo     int
	SymbolWrite int
}

// Compare orders transition genes lexicographically on the
// (from, read, to, write) tuple. This is the canonical genome order.
func (t TransitionGene) Compare(o TransitionGene) int {
	if c := t.StateFrom - o.StateFrom; c != 0 {
		return c
	}
	if c := t.SymbolRead - o.SymbolRead; c != 0 {
		return c
	}
	if c := t.StateTo - o.StateTo; c != 0 {
		return c
	}
	return t.SymbolWrite - o.SymbolWrite
}

// Genome is the flat genotype of an automaton: ordered state genes (index =
// id) followed by ordered transition genes. Transitions reference states by
// index, never by pointer, so a genome can be copied freely.
type Genome struct {
	States      []StateGene
	Transitions []TransitionGene
}

// Clone returns a deep copy.
func (g Genome) Clone() Genome {
	return Genome{
		States:      slices.Clone(g.States),
		Transitions: slices.Clone(g.Transitions),
	}
}

// Equal reports whether two genomes carry the same states and transitions.
// State labels are cosmetic and excluded from the comparison.
func (g Genome) Equal(o Genome) bool {
	if len(g.States) != len(o.States) || len(g.Transitions) != len(o.Transitions) {
		return false
	}
	for i := range g.States {
		if g.States[i].ID != o.States[i].ID || g.States[i].Flags != o.States[i].Flags {
			return false
		}
	}
	return slices.Equal(g.Transitions, o.Transitions)
}

// Contains reports whether a tuple-equal transition gene already exists.
func (g Genome) Contains(t TransitionGene) bool {
	return slices.Contains(g.Transitions, t)
}

// StartIndex returns the index of the first state flagged as start, or -1.
func (g Genome) StartIndex() int {
	for i := range g.States {
		if g.States[i].Flags.IsStart() {
			return i
		}
	}
	return -1
}

// AcceptingIndexes returns the indexes of all states flagged as final.
func (g Genome) AcceptingIndexes() []int {
	var result []int
	for i := range g.States {
		if g.States[i].Flags.IsFinal() {
			result = append(result, i)
		}
	}
	return result
}

// ReachableStates returns the indexes of all states reachable from the start
// state by following transitions forward. Without a start state the result
// is empty.
func (g Genome) ReachableStates() []int {
	start := g.StartIndex()
	if start < 0 {
		return nil
	}

	reachable := []int{start}
	unprocessed := []int{start}
	for len(unprocessed) > 0 {
		s := unprocessed[len(unprocessed)-1]
		unprocessed = unprocessed[:len(unprocessed)-1]

		for _, t := range g.Transitions {
			if t.StateFrom != s || t.StateTo >= len(g.States) {
				continue
			}
			if !slices.Contains(reachable, t.StateTo) {
				reachable = append(reachable, t.StateTo)
				if !slices.Contains(unprocessed, t.StateTo) {
					unprocessed = append(unprocessed, t.StateTo)
				}
			}
		}
	}
	return reachable
}

// UnreachableStates returns the complement of ReachableStates.
func (g Genome) UnreachableStates() []int {
	reachable := g.ReachableStates()
	var result []int
	for i := range g.States {
		if !slices.Contains(reachable, i) {
			result = append(result, i)
		}
	}
	return result
}

// SortTransitions brings the transitions into canonical order. States keep
// their positions; only transitions are sorted.
func (g *Genome) SortTransitions() {
	slices.SortFunc(g.Transitions, TransitionGene.Compare)
}

// RewriteLabels re-derives every state label from its position.
func (g *Genome) RewriteLabels() {
	for i := range g.States {
		g.States[i].Label = LabelFor(i)
	}
}

// LabelFor returns the cosmetic label for a state id: the first digit of the
// decimal rendering. Lossy for ids >= 10.
func LabelFor(id int) byte {
	return strconv.Itoa(id)[0]
}
