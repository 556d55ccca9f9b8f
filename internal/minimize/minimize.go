package minimize

import (
	"slices"

	"github.com/evofsm/evofsm/internal/runtime"
	"github.com/evofsm/evofsm/pkg/domain"
)

// MergeEquivalentSets picks one representative per non-empty subset: the
// first member, in subset order. The returned values are arena indexes of
// the original states; no state is copied, and a representative keeps the
// arena id it always had.
func MergeEquivalentSets(states []int, p Partition) []int {
	var result []int
	for _, subset := range p.Subsets {
		if len(subset) == 0 {
			continue
		}
		result = append(result, states[subset[0]])
	}
	return result
}

// MergedTransitions keeps every transition whose both endpoints are members
// of the merged state set.
//
// Transitions that touch an equivalent-but-non-representative state are
// dropped here rather than rewritten onto the representative. This keeps
// the historic behavior: the surviving representative keeps only its own
// edges, and edges of its merged siblings disappear with them.
func MergedTransitions(m *runtime.Machine, merged, transitions []int) []int {
	arena := m.Transitions()
	var result []int
	for _, ti := range transitions {
		t := arena[ti]
		if slices.Contains(merged, t.From) && slices.Contains(merged, t.To) {
			result = append(result, ti)
		}
	}
	return result
}

// Minimize reduces the machine to its canonical form: reachability filter,
// equivalence classes, representative merge, transition filter. The results
// are indexes into the machine's arena and stay valid until Free.
func Minimize(m *runtime.Machine) (states, transitions []int) {
	ssReachable, tsReachable := RemoveUnreachable(m)

	equiv := EquivalenceSets(m.Alphabet(), m, ssReachable, tsReachable)

	ssMerged := MergeEquivalentSets(ssReachable, equiv)
	tsMerged := MergedTransitions(m, ssMerged, tsReachable)

	return ssMerged, tsMerged
}

// EncodeGenome re-encodes a set of arena states and transitions as a genome;
// it is the inverse of synthesis, typically applied to a Minimize result.
//
// By default states get fresh contiguous ids 0..n-1 in list order;
// preserveIDs keeps the original, possibly gapped, arena ids instead.
// Transition endpoints are rewritten through an id-remap table and the
// result is canonically sorted.
func EncodeGenome(m *runtime.Machine, states, transitions []int, preserveIDs bool) domain.Genome {
	sArena := m.States()
	tArena := m.Transitions()

	result := domain.Genome{
		States:      make([]domain.StateGene, len(states)),
		Transitions: make([]domain.TransitionGene, len(transitions)),
	}

	maxID := 0
	for _, si := range states {
		if sArena[si].ID > maxID {
			maxID = sArena[si].ID
		}
	}
	remap := make([]int, maxID+1)

	for i, si := range states {
		s := sArena[si]
		result.States[i].Label = s.Label
		result.States[i].Flags = s.Flags

		if preserveIDs {
			result.States[i].ID = s.ID
			remap[s.ID] = s.ID
		} else {
			result.States[i].ID = i
			remap[s.ID] = i
		}
	}

	for i, ti := range transitions {
		t := tArena[ti]
		result.Transitions[i].SymbolRead = t.Read
		result.Transitions[i].SymbolWrite = t.Write
		result.Transitions[i].StateFrom = remap[sArena[t.From].ID]
		result.Transitions[i].StateTo = remap[sArena[t.To].ID]
	}

	result.SortTransitions()
	return result
}
