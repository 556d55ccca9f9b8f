package minimize

import (
	"slices"

	"github.com/evofsm/evofsm/internal/runtime"
	"github.com/evofsm/evofsm/pkg/domain"
)

// notProcessed marks a state that has no subset assigned yet within one
// refinement round.
const notProcessed = -1

// Partition groups states into disjoint subsets. All indexes are positions
// within the state list handed to EquivalenceSets, not arena indexes.
// SubsetMap is total: it maps every position to the subset holding it.
type Partition struct {
	Subsets   [][]int
	SubsetMap []int
}

// Equal reports whether two partitions agree. Comparing the subset maps is
// sufficient: the map records, per state, the subset it belongs to, which is
// unique for an ordered state list.
func (p Partition) Equal(o Partition) bool {
	return slices.Equal(p.SubsetMap, o.SubsetMap)
}

// successorMap builds the Q x Sigma -> Q table over the given state subset.
// Entry [i][k] is the position (within states) reached from states[i] on
// symbol k, or None when no such transition exists. The table spans the full
// alphabet, blanks included.
func successorMap(alphabet *domain.Alphabet, m *runtime.Machine, states, transitions []int) [][]int {
	succ := make([][]int, len(states))
	for i := range succ {
		row := make([]int, alphabet.Len())
		for k := range row {
			row[k] = runtime.None
		}
		succ[i] = row
	}

	arena := m.Transitions()
	for _, ti := range transitions {
		t := arena[ti]
		from := slices.Index(states, t.From)
		to := slices.Index(states, t.To)
		if from < 0 || to < 0 || t.Read < 0 || t.Read >= alphabet.Len() {
			continue
		}
		succ[from][t.Read] = to
	}
	return succ
}

// distinguishable reports whether two states (positions i, j) can be told
// apart under the current partition: some symbol leads exactly one of them
// into undefined territory, or leads them into different subsets.
func distinguishable(alphabet *domain.Alphabet, succ [][]int, p Partition, i, j int) bool {
	for k := 0; k < alphabet.Len(); k++ {
		pi := succ[i][k]
		pj := succ[j][k]

		undef := 0
		if pi == runtime.None {
			undef++
		}
		if pj == runtime.None {
			undef++
		}
		if undef == 1 {
			return true
		}
		if undef == 2 {
			continue
		}

		if p.SubsetMap[pi] != p.SubsetMap[pj] {
			return true
		}
	}
	return false
}

// EquivalenceSets computes the equivalence classes of the given states by
// Moore partition refinement. The initial partition separates final from
// non-final states; each round splits subsets along pairwise
// distinguishability; the fixed point is reached when the subset map stops
// changing, which happens within at most len(states) rounds since every
// non-final round strictly refines the partition.
func EquivalenceSets(alphabet *domain.Alphabet, m *runtime.Machine, states, transitions []int) Partition {
	n := len(states)
	succ := successorMap(alphabet, m, states, transitions)

	arena := m.States()
	current := Partition{
		Subsets:   make([][]int, 2),
		SubsetMap: make([]int, n),
	}
	for j := 0; j < n; j++ {
		s := 0
		if arena[states[j]].Flags.IsFinal() {
			s = 1
		}
		current.SubsetMap[j] = s
		current.Subsets[s] = append(current.Subsets[s], j)
	}

	next := Partition{SubsetMap: make([]int, n)}

	for {
		next.Subsets = next.Subsets[:0]
		for i := 0; i < n; i++ {
			next.SubsetMap[i] = notProcessed
		}

		for _, subset := range current.Subsets {
			if len(subset) == 0 {
				// No final states, or nothing but final states.
				continue
			}

			// Singletons move forward unchanged.
			if len(subset) == 1 {
				state := subset[0]
				next.Subsets = append(next.Subsets, []int{state})
				next.SubsetMap[state] = len(next.Subsets) - 1
				continue
			}

			for i := 0; i < len(subset); i++ {
				qi := subset[i]

				// Open a new subset for any state that was not grouped with
				// an earlier member.
				if next.SubsetMap[qi] < 0 {
					next.Subsets = append(next.Subsets, []int{qi})
					next.SubsetMap[qi] = len(next.Subsets) - 1
				}

				for j := i + 1; j < len(subset); j++ {
					qj := subset[j]

					// Already grouped via transitivity.
					if next.SubsetMap[qj] >= 0 {
						continue
					}

					if !distinguishable(alphabet, succ, current, qi, qj) {
						sub := next.SubsetMap[qi]
						next.Subsets[sub] = append(next.Subsets[sub], qj)
						next.SubsetMap[qj] = sub
					}
				}
			}
		}

		if current.Equal(next) {
			return next
		}
		current.Subsets, next.Subsets = next.Subsets, current.Subsets
		current.SubsetMap, next.SubsetMap = next.SubsetMap, current.SubsetMap
	}
}
