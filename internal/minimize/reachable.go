package minimize

import (
	"slices"

	"github.com/evofsm/evofsm/internal/runtime"
)

// ReachableStates returns the arena indexes of all states reachable from the
// first starting state by following transitions forward. Without a starting
// state the result is empty.
func ReachableStates(m *runtime.Machine) []int {
	states := m.States()
	transitions := m.Transitions()

	start := runtime.None
	for i := range states {
		if states[i].Flags.IsStart() {
			start = i
			break
		}
	}
	if start == runtime.None {
		return nil
	}

	reachable := []int{start}
	unprocessed := []int{start}
	for len(unprocessed) > 0 {
		s := unprocessed[len(unprocessed)-1]
		unprocessed = unprocessed[:len(unprocessed)-1]

		for _, t := range transitions {
			if t.From != s || t.To == runtime.None {
				continue
			}
			if !slices.Contains(reachable, t.To) {
				reachable = append(reachable, t.To)
				if !slices.Contains(unprocessed, t.To) {
					unprocessed = append(unprocessed, t.To)
				}
			}
		}
	}
	return reachable
}

// UnreachableStates returns the complement of ReachableStates over the arena.
func UnreachableStates(m *runtime.Machine) []int {
	reachable := ReachableStates(m)
	var result []int
	for i := range m.States() {
		if !slices.Contains(reachable, i) {
			result = append(result, i)
		}
	}
	return result
}

// RemoveUnreachable filters the machine down to its reachable part. It
// returns the reachable state indexes plus every transition with either
// endpoint among them, preserving arena order per state.
func RemoveUnreachable(m *runtime.Machine) (states, transitions []int) {
	states = ReachableStates(m)

	all := m.Transitions()
	for _, s := range states {
		for ti := range all {
			if all[ti].From == s || all[ti].To == s {
				if !slices.Contains(transitions, ti) {
					transitions = append(transitions, ti)
				}
			}
		}
	}
	return states, transitions
}
