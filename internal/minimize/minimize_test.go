package minimize_test

import (
	"slices"
	"testing"

	"github.com/evofsm/evofsm/internal/minimize"
	"github.com/evofsm/evofsm/internal/runtime"
	"github.com/evofsm/evofsm/pkg/domain"
)

func machineFor(t *testing.T, g domain.Genome) *runtime.Machine {
	t.Helper()
	m := runtime.NewMachine(domain.Binary(), g, nil)
	m.Init()
	t.Cleanup(m.Free)
	return m
}

func TestReachableStates(t *testing.T) {
	// State 2 feeds into the start but is never entered.
	g := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Flags: domain.StateStart},
			{ID: 1, Flags: domain.StateFinal},
			{ID: 2},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 1, StateTo: 1, SymbolWrite: 1},
			{StateFrom: 2, SymbolRead: 0, StateTo: 0, SymbolWrite: 0},
		},
	}
	m := machineFor(t, g)

	reachable := minimize.ReachableStates(m)
	slices.Sort(reachable)
	if !slices.Equal(reachable, []int{0, 1}) {
		t.Errorf("reachable: got %v, want [0 1]", reachable)
	}
	if got := minimize.UnreachableStates(m); !slices.Equal(got, []int{2}) {
		t.Errorf("unreachable: got %v, want [2]", got)
	}

	// The filter keeps any transition touching a reachable state, so the
	// edge out of the unreachable state survives this stage.
	states, transitions := minimize.RemoveUnreachable(m)
	if len(states) != 2 {
		t.Errorf("filtered states: got %v", states)
	}
	if len(transitions) != 2 {
		t.Errorf("filtered transitions: got %v", transitions)
	}
}

func TestReachableStates_NoStart(t *testing.T) {
	g := domain.Genome{
		States: []domain.StateGene{{ID: 0, Flags: domain.StateFinal}},
	}
	m := machineFor(t, g)

	if got := minimize.ReachableStates(m); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestEquivalenceSets_SplitsFinals(t *testing.T) {
	// Even-number-of-ones acceptor: both states react to both symbols, only
	// one accepts. Already minimal.
	g := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Flags: domain.StateStart | domain.StateFinal},
			{ID: 1},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 0, StateTo: 0, SymbolWrite: 0},
			{StateFrom: 0, SymbolRead: 1, StateTo: 1, SymbolWrite: 1},
			{StateFrom: 1, SymbolRead: 0, StateTo: 1, SymbolWrite: 0},
			{StateFrom: 1, SymbolRead: 1, StateTo: 0, SymbolWrite: 1},
		},
	}
	m := machineFor(t, g)

	states, transitions := minimize.Minimize(m)
	if len(states) != 2 {
		t.Errorf("states: got %v", states)
	}
	if len(transitions) != 4 {
		t.Errorf("transitions: got %v", transitions)
	}
}

func TestMinimize_MergesEquivalentFinals(t *testing.T) {
	// States 1 and 2 are both accepting sinks; they collapse into one.
	g := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Flags: domain.StateStart},
			{ID: 1, Flags: domain.StateFinal},
			{ID: 2, Flags: domain.StateFinal},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 0, StateTo: 1, SymbolWrite: 0},
			{StateFrom: 0, SymbolRead: 1, StateTo: 2, SymbolWrite: 1},
		},
	}
	m := machineFor(t, g)

	states, transitions := minimize.Minimize(m)
	if len(states) != 2 {
		t.Fatalf("states: got %v, want two", states)
	}

	// The surviving representative keeps only its own edges; the edge into
	// the merged sibling disappears with it.
	if len(transitions) != 1 {
		t.Fatalf("transitions: got %v, want one", transitions)
	}

	reduced := minimize.EncodeGenome(m, states, transitions, false)
	want := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Flags: domain.StateStart},
			{ID: 1, Flags: domain.StateFinal},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 0, StateTo: 1, SymbolWrite: 0},
		},
	}
	if !reduced.Equal(want) {
		t.Errorf("reduced genome:\n got %+v\nwant %+v", reduced, want)
	}
}

func TestMinimize_DropsUnreachable(t *testing.T) {
	g := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Flags: domain.StateStart | domain.StateFinal},
			{ID: 1},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 0, StateTo: 0, SymbolWrite: 0},
			{StateFrom: 1, SymbolRead: 1, StateTo: 0, SymbolWrite: 1},
		},
	}
	m := machineFor(t, g)

	states, transitions := minimize.Minimize(m)
	reduced := minimize.EncodeGenome(m, states, transitions, false)

	if len(reduced.States) != 1 {
		t.Fatalf("got %d states, want 1", len(reduced.States))
	}
	if len(reduced.Transitions) != 1 || reduced.Transitions[0].StateFrom != 0 || reduced.Transitions[0].StateTo != 0 {
		t.Errorf("transitions: %+v", reduced.Transitions)
	}
}

func TestEncodeGenome_PreserveIDs(t *testing.T) {
	g := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Flags: domain.StateStart},
			{ID: 1},
			{ID: 2, Flags: domain.StateFinal},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 0, StateTo: 2, SymbolWrite: 0},
		},
	}
	m := machineFor(t, g)

	// Keep states 0 and 2 only.
	states := []int{0, 2}
	transitions := []int{0}

	fresh := minimize.EncodeGenome(m, states, transitions, false)
	if fresh.States[1].ID != 1 || fresh.Transitions[0].StateTo != 1 {
		t.Errorf("fresh ids: %+v", fresh)
	}

	kept := minimize.EncodeGenome(m, states, transitions, true)
	if kept.States[1].ID != 2 || kept.Transitions[0].StateTo != 2 {
		t.Errorf("preserved ids: %+v", kept)
	}
}

func TestMinimize_Idempotent(t *testing.T) {
	g := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Flags: domain.StateStart},
			{ID: 1, Flags: domain.StateFinal},
			{ID: 2, Flags: domain.StateFinal},
			{ID: 3},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 0, StateTo: 1, SymbolWrite: 0},
			{StateFrom: 0, SymbolRead: 1, StateTo: 2, SymbolWrite: 1},
			{StateFrom: 3, SymbolRead: 0, StateTo: 1, SymbolWrite: 0},
		},
	}
	m := machineFor(t, g)
	states, transitions := minimize.Minimize(m)
	once := minimize.EncodeGenome(m, states, transitions, false)

	m2 := machineFor(t, once)
	states2, transitions2 := minimize.Minimize(m2)
	twice := minimize.EncodeGenome(m2, states2, transitions2, false)

	if !once.Equal(twice) {
		t.Errorf("minimization not idempotent:\n once %+v\ntwice %+v", once, twice)
	}
}
