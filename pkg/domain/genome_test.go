package domain_test

import (
	"slices"
	"testing"

	"github.com/evofsm/evofsm/pkg/domain"
)

// twoStateAcceptor is a minimal well-formed genome: state 0 starts, state 1
// accepts, a single transition 0 --1/1--> 1.
func twoStateAcceptor() domain.Genome {
	return domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Label: '0', Flags: domain.StateStart},
			{ID: 1, Label: '1', Flags: domain.StateFinal},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 1, StateTo: 1, SymbolWrite: 1},
		},
	}
}

func TestGenome_CloneIsDeep(t *testing.T) {
	g := twoStateAcceptor()
	c := g.Clone()

	c.States[0].Flags = c.States[0].Flags.Without(domain.StateStart)
	c.Transitions[0].StateTo = 0

	if !g.States[0].Flags.IsStart() {
		t.Error("clone shares state storage with the original")
	}
	if g.Transitions[0].StateTo != 1 {
		t.Error("clone shares transition storage with the original")
	}
}

func TestGenome_EqualIgnoresLabels(t *testing.T) {
	g := twoStateAcceptor()
	o := g.Clone()
	o.States[0].Label = 'x'
	o.States[1].Label = 'y'

	if !g.Equal(o) {
		t.Error("labels are cosmetic and must not affect equality")
	}

	o = g.Clone()
	o.States[1].Flags = domain.StateDefault
	if g.Equal(o) {
		t.Error("flag changes must affect equality")
	}

	o = g.Clone()
	o.Transitions[0].SymbolWrite = 0
	if g.Equal(o) {
		t.Error("transition changes must affect equality")
	}
}

func TestGenome_StartAndAccepting(t *testing.T) {
	g := twoStateAcceptor()

	if got := g.StartIndex(); got != 0 {
		t.Errorf("StartIndex: got %d, want 0", got)
	}
	if got := g.AcceptingIndexes(); !slices.Equal(got, []int{1}) {
		t.Errorf("AcceptingIndexes: got %v, want [1]", got)
	}

	var empty domain.Genome
	if got := empty.StartIndex(); got != -1 {
		t.Errorf("StartIndex of empty genome: got %d, want -1", got)
	}
}

func TestGenome_Reachability(t *testing.T) {
	// State 2 has only an outgoing edge towards the start; it cannot be
	// reached from it.
	g := domain.Genome{
		States: []domain.StateGene{
			{ID: 0, Flags: domain.StateStart},
			{ID: 1, Flags: domain.StateFinal},
			{ID: 2},
		},
		Transitions: []domain.TransitionGene{
			{StateFrom: 0, SymbolRead: 0, StateTo: 1, SymbolWrite: 0},
			{StateFrom: 1, SymbolRead: 1, StateTo: 0, SymbolWrite: 1},
			{StateFrom: 2, SymbolRead: 0, StateTo: 0, SymbolWrite: 0},
		},
	}

	reachable := g.ReachableStates()
	slices.Sort(reachable)
	if !slices.Equal(reachable, []int{0, 1}) {
		t.Errorf("ReachableStates: got %v, want [0 1]", reachable)
	}
	if got := g.UnreachableStates(); !slices.Equal(got, []int{2}) {
		t.Errorf("UnreachableStates: got %v, want [2]", got)
	}

	// Without a starting state nothing is reachable.
	g.States[0].Flags = domain.StateDefault
	if got := g.ReachableStates(); len(got) != 0 {
		t.Errorf("no start: got %v, want empty", got)
	}
}

func TestGenome_SortTransitions(t *testing.T) {
	g := domain.Genome{
		States: []domain.StateGene{{ID: 0, Flags: domain.StateStart}, {ID: 1}},
		Transitions: []domain.TransitionGene{
			{StateFrom: 1, SymbolRead: 0, StateTo: 0, SymbolWrite: 0},
			{StateFrom: 0, SymbolRead: 1, StateTo: 1, SymbolWrite: 0},
			{StateFrom: 0, SymbolRead: 0, StateTo: 1, SymbolWrite: 1},
			{StateFrom: 0, SymbolRead: 0, StateTo: 1, SymbolWrite: 0},
		},
	}
	g.SortTransitions()

	want := []domain.TransitionGene{
		{StateFrom: 0, SymbolRead: 0, StateTo: 1, SymbolWrite: 0},
		{StateFrom: 0, SymbolRead: 0, StateTo: 1, SymbolWrite: 1},
		{StateFrom: 0, SymbolRead: 1, StateTo: 1, SymbolWrite: 0},
		{StateFrom: 1, SymbolRead: 0, StateTo: 0, SymbolWrite: 0},
	}
	if !slices.Equal(g.Transitions, want) {
		t.Errorf("got %v, want %v", g.Transitions, want)
	}
}

func TestGenome_Contains(t *testing.T) {
	g := twoStateAcceptor()

	if !g.Contains(g.Transitions[0]) {
		t.Error("existing transition not found")
	}
	if g.Contains(domain.TransitionGene{StateFrom: 1, SymbolRead: 0, StateTo: 0, SymbolWrite: 0}) {
		t.Error("absent transition reported as present")
	}
}

func TestLabelFor(t *testing.T) {
	if got := domain.LabelFor(3); got != '3' {
		t.Errorf("got %q", got)
	}
	// Labels keep only the first decimal digit.
	if got := domain.LabelFor(12); got != '1' {
		t.Errorf("got %q", got)
	}
}
