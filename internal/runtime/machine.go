// Package runtime synthesizes genomes into executable machines and runs
// input words against them.
//
// A Machine owns an arena of realized states and transitions addressed by
// index. Adjacency and the dense transition table are index lists into that
// arena, so there are no object pointers that could dangle when the machine
// is copied or its slices reallocate.
package runtime

import (
	"log/slog"

	"github.com/evofsm/evofsm/internal/logging"
	"github.com/evofsm/evofsm/internal/validator"
	"github.com/evofsm/evofsm/pkg/domain"
)

// None marks an absent state or transition index.
const None = -1

// State is a realized automaton state inside a machine's arena. ID is its
// index in the arena; GeneID is the id of the gene it was translated from,
// which can differ after minimization. Outgoing and Incoming are transition
// indexes into the same arena.
type State struct {
	ID       int
	GeneID   int
	Label    byte
	Flags    domain.StateFlags
	Outgoing []int
	Incoming []int
}

// Transition is a realized transition inside a machine's arena. From and To
// are state indexes (None when the genome referenced a state that does not
// exist); Read and Write are symbol ids.
type Transition struct {
	ID    int
	From  int
	To    int
	Read  int
	Write int
}

// Machine is a finite state machine synthesized from a genome. It holds a
// borrowed alphabet, an owned copy of the genome, the realized arena, the
// derived starting/accepting index lists, and the dense transition table.
//
// Lifecycle: NewMachine returns an uninitialized machine; Init populates the
// arena and the table; Run only moves the current-state cursor; Free releases
// the arena and must be called exactly once before the machine is discarded.
// Run and Free on an uninitialized machine are reported, non-fatal errors.
type Machine struct {
	alphabet *domain.Alphabet
	genome   domain.Genome
	logger   *slog.Logger

	states      []State
	transitions []Transition
	starting    []int
	accepting   []int

	// table[state][symbol] holds a transition index, or None when no
	// transition is defined for the pair. It spans the full alphabet,
	// blanks included.
	table [][]int

	current     int
	initialized bool
}

// NewMachine creates an uninitialized machine for the given alphabet and
// genome. The genome is copied; the alphabet is borrowed. A nil logger is
// replaced by a no-op logger.
func NewMachine(alphabet *domain.Alphabet, genome domain.Genome, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Machine{
		alphabet: alphabet,
		genome:   genome.Clone(),
		logger:   logger,
		current:  None,
	}
}

// Init translates the genome into the realized arena and builds the
// transition table.
func (m *Machine) Init() {
	m.states, m.starting, m.accepting, m.transitions = translate(m.genome)

	m.table = make([][]int, len(m.states))
	for i := range m.table {
		row := make([]int, m.alphabet.Len())
		for j := range row {
			row[j] = None
		}
		m.table[i] = row
	}
	for i, t := range m.transitions {
		if t.From == None || t.Read < 0 || t.Read >= m.alphabet.Len() {
			m.logger.Debug("skipping unresolvable transition in table", "transition", i)
			continue
		}
		m.table[t.From][t.Read] = i
	}

	m.initialized = true
}

// Free releases the arena. Calling Free on an uninitialized or already freed
// machine is reported and leaves the machine unchanged.
func (m *Machine) Free() {
	if !m.initialized {
		m.logger.Error("free called on an uninitialized machine")
		return
	}
	m.states = nil
	m.transitions = nil
	m.starting = nil
	m.accepting = nil
	m.table = nil
	m.current = None
	m.initialized = false
}

// Reset places the current-state cursor on the first state flagged as start,
// in arena order, or clears it when there is none.
func (m *Machine) Reset() {
	m.current = None
	for i := range m.states {
		if m.states[i].Flags.IsStart() {
			m.current = i
			return
		}
	}
}

// Validate checks the machine's genome; see the validator package.
func (m *Machine) Validate(allowEmptyFinal bool) domain.ValidationFlags {
	return validator.Validate(m.alphabet, m.genome, allowEmptyFinal)
}

// Initialized reports whether Init has been called and Free has not.
func (m *Machine) Initialized() bool { return m.initialized }

// Alphabet returns the borrowed alphabet.
func (m *Machine) Alphabet() *domain.Alphabet { return m.alphabet }

// Genome returns a copy of the machine's genome.
func (m *Machine) Genome() domain.Genome { return m.genome.Clone() }

// States exposes the state arena. The slice is owned by the machine; results
// of Minimize borrow indexes into it and are only valid until Free.
func (m *Machine) States() []State { return m.states }

// Transitions exposes the transition arena.
func (m *Machine) Transitions() []Transition { return m.transitions }

// StartingStates returns the arena indexes of all states flagged as start.
func (m *Machine) StartingStates() []int { return m.starting }

// AcceptingStates returns the arena indexes of all states flagged as final.
func (m *Machine) AcceptingStates() []int { return m.accepting }

// Current returns the arena index of the current state, or None.
func (m *Machine) Current() int { return m.current }
