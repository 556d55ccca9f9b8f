package domain

import (
	"strconv"
	"strings"
)

// StateFlags marks the role of a state within an automaton. Flags are
// bit-combinable: a state can be both starting and final.
type StateFlags uint

const (
	StateDefault StateFlags = 0
	StateStart   StateFlags = 1 << 0
	StateFinal   StateFlags = 1 << 1
)

// IsStart reports whether the start bit is set.
func (f StateFlags) IsStart() bool { return f&StateStart != 0 }

// IsFinal reports whether the final (accepting) bit is set.
func (f StateFlags) IsFinal() bool { return f&StateFinal != 0 }

// With returns f with the given bits set.
func (f StateFlags) With(o StateFlags) StateFlags { return f | o }

// Without returns f with the given bits cleared.
func (f StateFlags) Without(o StateFlags) StateFlags { return f &^ o }

// Toggle returns f with the given bits flipped.
func (f StateFlags) Toggle(o StateFlags) StateFlags { return f ^ o }

func (f StateFlags) String() string {
	return flagString(uint(f), []flagName{
		{uint(StateStart), "IS_START"},
		{uint(StateFinal), "IS_FINAL"},
	}, "DEFAULT")
}

// ValidationFlags is the result of validating a genome. The zero value means
// the genome encodes a well-formed DFA; every defect sets an additional bit.
// Validation results are advisory: a flagged genome is still usable, the
// flags only describe what a synthesized machine will be up against.
type ValidationFlags uint

const (
	IsDFA                   ValidationFlags = 0
	IsNFA                   ValidationFlags = 1 << 0
	MissingStates           ValidationFlags = 1 << 1
	MissingTransitions      ValidationFlags = 1 << 2
	MultipleStartingStates  ValidationFlags = 1 << 3
	MissingStartingState    ValidationFlags = 1 << 4
	NoFinalStates           ValidationFlags = 1 << 5
	TransitionSourceUnknown ValidationFlags = 1 << 6
	TransitionTargetUnknown ValidationFlags = 1 << 7
	DuplicateTransition     ValidationFlags = 1 << 8
	TransitionSymbolUnknown ValidationFlags = 1 << 9
)

// Has reports whether all bits of o are set in f.
func (f ValidationFlags) Has(o ValidationFlags) bool { return f&o == o && o != 0 }

func (f ValidationFlags) String() string {
	return flagString(uint(f), []flagName{
		{uint(IsNFA), "IS_NFA"},
		{uint(MissingStates), "MISSING_STATES"},
		{uint(MissingTransitions), "MISSING_TRANSITIONS"},
		{uint(MultipleStartingStates), "MULTIPLE_STARTING_STATES"},
		{uint(MissingStartingState), "MISSING_STARTING_STATE"},
		{uint(NoFinalStates), "NO_FINAL_STATES"},
		{uint(TransitionSourceUnknown), "TRANSITION_SOURCE_UNKNOWN"},
		{uint(TransitionTargetUnknown), "TRANSITION_TARGET_UNKNOWN"},
		{uint(DuplicateTransition), "DUPLICATE_TRANSITION"},
		{uint(TransitionSymbolUnknown), "TRANSITION_SYMBOL_IS_UNKNOWN"},
	}, "IS_DFA")
}

// RunFlags is the outcome of running an input word against a machine. Zero
// (RunOK) means the full word was consumed and the machine stopped in a final
// state. Flags accumulate; a run can both get stuck and end outside a final
// state.
type RunFlags uint

const (
	RunOK RunFlags = 0

	// Usage errors: the machine was driven incorrectly.
	RunErrNotInitialized     RunFlags = 1 << 1
	RunErrCurrentStateNotSet RunFlags = 1 << 2
	RunErrNotInStartingState RunFlags = 1 << 3

	// Data-dependent rejections.
	RunErrNoViableTransition RunFlags = 1 << 4
	RunErrNotInFinalState    RunFlags = 1 << 5
	RunErrInvalidWord        RunFlags = 1 << 6
)

// Has reports whether all bits of o are set in f.
func (f RunFlags) Has(o RunFlags) bool { return f&o == o && o != 0 }

// Accepted reports full acceptance of the input word.
func (f RunFlags) Accepted() bool { return f == RunOK }

func (f RunFlags) String() string {
	return flagString(uint(f), []flagName{
		{uint(RunErrNotInitialized), "ERROR_NOT_INITIALIZED"},
		{uint(RunErrCurrentStateNotSet), "ERROR_CURRENT_STATE_NOT_SET"},
		{uint(RunErrNotInStartingState), "ERROR_NOT_IN_STARTING_STATE"},
		{uint(RunErrNoViableTransition), "ERROR_NO_VIABLE_TRANSITION"},
		{uint(RunErrNotInFinalState), "ERROR_NOT_IN_FINAL_STATE"},
		{uint(RunErrInvalidWord), "ERROR_INVALID_WORD"},
	}, "OK")
}

type flagName struct {
	bit  uint
	name string
}

// flagString renders a bitset as "<value>: NAME | NAME", or the given default
// name when no bit is set.
func flagString(v uint, names []flagName, zero string) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(v), 10))
	b.WriteString(": ")
	if v == 0 {
		b.WriteString(zero)
		return b.String()
	}
	n := 0
	for _, fn := range names {
		if v&fn.bit == fn.bit {
			if n > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(fn.name)
			n++
		}
	}
	return b.String()
}
