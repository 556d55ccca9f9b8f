package runtime

import "github.com/evofsm/evofsm/pkg/domain"

// Run executes the machine against an input word, starting from the current
// state. The caller must have called Init and Reset first; Run only moves
// the current-state cursor.
//
// Flags accumulate: a run that gets stuck mid-word reports both the stall
// and, if applicable, that it did not end in a final state. RunOK means the
// whole word was consumed and the machine stopped in a final state.
func (m *Machine) Run(input domain.Word, rlog *RunLog) domain.RunFlags {
	// The log must never be left in a stale state, even on early failure.
	rlog.Reset()

	if !m.initialized {
		return domain.RunErrNotInitialized
	}
	if m.current == None {
		return domain.RunErrCurrentStateNotSet
	}
	if !m.states[m.current].Flags.IsStart() {
		return domain.RunErrNotInStartingState
	}

	result := domain.RunOK

	// Copy the whole input up front; the loop below may stop early and the
	// log should still show what was presented.
	rlog.Input = copyWord(input)

	for _, sym := range input {
		if sym == nil || sym.ID < 0 || sym.ID >= m.alphabet.Len() {
			result |= domain.RunErrInvalidWord
			break
		}

		ti := m.table[m.current][sym.ID]
		if ti == None {
			result |= domain.RunErrNoViableTransition
			break
		}

		t := &m.transitions[ti]
		rlog.Accepted = append(rlog.Accepted, sym)
		rlog.Trace = append(rlog.Trace, ti)
		rlog.Output = append(rlog.Output, m.alphabet.Symbol(t.Write))
		m.logger.Debug("read symbol", "glyph", string(sym.Glyph), "to", t.To)

		m.current = t.To
		if m.current == None {
			// Unresolved target endpoint; the walk cannot continue.
			result |= domain.RunErrNoViableTransition
			break
		}
	}

	// Consuming the word is not enough; acceptance requires a final state.
	if m.current == None || !m.states[m.current].Flags.IsFinal() {
		result |= domain.RunErrNotInFinalState
	}

	rlog.finalize(input)
	return result
}
