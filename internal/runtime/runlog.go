package runtime

import "github.com/evofsm/evofsm/pkg/domain"

// RunLog records one run of a machine: the transitions taken, the input as
// presented, the prefix that was actually consumed, and the emitted output.
// The log is owned by the caller and reset at the start of every Run, so one
// log can be reused across calls.
type RunLog struct {
	// Trace holds the indexes of the transitions taken, in order, into the
	// machine's transition arena.
	Trace []int

	Input       domain.Word
	InputString string
	InputLength int

	Accepted       domain.Word
	AcceptedString string
	AcceptedLength int

	Output       domain.Word
	OutputString string
	OutputLength int
}

// Reset clears the log for the next run.
func (l *RunLog) Reset() {
	l.Trace = l.Trace[:0]
	l.Input = nil
	l.InputString = ""
	l.InputLength = 0
	l.Accepted = nil
	l.AcceptedString = ""
	l.AcceptedLength = 0
	l.Output = nil
	l.OutputString = ""
	l.OutputLength = 0
}

// finalize fills in the string renderings and lengths after a run.
func (l *RunLog) finalize(input domain.Word) {
	l.InputString = input.String()
	l.InputLength = len(input)
	l.AcceptedString = l.Accepted.String()
	l.AcceptedLength = len(l.Accepted)
	l.OutputString = l.Output.String()
	l.OutputLength = len(l.Output)
}

// copyWord copies symbols up to the first nil entry, mirroring the historic
// truncation behavior for malformed words.
func copyWord(src domain.Word) domain.Word {
	dest := make(domain.Word, 0, len(src))
	for _, sym := range src {
		if sym == nil {
			break
		}
		dest = append(dest, sym)
	}
	return dest
}
