// Package codec implements the textual genome format used for bulk corpora:
// one genome per line,
//
//	<n_states> <flag_0> ... <flag_{n-1}> <n_transitions> <from> <read> <to> <write> ...
//
// Flags are the unsigned values of the state flag bitset. Ids and labels are
// not stored: on decode, the id is the position and the label is derived
// from it. Decoded genomes are not validated; validation is a separate,
// explicit step.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evofsm/evofsm/pkg/domain"
)

// Encode renders a genome in the canonical line format. The encoding is
// stable for canonically sorted genomes and doubles as a population key.
func Encode(g domain.Genome) string {
	var b strings.Builder

	b.WriteString(strconv.Itoa(len(g.States)))
	for _, s := range g.States {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(uint64(s.Flags), 10))
	}

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(len(g.Transitions)))
	for _, t := range g.Transitions {
		fmt.Fprintf(&b, " %d %d %d %d", t.StateFrom, t.SymbolRead, t.StateTo, t.SymbolWrite)
	}

	return b.String()
}

// Decode parses the line format back into a genome.
func Decode(encoded string) (domain.Genome, error) {
	fields := strings.Fields(encoded)
	pos := 0

	next := func(what string) (int, error) {
		if pos >= len(fields) {
			return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidEncoding, what)
		}
		v, err := strconv.Atoi(fields[pos])
		if err != nil {
			return 0, fmt.Errorf("%w: bad %s %q", domain.ErrInvalidEncoding, what, fields[pos])
		}
		pos++
		return v, nil
	}

	var genome domain.Genome

	nStates, err := next("state count")
	if err != nil {
		return domain.Genome{}, err
	}
	for i := 0; i < nStates; i++ {
		flag, err := next("state flag")
		if err != nil {
			return domain.Genome{}, err
		}
		genome.States = append(genome.States, domain.StateGene{
			ID:    i,
			Label: domain.LabelFor(i),
			Flags: domain.StateFlags(flag),
		})
	}

	nTransitions, err := next("transition count")
	if err != nil {
		return domain.Genome{}, err
	}
	for i := 0; i < nTransitions; i++ {
		var t domain.TransitionGene
		if t.StateFrom, err = next("transition source"); err != nil {
			return domain.Genome{}, err
		}
		if t.SymbolRead, err = next("transition read symbol"); err != nil {
			return domain.Genome{}, err
		}
		if t.StateTo, err = next("transition target"); err != nil {
			return domain.Genome{}, err
		}
		if t.SymbolWrite, err = next("transition write symbol"); err != nil {
			return domain.Genome{}, err
		}
		genome.Transitions = append(genome.Transitions, t)
	}

	return genome, nil
}
