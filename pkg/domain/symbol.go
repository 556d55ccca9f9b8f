package domain

import "strings"

// Symbol is a single symbol of an alphabet. The ID is the symbol's position
// within its alphabet, so lookups never need a search. Symbols are immutable
// and owned by their alphabet; code elsewhere holds pointers into it.
type Symbol struct {
	ID    int
	Glyph rune
	Blank bool
}

// Word is a sequence of symbols of one alphabet.
type Word []*Symbol

func (w Word) String() string {
	var b strings.Builder
	for _, sym := range w {
		if sym == nil {
			break
		}
		b.WriteRune(sym.Glyph)
	}
	return b.String()
}

// Alphabet is an ordered, immutable catalog of symbols. Input symbols come
// first, followed by blank symbols: symbols = [i0 .. iN, b0 .. bM]. Blank
// symbols are reserved for padding and representation use; transitions only
// ever read and write input symbols.
type Alphabet struct {
	symbols []Symbol
	nInput  int
}

// NewAlphabet builds an alphabet from a string of input glyphs followed by a
// string of blank glyphs.
func NewAlphabet(input, blank string) *Alphabet {
	a := &Alphabet{}
	for _, g := range input {
		a.symbols = append(a.symbols, Symbol{ID: len(a.symbols), Glyph: g})
	}
	a.nInput = len(a.symbols)
	for _, g := range blank {
		a.symbols = append(a.symbols, Symbol{ID: len(a.symbols), Glyph: g, Blank: true})
	}
	return a
}

// Binary returns the alphabet {'0', '1'} without blank symbols.
func Binary() *Alphabet { return NewAlphabet("01", "") }

// BinaryWithBlank returns the alphabet {'0', '1'} plus the blank symbol '.'.
func BinaryWithBlank() *Alphabet { return NewAlphabet("01", ".") }

// Len returns the total number of symbols, input and blank.
func (a *Alphabet) Len() int { return len(a.symbols) }

// InputLen returns the number of input symbols.
func (a *Alphabet) InputLen() int { return a.nInput }

// BlankLen returns the number of blank symbols.
func (a *Alphabet) BlankLen() int { return len(a.symbols) - a.nInput }

// Symbol returns the symbol with the given ID, or nil if out of range.
func (a *Alphabet) Symbol(id int) *Symbol {
	if id < 0 || id >= len(a.symbols) {
		return nil
	}
	return &a.symbols[id]
}

// StringToSymbols converts a glyph string into a word over the alphabet.
// Glyphs that are not part of the alphabet are silently skipped, which
// mirrors the historic behavior; callers that need strictness should compare
// lengths afterwards.
func (a *Alphabet) StringToSymbols(s string) Word {
	var result Word
	for _, g := range s {
		for i := range a.symbols {
			if a.symbols[i].Glyph == g {
				result = append(result, &a.symbols[i])
			}
		}
	}
	return result
}

// RandomString samples a word of the given length uniformly from the input
// symbols of the alphabet. Blank symbols are never drawn.
func RandomString(rng Rand, a *Alphabet, length int) Word {
	result := make(Word, length)
	for i := range result {
		result[i] = &a.symbols[rng.IntN(a.nInput)]
	}
	return result
}

// NthString returns the n-th word of the given length over the alphabet.
// The mapping is a bijection between [0, len(symbols)^length) and words,
// with n interpreted as positional base-len(symbols) digits, most
// significant first. Returns ErrIndexOutOfRange when n is outside the range.
func NthString(a *Alphabet, length, n int) (Word, error) {
	total := 1
	for i := 0; i < length; i++ {
		total *= len(a.symbols)
	}
	if n < 0 || n >= total {
		return nil, ErrIndexOutOfRange
	}

	result := make(Word, length)
	for l := length; l > 0; l-- {
		p := 1
		for i := 0; i < l-1; i++ {
			p *= len(a.symbols)
		}
		k := n / p
		result[length-l] = &a.symbols[k]
		n -= k * p
	}
	return result, nil
}
