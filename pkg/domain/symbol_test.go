package domain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/evofsm/evofsm/pkg/domain"
)

func TestAlphabet_Layout(t *testing.T) {
	a := domain.BinaryWithBlank()

	if a.Len() != 3 {
		t.Fatalf("expected 3 symbols, got %d", a.Len())
	}
	if a.InputLen() != 2 {
		t.Errorf("expected 2 input symbols, got %d", a.InputLen())
	}
	if a.BlankLen() != 1 {
		t.Errorf("expected 1 blank symbol, got %d", a.BlankLen())
	}

	// Input symbols come first, blanks after.
	for i, want := range []rune{'0', '1', '.'} {
		sym := a.Symbol(i)
		if sym == nil {
			t.Fatalf("symbol %d missing", i)
		}
		if sym.ID != i || sym.Glyph != want {
			t.Errorf("symbol %d: got id=%d glyph=%q, want id=%d glyph=%q", i, sym.ID, sym.Glyph, i, want)
		}
		if sym.Blank != (i == 2) {
			t.Errorf("symbol %d: wrong blank flag", i)
		}
	}

	if a.Symbol(-1) != nil || a.Symbol(3) != nil {
		t.Error("out-of-range lookup should return nil")
	}
}

func TestAlphabet_StringToSymbols(t *testing.T) {
	a := domain.Binary()

	w := a.StringToSymbols("0110")
	if got := w.String(); got != "0110" {
		t.Errorf("round trip: got %q, want %q", got, "0110")
	}

	// Unknown glyphs are skipped, not reported.
	w = a.StringToSymbols("0x1y")
	if got := w.String(); got != "01" {
		t.Errorf("unknown glyphs: got %q, want %q", got, "01")
	}

	if w := a.StringToSymbols(""); len(w) != 0 {
		t.Errorf("empty input: got %d symbols", len(w))
	}
}

func TestWord_StringStopsAtNil(t *testing.T) {
	a := domain.Binary()
	w := domain.Word{a.Symbol(0), nil, a.Symbol(1)}
	if got := w.String(); got != "0" {
		t.Errorf("got %q, want %q", got, "0")
	}
}

func TestRandomString(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	a := domain.BinaryWithBlank()

	for i := 0; i < 100; i++ {
		w := domain.RandomString(rng, a, 16)
		if len(w) != 16 {
			t.Fatalf("got length %d, want 16", len(w))
		}
		for _, sym := range w {
			if sym.Blank {
				t.Fatal("random strings must never contain blank symbols")
			}
		}
	}
}

func TestNthString(t *testing.T) {
	a := domain.Binary()

	// All 8 strings of length 3, in order and distinct.
	want := []string{"000", "001", "010", "011", "100", "101", "110", "111"}
	for n, expected := range want {
		w, err := domain.NthString(a, 3, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if got := w.String(); got != expected {
			t.Errorf("n=%d: got %q, want %q", n, got, expected)
		}
	}

	if _, err := domain.NthString(a, 3, 8); err != domain.ErrIndexOutOfRange {
		t.Errorf("n=8: got %v, want ErrIndexOutOfRange", err)
	}
	if _, err := domain.NthString(a, 3, -1); err != domain.ErrIndexOutOfRange {
		t.Errorf("n=-1: got %v, want ErrIndexOutOfRange", err)
	}

	// Length zero has exactly one string, the empty one.
	w, err := domain.NthString(a, 0, 0)
	if err != nil {
		t.Fatalf("length 0: %v", err)
	}
	if len(w) != 0 {
		t.Errorf("length 0: got %d symbols", len(w))
	}
	if _, err := domain.NthString(a, 0, 1); err != domain.ErrIndexOutOfRange {
		t.Errorf("length 0, n=1: got %v, want ErrIndexOutOfRange", err)
	}
}

func TestNthString_SpansBlanks(t *testing.T) {
	// The enumeration runs over the full alphabet, blanks included.
	a := domain.BinaryWithBlank()

	w, err := domain.NthString(a, 2, 8)
	if err != nil {
		t.Fatalf("n=8: %v", err)
	}
	if got := w.String(); got != ".." {
		t.Errorf("got %q, want %q", got, "..")
	}

	if _, err := domain.NthString(a, 2, 9); err != domain.ErrIndexOutOfRange {
		t.Errorf("n=9: got %v, want ErrIndexOutOfRange", err)
	}
}
