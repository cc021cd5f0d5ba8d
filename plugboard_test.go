package enigma

import (
	"errors"
	"testing"

	"enigma/alphabet"
)

func sym(r rune) alphabet.Symbol {
	s, ok := alphabet.FromRune(r)
	if !ok {
		panic("not a letter: " + string(r))
	}
	return s
}

func TestPlugboardWithoutPairsIsIdentity(t *testing.T) {
	p := NewPlugboard()
	for i := 0; i < alphabet.Size; i++ {
		s := alphabet.Symbol(i)
		if got := p.Substitute(s); got != s {
			t.Fatalf("Substitute(%v) = %v, want identity", s, got)
		}
	}
	if len(p.Pairs()) != 0 {
		t.Fatalf("expected no pairs, got %v", p.Pairs())
	}
}

func TestPlugboardIsInvolution(t *testing.T) {
	pairs, err := ParsePairs("QE GN,AZ")
	if err != nil {
		t.Fatalf("ParsePairs: %v", err)
	}
	p := NewPlugboard(pairs...)
	for _, pair := range pairs {
		if got := p.Substitute(pair[0]); got != pair[1] {
			t.Errorf("Substitute(%v) = %v, want %v", pair[0], got, pair[1])
		}
		if got := p.Substitute(pair[1]); got != pair[0] {
			t.Errorf("Substitute(%v) = %v, want %v", pair[1], got, pair[0])
		}
	}
	for i := 0; i < alphabet.Size; i++ {
		s := alphabet.Symbol(i)
		if got := p.Substitute(p.Substitute(s)); got != s {
			t.Fatalf("plug(plug(%v)) = %v", s, got)
		}
	}
	if got := p.Substitute(sym('H')); got != sym('H') {
		t.Fatalf("unpaired H mapped to %v", got)
	}
}

func TestPlugboardLastWriteWins(t *testing.T) {
	p := NewPlugboard(Pair{sym('A'), sym('B')})
	p.Configure(Pair{sym('A'), sym('C')})

	if got := p.Substitute(sym('A')); got != sym('C') {
		t.Fatalf("A -> %v, want C", got)
	}
	if got := p.Substitute(sym('C')); got != sym('A') {
		t.Fatalf("C -> %v, want A", got)
	}
	if got := p.Substitute(sym('B')); got != sym('B') {
		t.Fatalf("B -> %v, want B after its partner was re-plugged", got)
	}
	want := []Pair{{sym('A'), sym('C')}}
	got := p.Pairs()
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("Pairs() = %v, want %v", got, want)
	}
}

func TestParsePairsRejectsMalformedTokens(t *testing.T) {
	for _, in := range []string{"ABC", "A", "A1", "AA", "QE G"} {
		_, err := ParsePairs(in)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("ParsePairs(%q) error = %v, want ConfigurationError", in, err)
			continue
		}
		if cfgErr.Component != "plugboard" {
			t.Errorf("ParsePairs(%q) component = %q", in, cfgErr.Component)
		}
	}
}

func TestParsePairsEmpty(t *testing.T) {
	pairs, err := ParsePairs("  ")
	if err != nil {
		t.Fatalf("ParsePairs: %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %v", pairs)
	}
}
