package enigma

import (
	"strings"

	"enigma/alphabet"
)

// Pair is one plugboard cable joining two letters.
type Pair [2]alphabet.Symbol

func (p Pair) String() string {
	return p[0].String() + p[1].String()
}

// Plugboard swaps the letters of each connected pair and leaves every other
// letter unchanged. The mapping is always an involution.
type Plugboard struct {
	plugs [alphabet.Size]alphabet.Symbol
}

// NewPlugboard returns a plugboard with the given pairs connected.
func NewPlugboard(pairs ...Pair) *Plugboard {
	p := &Plugboard{}
	for i := range p.plugs {
		p.plugs[i] = alphabet.Symbol(i)
	}
	p.Configure(pairs...)
	return p
}

// Configure connects each pair in order. A letter that is already connected
// is moved to its new partner and its old partner is left unplugged.
func (p *Plugboard) Configure(pairs ...Pair) {
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		p.unplug(a)
		p.unplug(b)
		p.plugs[a] = b
		p.plugs[b] = a
	}
}

func (p *Plugboard) unplug(s alphabet.Symbol) {
	partner := p.plugs[s]
	p.plugs[partner] = partner
	p.plugs[s] = s
}

// Substitute returns the letter s is wired to.
func (p *Plugboard) Substitute(s alphabet.Symbol) alphabet.Symbol {
	return p.plugs[s]
}

// Pairs lists the connected pairs, ordered by their first letter.
func (p *Plugboard) Pairs() []Pair {
	var pairs []Pair
	for i, partner := range p.plugs {
		s := alphabet.Symbol(i)
		if s < partner {
			pairs = append(pairs, Pair{s, partner})
		}
	}
	return pairs
}

// ParsePairs reads plugboard pairs written as two-letter tokens separated by
// spaces or commas, e.g. "QE GN".
func ParsePairs(s string) ([]Pair, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		pair, err := parsePair(f)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func parsePair(token string) (Pair, error) {
	runes := []rune(token)
	if len(runes) != 2 {
		return Pair{}, configError("plugboard", "pair %q must be exactly two letters", token)
	}
	a, okA := alphabet.FromRune(runes[0])
	b, okB := alphabet.FromRune(runes[1])
	if !okA || !okB {
		return Pair{}, configError("plugboard", "pair %q must be exactly two letters", token)
	}
	if a == b {
		return Pair{}, configError("plugboard", "pair %q connects a letter to itself", token)
	}
	return Pair{a, b}, nil
}
