// Package alphabet defines the 26-letter domain the machine operates on.
package alphabet

import (
	"fmt"
	"strings"
)

// Size is the number of symbols in the alphabet.
const Size = 26

// Letters lists the alphabet in symbol order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Symbol is a letter encoded as its index 0-25.
type Symbol uint8

// FromRune converts an ASCII letter of either case to a Symbol.
func FromRune(r rune) (Symbol, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Symbol(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return Symbol(r - 'a'), true
	}
	return 0, false
}

// Rune returns the upper-case letter for s.
func (s Symbol) Rune() rune {
	return rune(Letters[s])
}

func (s Symbol) String() string {
	return string(Letters[s])
}

// Add returns s shifted by n positions, wrapping in either direction.
func (s Symbol) Add(n int) Symbol {
	v := (int(s) + n) % Size
	if v < 0 {
		v += Size
	}
	return Symbol(v)
}

// DomainError reports a rune outside the alphabet.
type DomainError struct {
	Rune   rune
	Offset int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("alphabet: %q at offset %d is not a letter", e.Rune, e.Offset)
}

// Parse converts every rune of s to a Symbol.
func Parse(s string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(s))
	for i, r := range s {
		sym, ok := FromRune(r)
		if !ok {
			return nil, &DomainError{Rune: r, Offset: i}
		}
		out = append(out, sym)
	}
	return out, nil
}

// Format renders symbols as upper-case letters.
func Format(symbols []Symbol) string {
	var b strings.Builder
	b.Grow(len(symbols))
	for _, s := range symbols {
		b.WriteByte(Letters[s])
	}
	return b.String()
}
