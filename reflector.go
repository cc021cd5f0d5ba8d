package enigma

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"enigma/alphabet"
)

// Reflector sends the signal back through the rotors on a different contact.
type Reflector struct {
	table [alphabet.Size]alphabet.Symbol
}

// NewReflector builds a reflector from its table, given as the image of A
// through Z. The table must pair every letter with a different letter.
func NewReflector(table string) (*Reflector, error) {
	t, problems := parseTable(table, nil)
	if problems.ErrorOrNil() == nil {
		for i, out := range t {
			in := alphabet.Symbol(i)
			switch {
			case out == in:
				problems = multierror.Append(problems, fmt.Errorf("letter %v reflects to itself", in))
			case t[out] != in && in < out:
				problems = multierror.Append(problems, fmt.Errorf("%v reflects to %v but %v reflects to %v", in, out, out, t[out]))
			}
		}
	}
	if err := finish("reflector", problems); err != nil {
		return nil, err
	}
	return &Reflector{table: t}, nil
}

// Substitute returns the letter s is reflected to.
func (r *Reflector) Substitute(s alphabet.Symbol) alphabet.Symbol {
	return r.table[s]
}
