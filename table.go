package enigma

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"enigma/alphabet"
)

// parseTable reads a 26-letter substitution table and checks that it is a
// permutation of the alphabet. Every problem found is appended to problems.
func parseTable(table string, problems *multierror.Error) ([alphabet.Size]alphabet.Symbol, *multierror.Error) {
	var out [alphabet.Size]alphabet.Symbol
	if len(table) != alphabet.Size {
		return out, multierror.Append(problems, fmt.Errorf("table %q has %d letters, want %d", table, len(table), alphabet.Size))
	}

	var seen [alphabet.Size]bool
	for i, r := range table {
		s, ok := alphabet.FromRune(r)
		if !ok {
			problems = multierror.Append(problems, fmt.Errorf("%q at position %d is not a letter", r, i))
			continue
		}
		if seen[s] {
			problems = multierror.Append(problems, fmt.Errorf("letter %v appears more than once", s))
		}
		seen[s] = true
		out[i] = s
	}
	for i, ok := range seen {
		if !ok {
			problems = multierror.Append(problems, fmt.Errorf("letter %v is missing", alphabet.Symbol(i)))
		}
	}
	return out, problems
}

func letterFor(component, what string, r rune) (alphabet.Symbol, error) {
	s, ok := alphabet.FromRune(r)
	if !ok {
		return 0, configError(component, "%s %q is not a letter", what, r)
	}
	return s, nil
}
