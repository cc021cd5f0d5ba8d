package enigma

import (
	"enigma/alphabet"
)

// fullTurn is the countdown a rotor re-arms to after its notch fires.
const fullTurn = alphabet.Size

// Rotor is a wired wheel. Stepping rotates its wiring table one contact, and
// every fullTurn steps past its turnover letter it reports that the notch fired.
//
// A Rotor is a plain value with no references; copying it snapshots its state.
type Rotor struct {
	wiring  [alphabet.Size]alphabet.Symbol
	inverse [alphabet.Size]alphabet.Symbol

	// shift is the total rotation applied to the tables, ring offset
	// included, modulo the alphabet size.
	shift     int
	position  alphabet.Symbol
	countdown int
	stepped   bool
}

// NewRotor builds a rotor from its wiring, given as the image of A through Z.
func NewRotor(wiring string) (*Rotor, error) {
	table, problems := parseTable(wiring, nil)
	if err := finish("rotor wiring", problems); err != nil {
		return nil, err
	}
	r := &Rotor{wiring: table, countdown: fullTurn}
	r.syncInverse()
	return r, nil
}

func (r *Rotor) syncInverse() {
	for i, out := range r.wiring {
		r.inverse[out] = alphabet.Symbol(i)
	}
}

// rotate moves each entry of the wiring table one place towards A.
func (r *Rotor) rotate() {
	first := r.wiring[0]
	copy(r.wiring[:], r.wiring[1:])
	r.wiring[alphabet.Size-1] = first
	r.syncInverse()
	r.shift = (r.shift + 1) % alphabet.Size
}

// SetTurnoverNotch arms the countdown so the notch fires on the step that
// brings letter into the window.
func (r *Rotor) SetTurnoverNotch(letter rune) error {
	notch, err := letterFor("rotor turnover", "notch", letter)
	if err != nil {
		return err
	}
	r.countdown = int(notch) - int(r.position)
	if r.countdown <= 0 {
		r.countdown += fullTurn
	}
	return nil
}

// SetRingOffset shifts the wiring against the alphabet ring. It must be
// called before SetInitialPosition and before the rotor first steps.
func (r *Rotor) SetRingOffset(letter rune) error {
	ring, err := letterFor("rotor ring", "ring setting", letter)
	if err != nil {
		return err
	}
	if r.stepped {
		return configError("rotor ring", "ring setting %c applied after the rotor has stepped", letter)
	}
	for i := 0; i < alphabet.Size-int(ring); i++ {
		r.rotate()
	}
	return nil
}

// SetInitialPosition steps the rotor until letter shows in the window. The
// rotor is stepped on its own, so its notch never moves a neighbour.
func (r *Rotor) SetInitialPosition(letter rune) error {
	pos, err := letterFor("rotor position", "initial position", letter)
	if err != nil {
		return err
	}
	for i := 0; i < int(pos); i++ {
		r.Step()
	}
	return nil
}

// Step advances the rotor one position and reports whether its notch fired,
// in which case the rotor to its left must step as well.
func (r *Rotor) Step() bool {
	r.rotate()
	r.position = r.position.Add(1)
	r.stepped = true

	r.countdown--
	if r.countdown == 0 {
		r.countdown = fullTurn
		return true
	}
	return false
}

// Substitute passes s through the rotor, right to left when inverse is false
// and left to right after the reflector when it is true.
func (r *Rotor) Substitute(s alphabet.Symbol, inverse bool) alphabet.Symbol {
	if inverse {
		return r.inverse[s.Add(r.shift)]
	}
	return r.wiring[s].Add(-r.shift)
}

// Wiring returns the current forward table.
func (r *Rotor) Wiring() [alphabet.Size]alphabet.Symbol {
	return r.wiring
}

// InverseWiring returns the current inverse table.
func (r *Rotor) InverseWiring() [alphabet.Size]alphabet.Symbol {
	return r.inverse
}

// Position returns the letter showing in the rotor's window.
func (r *Rotor) Position() alphabet.Symbol {
	return r.position
}

// Countdown returns the number of steps left before the notch fires.
func (r *Rotor) Countdown() int {
	return r.countdown
}

// Cascade is a chain of rotors ordered right to left, addressed by index.
type Cascade []*Rotor

// Step steps rotor i, carrying a fired notch one rotor to the left. The
// neighbour's own notch may carry further.
func (c Cascade) Step(i int) {
	if c[i].Step() && i+1 < len(c) {
		c.Step(i + 1)
	}
}
