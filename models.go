package enigma

import (
	"strings"
)

// RotorModel names one of the standard Wehrmacht rotors.
type RotorModel int

const (
	RotorI RotorModel = iota + 1
	RotorII
	RotorIII
	RotorIV
	RotorV
)

func (m RotorModel) String() string {
	switch m {
	case RotorI:
		return "I"
	case RotorII:
		return "II"
	case RotorIII:
		return "III"
	case RotorIV:
		return "IV"
	case RotorV:
		return "V"
	}
	return "RotorModel(?)"
}

// Wiring returns the model's wiring, the image of A through Z.
func (m RotorModel) Wiring() string {
	switch m {
	case RotorI:
		return "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	case RotorII:
		return "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	case RotorIII:
		return "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	case RotorIV:
		return "ESOVPZJAYQUIRHXLNFTGKDCMWB"
	case RotorV:
		return "VZBRGITYUPSDNHLXAWMJQOFECK"
	}
	return ""
}

// Turnover returns the window letter reached on the step that moves the
// left neighbour: the letter after the notch (Q, E, V, J, Z).
func (m RotorModel) Turnover() rune {
	switch m {
	case RotorI:
		return 'R'
	case RotorII:
		return 'F'
	case RotorIII:
		return 'W'
	case RotorIV:
		return 'K'
	case RotorV:
		return 'A'
	}
	return 0
}

// New returns a rotor with the model's wiring and turnover, at position A.
func (m RotorModel) New() (*Rotor, error) {
	if m.Wiring() == "" {
		return nil, configError("rotor model", "unknown model %d", int(m))
	}
	r, err := NewRotor(m.Wiring())
	if err != nil {
		return nil, err
	}
	if err := r.SetTurnoverNotch(m.Turnover()); err != nil {
		return nil, err
	}
	return r, nil
}

// ParseRotorModel looks up a rotor model by its Roman numeral.
func ParseRotorModel(name string) (RotorModel, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for m := RotorI; m <= RotorV; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, configError("rotor model", "invalid rotor type: %s", name)
}

// ReflectorModel names one of the standard reflectors.
type ReflectorModel int

const (
	ReflectorA ReflectorModel = iota + 1
	ReflectorB
	ReflectorC
)

func (m ReflectorModel) String() string {
	switch m {
	case ReflectorA:
		return "A"
	case ReflectorB:
		return "B"
	case ReflectorC:
		return "C"
	}
	return "ReflectorModel(?)"
}

// Wiring returns the model's reflection table.
func (m ReflectorModel) Wiring() string {
	switch m {
	case ReflectorA:
		return "EJMZALYXVBWFCRQUONTSPIKHGD"
	case ReflectorB:
		return "YRUHQSLDPXNGOKMIEBFZCWVJAT"
	case ReflectorC:
		return "FVPJIAOYEDRZXWGCTKUQSBNMHL"
	}
	return ""
}

// New returns a reflector with the model's wiring.
func (m ReflectorModel) New() (*Reflector, error) {
	if m.Wiring() == "" {
		return nil, configError("reflector model", "unknown model %d", int(m))
	}
	return NewReflector(m.Wiring())
}

// ParseReflectorModel looks up a reflector model by its letter.
func ParseReflectorModel(name string) (ReflectorModel, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for m := ReflectorA; m <= ReflectorC; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, configError("reflector model", "invalid reflector type: %s", name)
}
