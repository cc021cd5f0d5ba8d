// Package enigma simulates a three-rotor Enigma cipher machine: plugboard,
// rotors with ring settings and turnover notches, and a reflector, including
// the middle rotor's double step.
package enigma

import (
	"context"
	"io"
	"log/slog"

	"enigma/alphabet"
)

// Rotor slots, counted from the right where the signal enters.
const (
	Right = iota
	Middle
	Left
)

// Machine is a configured Enigma. Every encoded letter steps the rotors, so a
// Machine is not safe for concurrent use.
type Machine struct {
	plugboard *Plugboard
	rotors    Cascade
	reflector *Reflector
	initial   [3]Rotor
	log       *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger traces every stage of every letter at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// NewMachine assembles a machine from calibrated components. The rotors are
// given right, middle, left and are owned by the machine from then on.
func NewMachine(plugboard *Plugboard, rotors [3]*Rotor, reflector *Reflector, opts ...Option) *Machine {
	m := &Machine{
		plugboard: plugboard,
		rotors:    Cascade(rotors[:]),
		reflector: reflector,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for i, r := range rotors {
		m.initial[i] = *r
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reset returns every rotor to the state it had when the machine was built.
func (m *Machine) Reset() {
	for i := range m.rotors {
		*m.rotors[i] = m.initial[i]
	}
}

// Rotor returns the rotor in slot i (Right, Middle or Left).
func (m *Machine) Rotor(i int) *Rotor {
	return m.rotors[i]
}

// Window returns the letters showing in the rotor windows, left to right.
func (m *Machine) Window() string {
	return alphabet.Format([]alphabet.Symbol{
		m.rotors[Left].Position(),
		m.rotors[Middle].Position(),
		m.rotors[Right].Position(),
	})
}

func (m *Machine) rotateRotors() {
	// The middle rotor's pawl engages its own notch and carries the left
	// rotor with it.
	if m.rotors[Middle].Countdown() == 1 && m.rotors[Left].Countdown() == 1 {
		m.rotors.Step(Middle)
	}
	m.rotors.Step(Right)
}

// EncodeSymbol steps the rotors and then enciphers s.
func (m *Machine) EncodeSymbol(s alphabet.Symbol) alphabet.Symbol {
	m.rotateRotors()
	trace := m.log.Enabled(context.Background(), slog.LevelDebug)
	if trace {
		m.log.Debug("keypress", "letter", s, "window", m.Window())
	}

	c := m.plugboard.Substitute(s)
	if trace {
		m.log.Debug("plugboard", "direction", "forward", "in", s, "out", c)
	}

	for i := Right; i <= Left; i++ {
		out := m.rotors[i].Substitute(c, false)
		if trace {
			m.log.Debug("rotor", "slot", i, "direction", "forward", "in", c, "out", out)
		}
		c = out
	}

	out := m.reflector.Substitute(c)
	if trace {
		m.log.Debug("reflector", "in", c, "out", out)
	}
	c = out

	for i := Left; i >= Right; i-- {
		out := m.rotors[i].Substitute(c, true)
		if trace {
			m.log.Debug("rotor", "slot", i, "direction", "inverse", "in", c, "out", out)
		}
		c = out
	}

	out = m.plugboard.Substitute(c)
	if trace {
		m.log.Debug("plugboard", "direction", "inverse", "in", c, "out", out)
	}
	return out
}

// EncodeSequence enciphers symbols in order, stepping the rotors before each.
func (m *Machine) EncodeSequence(symbols []alphabet.Symbol) []alphabet.Symbol {
	out := make([]alphabet.Symbol, len(symbols))
	for i, s := range symbols {
		out[i] = m.EncodeSymbol(s)
	}
	return out
}

// EncodeString enciphers a string of letters. Any other rune is rejected
// with an *alphabet.DomainError before the rotors move.
func (m *Machine) EncodeString(text string) (string, error) {
	symbols, err := alphabet.Parse(text)
	if err != nil {
		return "", err
	}
	return alphabet.Format(m.EncodeSequence(symbols)), nil
}
