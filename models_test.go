package enigma

import (
	"errors"
	"testing"
)

func TestRotorModels(t *testing.T) {
	tests := []struct {
		name      string
		model     RotorModel
		countdown int
	}{
		{"I", RotorI, 17},
		{"ii", RotorII, 5},
		{" III ", RotorIII, 22},
		{"IV", RotorIV, 10},
		{"V", RotorV, 26},
	}
	for _, tt := range tests {
		m, err := ParseRotorModel(tt.name)
		if err != nil {
			t.Fatalf("ParseRotorModel(%q): %v", tt.name, err)
		}
		if m != tt.model {
			t.Fatalf("ParseRotorModel(%q) = %v, want %v", tt.name, m, tt.model)
		}
		r, err := m.New()
		if err != nil {
			t.Fatalf("%v.New(): %v", m, err)
		}
		if r.Countdown() != tt.countdown {
			t.Errorf("rotor %v countdown = %d, want %d", m, r.Countdown(), tt.countdown)
		}
	}
}

func TestParseModelsRejectUnknownNames(t *testing.T) {
	var cfgErr *ConfigurationError
	if _, err := ParseRotorModel("VI"); !errors.As(err, &cfgErr) {
		t.Fatalf("ParseRotorModel(VI) error = %v", err)
	}
	if _, err := ParseReflectorModel("D"); !errors.As(err, &cfgErr) {
		t.Fatalf("ParseReflectorModel(D) error = %v", err)
	}
	if _, err := RotorModel(0).New(); !errors.As(err, &cfgErr) {
		t.Fatalf("RotorModel(0).New() error = %v", err)
	}
}

func TestParseReflectorModel(t *testing.T) {
	for _, name := range []string{"A", "b", "C"} {
		m, err := ParseReflectorModel(name)
		if err != nil {
			t.Fatalf("ParseReflectorModel(%q): %v", name, err)
		}
		if _, err := m.New(); err != nil {
			t.Fatalf("%v.New(): %v", m, err)
		}
	}
}
