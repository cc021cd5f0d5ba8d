// Package config loads machine settings from YAML and assembles an
// enigma.Machine from them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"enigma"
	"enigma/alphabet"
)

// Rotor describes one rotor slot. Either Model or Wiring must be set.
type Rotor struct {
	Model    string `yaml:"model,omitempty"`
	Wiring   string `yaml:"wiring,omitempty"`
	Turnover string `yaml:"turnover,omitempty"`
	Ring     string `yaml:"ring,omitempty"`
	Position string `yaml:"position,omitempty"`
}

// Config is a complete machine setting.
type Config struct {
	Reflector       string   `yaml:"reflector,omitempty"`
	ReflectorWiring string   `yaml:"reflector_wiring,omitempty"`
	Rotors          []Rotor  `yaml:"rotors"`
	Plugboard       []string `yaml:"plugboard,omitempty"`
}

// Default returns rotors I, II, III under reflector B at ground setting.
func Default() *Config {
	return &Config{
		Reflector: enigma.ReflectorB.String(),
		Rotors: []Rotor{
			{Model: enigma.RotorI.String()},
			{Model: enigma.RotorII.String()},
			{Model: enigma.RotorIII.String()},
		},
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var problems *multierror.Error

	switch {
	case c.Reflector != "" && c.ReflectorWiring != "":
		problems = multierror.Append(problems, errors.New("reflector and reflector_wiring are mutually exclusive"))
	case c.Reflector == "" && c.ReflectorWiring == "":
		problems = multierror.Append(problems, errors.New("reflector is required"))
	case c.Reflector != "":
		if _, err := enigma.ParseReflectorModel(c.Reflector); err != nil {
			problems = multierror.Append(problems, err)
		}
	default:
		if _, err := enigma.NewReflector(strings.ToUpper(c.ReflectorWiring)); err != nil {
			problems = multierror.Append(problems, err)
		}
	}

	if len(c.Rotors) != 3 {
		problems = multierror.Append(problems, errors.New("exactly three rotors must be specified"))
	}
	for i, r := range c.Rotors {
		for _, err := range r.validate() {
			problems = multierror.Append(problems, fmt.Errorf("rotor %d: %w", i+1, err))
		}
	}

	used := make(map[alphabet.Symbol]bool)
	for _, p := range c.Plugboard {
		pairs, err := enigma.ParsePairs(p)
		if err != nil {
			problems = multierror.Append(problems, err)
			continue
		}
		for _, pair := range pairs {
			for _, s := range pair {
				if used[s] {
					problems = multierror.Append(problems, fmt.Errorf("letter %v is already connected", s))
				}
				used[s] = true
			}
		}
	}

	if problems.ErrorOrNil() == nil {
		return nil
	}
	problems.ErrorFormat = enigma.ListFormat
	return fmt.Errorf("invalid config: %w", problems)
}

func (r Rotor) validate() []error {
	var errs []error
	switch {
	case r.Model != "" && r.Wiring != "":
		errs = append(errs, errors.New("model and wiring are mutually exclusive"))
	case r.Model == "" && r.Wiring == "":
		errs = append(errs, errors.New("model or wiring is required"))
	case r.Model != "":
		if _, err := enigma.ParseRotorModel(r.Model); err != nil {
			errs = append(errs, err)
		}
		if r.Turnover != "" {
			errs = append(errs, errors.New("turnover only applies to a custom wiring"))
		}
	case r.Wiring != "":
		if _, err := enigma.NewRotor(strings.ToUpper(r.Wiring)); err != nil {
			errs = append(errs, err)
		}
	}
	letters := []struct{ name, value string }{
		{"turnover", r.Turnover},
		{"ring", r.Ring},
		{"position", r.Position},
	}
	for _, l := range letters {
		if _, err := optionalLetter(l.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", l.name, err))
		}
	}
	return errs
}

// optionalLetter returns the single letter in v, or 'A' when v is empty.
func optionalLetter(v string) (rune, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 'A', nil
	}
	r, size := utf8.DecodeRuneInString(v)
	if _, ok := alphabet.FromRune(r); !ok || size != len(v) {
		return 0, fmt.Errorf("%q is not a single letter", v)
	}
	return r, nil
}

// Build assembles a calibrated machine. Each rotor gets its turnover, then
// its ring setting, then its starting position.
func (c *Config) Build(opts ...enigma.Option) (*enigma.Machine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var rotors [3]*enigma.Rotor
	for i, rc := range c.Rotors {
		r, err := rc.build()
		if err != nil {
			return nil, fmt.Errorf("rotor %d: %w", i+1, err)
		}
		// Configuration lists rotors left to right; the machine wants them
		// right to left.
		rotors[len(rotors)-1-i] = r
	}

	reflector, err := c.reflector()
	if err != nil {
		return nil, err
	}

	var pairs []enigma.Pair
	for _, p := range c.Plugboard {
		ps, err := enigma.ParsePairs(p)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ps...)
	}

	return enigma.NewMachine(enigma.NewPlugboard(pairs...), rotors, reflector, opts...), nil
}

func (c *Config) reflector() (*enigma.Reflector, error) {
	if c.ReflectorWiring != "" {
		return enigma.NewReflector(strings.ToUpper(c.ReflectorWiring))
	}
	m, err := enigma.ParseReflectorModel(c.Reflector)
	if err != nil {
		return nil, err
	}
	return m.New()
}

func (r Rotor) build() (*enigma.Rotor, error) {
	var (
		rotor *enigma.Rotor
		err   error
	)
	if r.Model != "" {
		m, perr := enigma.ParseRotorModel(r.Model)
		if perr != nil {
			return nil, perr
		}
		rotor, err = m.New()
	} else {
		rotor, err = enigma.NewRotor(strings.ToUpper(r.Wiring))
		if err == nil && r.Turnover != "" {
			turnover, _ := optionalLetter(r.Turnover)
			err = rotor.SetTurnoverNotch(turnover)
		}
	}
	if err != nil {
		return nil, err
	}

	ring, _ := optionalLetter(r.Ring)
	if err := rotor.SetRingOffset(ring); err != nil {
		return nil, err
	}
	position, _ := optionalLetter(r.Position)
	if err := rotor.SetInitialPosition(position); err != nil {
		return nil, err
	}
	return rotor, nil
}
