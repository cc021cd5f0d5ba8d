package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"enigma"
	"enigma/alphabet"
	"enigma/config"
)

type options struct {
	rotors     string
	reflector  string
	positions  [3]int
	rings      [3]int
	plugboard  string
	configPath string
	debug      bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("enigma", flag.ContinueOnError)
	fs.SetOutput(output)
	opts := &options{}
	fs.StringVar(&opts.rotors, "rotors", "I,II,III", "Rotor selection, left to right (e.g., I,II,III)")
	fs.StringVar(&opts.reflector, "reflector", "B", "Reflector type (A, B, or C)")
	fs.IntVar(&opts.positions[0], "r1", 1, "Position of first rotor (1-26)")
	fs.IntVar(&opts.positions[1], "r2", 1, "Position of second rotor (1-26)")
	fs.IntVar(&opts.positions[2], "r3", 1, "Position of third rotor (1-26)")
	fs.IntVar(&opts.rings[0], "ring1", 1, "Ring setting of first rotor (1-26)")
	fs.IntVar(&opts.rings[1], "ring2", 1, "Ring setting of second rotor (1-26)")
	fs.IntVar(&opts.rings[2], "ring3", 1, "Ring setting of third rotor (1-26)")
	fs.StringVar(&opts.plugboard, "p", "", "Plugboard connections (e.g., AB CD EF)")
	fs.StringVar(&opts.configPath, "config", "", "YAML machine configuration; overrides the rotor, reflector and plugboard flags")
	fs.BoolVar(&opts.debug, "debug", false, "Trace every encoding stage to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// settingLetter converts a 1-26 flag value to its letter.
func settingLetter(name string, v int) (string, error) {
	if v < 1 || v > alphabet.Size {
		return "", fmt.Errorf("%s must be between 1 and %d", name, alphabet.Size)
	}
	return alphabet.Symbol(v - 1).String(), nil
}

func (o *options) machineConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.Load(o.configPath)
	}

	names := strings.Split(o.rotors, ",")
	if len(names) != 3 {
		return nil, errors.New("exactly three rotors must be specified")
	}
	cfg := &config.Config{Reflector: o.reflector}
	for i, name := range names {
		pos, err := settingLetter("rotor positions", o.positions[i])
		if err != nil {
			return nil, err
		}
		ring, err := settingLetter("ring settings", o.rings[i])
		if err != nil {
			return nil, err
		}
		cfg.Rotors = append(cfg.Rotors, config.Rotor{Model: name, Ring: ring, Position: pos})
	}
	if o.plugboard != "" {
		cfg.Plugboard = strings.Fields(o.plugboard)
	}
	return cfg, cfg.Validate()
}

// processIO encodes input line by line. Letters are upper-cased and
// enciphered; anything else is copied through without stepping the rotors.
func processIO(machine *enigma.Machine, reader io.Reader, writer io.Writer) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		var output strings.Builder
		for _, c := range strings.ToUpper(scanner.Text()) {
			s, ok := alphabet.FromRune(c)
			if !ok {
				output.WriteRune(c)
				continue
			}
			output.WriteRune(machine.EncodeSymbol(s).Rune())
		}
		if _, err := fmt.Fprintln(writer, output.String()); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	return scanner.Err()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := opts.machineConfig()
	if err != nil {
		logger.Error("invalid machine settings", "error", err)
		return 1
	}
	machine, err := cfg.Build(enigma.WithLogger(logger))
	if err != nil {
		logger.Error("could not build machine", "error", err)
		return 1
	}
	logger.Debug("machine ready", "window", machine.Window(), "plugboard", fmt.Sprint(cfg.Plugboard))

	if err := processIO(machine, stdin, stdout); err != nil {
		logger.Error("processing failed", "error", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
