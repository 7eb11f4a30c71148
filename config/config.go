package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/volcano/distance"
	"github.com/katalvlaran/volcano/search"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Scenario is one question asked of the cave.
type Scenario struct {
	Name    string `yaml:"name"`
	Actors  int    `yaml:"actors"`
	Minutes int    `yaml:"minutes"`
}

// Config is the full run configuration.
// All top-level keys must be listed here to satisfy KnownFields(true).
type Config struct {
	Start     string     `yaml:"start"`
	Workers   int        `yaml:"workers"` // 0 = sequential engine
	Bound     bool       `yaml:"bound"`
	Strategy  string     `yaml:"strategy"`
	LogLevel  string     `yaml:"log_level"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Default returns the two reference scenarios from AA with the exhaustive,
// sequential, Dijkstra-backed search.
func Default() Config {
	return Config{
		Start:    "AA",
		Strategy: distance.Dijkstra.String(),
		LogLevel: logrus.InfoLevel.String(),
		Scenarios: []Scenario{
			{Name: "alone", Actors: 1, Minutes: 30},
			{Name: "with-elephant", Actors: 2, Minutes: 26},
		},
	}
}

// Load reads and decodes the file at path. See Decode.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data))
}

// Decode parses YAML from r on top of Default, so omitted keys keep their
// default and a present "scenarios" list replaces the defaults entirely.
// An empty document yields Default. The result is validated.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and returns the first violation wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Start == "" {
		return fmt.Errorf("%w: start is empty", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers = %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := distance.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Scenarios))
	for i, sc := range c.Scenarios {
		switch {
		case sc.Name == "":
			return fmt.Errorf("%w: scenario %d has no name", ErrInvalidConfig, i)
		case sc.Actors < 1 || sc.Actors > search.MaxActors:
			return fmt.Errorf("%w: scenario %q: actors = %d (want 1..%d)",
				ErrInvalidConfig, sc.Name, sc.Actors, search.MaxActors)
		case sc.Minutes < 0:
			return fmt.Errorf("%w: scenario %q: minutes = %d", ErrInvalidConfig, sc.Name, sc.Minutes)
		}
		if _, dup := seen[sc.Name]; dup {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalidConfig, sc.Name)
		}
		seen[sc.Name] = struct{}{}
	}

	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// DistanceOptions translates the strategy into distance.Build options.
func (c Config) DistanceOptions() ([]distance.Option, error) {
	s, err := distance.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return []distance.Option{distance.WithStrategy(s)}, nil
}

// SearchOptions translates sc and the shared knobs into search options.
func (c Config) SearchOptions(sc Scenario, log logrus.FieldLogger) []search.Option {
	opts := []search.Option{
		search.WithActors(sc.Actors),
		search.WithTimeLimit(sc.Minutes),
		search.WithWorkers(c.Workers),
		search.WithLogger(log),
	}
	if c.Bound {
		opts = append(opts, search.WithUpperBound())
	}

	return opts
}
