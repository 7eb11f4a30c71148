package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/distance"
	"github.com/katalvlaran/volcano/search"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "AA", cfg.Start)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Equal(t, []config.Scenario{
		{Name: "alone", Actors: 1, Minutes: 30},
		{Name: "with-elephant", Actors: 2, Minutes: 26},
	}, cfg.Scenarios)
}

func TestDecode_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("empty document (-want +got):\n%s", diff)
	}
}

func TestDecode_Overrides(t *testing.T) {
	const doc = `
start: AA
workers: 4
bound: true
strategy: floyd-warshall
log_level: debug
scenarios:
  - name: trio
    actors: 3
    minutes: 20
`
	cfg, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	want := config.Config{
		Start:     "AA",
		Workers:   4,
		Bound:     true,
		Strategy:  "floyd-warshall",
		LogLevel:  "debug",
		Scenarios: []config.Scenario{{Name: "trio", Actors: 3, Minutes: 20}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("decoded config (-want +got):\n%s", diff)
	}
	assert.Equal(t, logrus.DebugLevel, cfg.Level())

	dopts, err := cfg.DistanceOptions()
	require.NoError(t, err)
	o := distance.DefaultOptions()
	for _, opt := range dopts {
		opt(&o)
	}
	assert.Equal(t, distance.FloydWarshall, o.Strategy)

	so := search.DefaultOptions()
	for _, opt := range cfg.SearchOptions(cfg.Scenarios[0], logrus.New()) {
		opt(&so)
	}
	assert.Equal(t, 3, so.Actors)
	assert.Equal(t, 20, so.TimeLimit)
	assert.Equal(t, 4, so.Workers)
	assert.True(t, so.UpperBound)
}

func TestDecode_PartialKeepsOtherDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "AA", cfg.Start)
	assert.Len(t, cfg.Scenarios, 2)
}

func TestDecode_UnknownKeyRejected(t *testing.T) {
	_, err := config.Decode(strings.NewReader("scenarios:\n  - name: x\n    actors: 1\n    minute: 30\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minute")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty start":        func(c *config.Config) { c.Start = "" },
		"negative workers":   func(c *config.Config) { c.Workers = -1 },
		"bad strategy":       func(c *config.Config) { c.Strategy = "astar" },
		"bad log level":      func(c *config.Config) { c.LogLevel = "loud" },
		"no scenarios":       func(c *config.Config) { c.Scenarios = nil },
		"unnamed scenario":   func(c *config.Config) { c.Scenarios[0].Name = "" },
		"zero actors":        func(c *config.Config) { c.Scenarios[0].Actors = 0 },
		"too many actors":    func(c *config.Config) { c.Scenarios[0].Actors = search.MaxActors + 1 },
		"negative minutes":   func(c *config.Config) { c.Scenarios[1].Minutes = -3 },
		"duplicate scenario": func(c *config.Config) { c.Scenarios[1].Name = c.Scenarios[0].Name },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volcano.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bound: true\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Bound)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("workers: -2\n"), 0o600))
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
