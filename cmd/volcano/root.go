package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/dfs"
	"github.com/katalvlaran/volcano/parse"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string // --config; empty means config.Default
	logLevel   string // --log; overrides log_level when set

	cfg config.Config
	log *logrus.Logger
}

// newRootCmd builds a fresh command tree so tests can execute it repeatedly.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "volcano",
		Short:         "Maximize pressure released by opening valves in a cave",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML run configuration (default: built-in scenarios)")
	root.PersistentFlags().StringVar(&a.logLevel, "log", "", "log level: trace, debug, info, warn, error")

	root.AddCommand(newSolveCmd(a), newDistancesCmd(a), newGenerateCmd(a))

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)
	a.cfg = cfg

	return nil
}

// loadCave parses the scan at path and warns about valves that start can
// never reach.
func (a *app) loadCave(path, start string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := parse.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	parts, err := dfs.Components(g)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	a.log.WithFields(logrus.Fields{
		"valves":     st.ValveCount,
		"tunnels":    st.TunnelCount,
		"useful":     st.UsefulCount,
		"flow":       st.TotalFlow,
		"components": len(parts),
	}).Info("cave loaded")

	if len(parts) > 1 && g.HasValve(start) {
		lost, err := dfs.Unreachable(g, start)
		if err != nil {
			return nil, err
		}
		a.log.WithField("valves", lost).Warn("valves unreachable from start")
	}

	return g, nil
}
