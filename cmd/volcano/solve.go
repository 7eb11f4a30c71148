package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/distance"
	"github.com/katalvlaran/volcano/search"
)

type solveFlags struct {
	start    string
	strategy string
	workers  int
	bound    bool
	actors   int
	minutes  int
	schedule bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve INPUT",
		Short: "Print the maximum pressure released for each scenario",
		Long: `Parse the cave scan in INPUT and print, for each scenario, the maximum
pressure released. Without --actors or --minutes the scenarios come from
--config (or the built-in pair: 1 actor for 30 minutes, 2 actors for 26).
Either flag replaces them with a single scenario.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applySolveFlags(cmd, &a.cfg, f)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.solve(cmd, args[0], f.schedule)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.start, "start", "", "start valve (default from config: AA)")
	fl.StringVar(&f.strategy, "strategy", "", "shortest paths: dijkstra, bfs, floyd-warshall")
	fl.IntVar(&f.workers, "workers", 0, "goroutines for the search (0 or 1 = sequential)")
	fl.BoolVar(&f.bound, "bound", false, "prune with an optimistic upper bound")
	fl.IntVar(&f.actors, "actors", 1, "actors for a single ad-hoc scenario")
	fl.IntVar(&f.minutes, "minutes", 30, "minutes for a single ad-hoc scenario")
	fl.BoolVar(&f.schedule, "schedule", false, "also print the best schedule")

	return cmd
}

// applySolveFlags overrides cfg with every flag the user set explicitly.
func applySolveFlags(cmd *cobra.Command, cfg *config.Config, f solveFlags) {
	fl := cmd.Flags()
	if fl.Changed("start") {
		cfg.Start = f.start
	}
	if fl.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("bound") {
		cfg.Bound = f.bound
	}
	if fl.Changed("actors") || fl.Changed("minutes") {
		cfg.Scenarios = []config.Scenario{{Name: "cli", Actors: f.actors, Minutes: f.minutes}}
	}
}

func (a *app) solve(cmd *cobra.Command, path string, withSchedule bool) error {
	g, err := a.loadCave(path, a.cfg.Start)
	if err != nil {
		return err
	}
	dopts, err := a.cfg.DistanceOptions()
	if err != nil {
		return err
	}
	tbl, err := distance.Build(g, a.cfg.Start, dopts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, sc := range a.cfg.Scenarios {
		log := a.log.WithField("scenario", sc.Name)
		res, err := search.MaximumRelease(cmd.Context(), g, tbl, a.cfg.SearchOptions(sc, log)...)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		log.WithFields(logrus.Fields{
			"leaves":   res.Leaves,
			"explored": res.Explored,
			"pruned":   res.Pruned,
		}).Info("scenario solved")

		fmt.Fprintf(out, "Maximum pressure released over %d minutes with %d actor(s): %d\n",
			sc.Minutes, sc.Actors, res.Release)
		if withSchedule && len(res.Schedule) > 0 {
			for _, line := range strings.Split(res.Schedule.String(), "\n") {
				fmt.Fprintf(out, "  %s\n", line)
			}
		}
	}

	return nil
}
