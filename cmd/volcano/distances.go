package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcano/distance"
)

func newDistancesCmd(a *app) *cobra.Command {
	var start, strategy string

	cmd := &cobra.Command{
		Use:   "distances INPUT",
		Short: "Print travel minutes between the start and every valve worth opening",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("start") {
				a.cfg.Start = start
			}
			if cmd.Flags().Changed("strategy") {
				a.cfg.Strategy = strategy
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g, err := a.loadCave(args[0], a.cfg.Start)
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
			fmt.Fprintln(cmd.OutOrStdout(), tbl.String())

			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start valve (default from config: AA)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "shortest paths: dijkstra, bfs, floyd-warshall")

	return cmd
}
