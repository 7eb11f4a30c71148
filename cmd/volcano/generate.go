package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcano/builder"
)

type generateFlags struct {
	shape   string
	valves  int
	rows    int
	cols    int
	density float64
	useful  float64
	maxFlow int
	seed    int64
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic cave scan to stdout",
		Long: `Generate a connected cave in the scan format accepted by "solve".
Shapes: path, cycle and random use --valves; grid uses --rows and --cols.
The start valve AA always has flow 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shape, err := f.constructor()
			if err != nil {
				return err
			}
			seed := f.seed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			a.log.WithField("seed", seed).Info("generating cave")

			g, err := builder.Build(shape, builder.WithSeed(seed), builder.WithSparseFlows(f.useful, f.maxFlow))
			if err != nil {
				return err
			}

			return builder.WriteScan(cmd.OutOrStdout(), g)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.shape, "shape", "random", "path, cycle, grid or random")
	fl.IntVar(&f.valves, "valves", 15, "number of valves (path, cycle, random)")
	fl.IntVar(&f.rows, "rows", 4, "grid rows")
	fl.IntVar(&f.cols, "cols", 4, "grid columns")
	fl.Float64Var(&f.density, "density", 0.1, "extra tunnel probability (random)")
	fl.Float64Var(&f.useful, "useful", 0.4, "probability that a valve has flow")
	fl.IntVar(&f.maxFlow, "max-flow", 25, "largest flow rate")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (default: time-based)")

	return cmd
}

// constructor validates the flags that option constructors would panic on
// and maps --shape to a builder shape.
func (f generateFlags) constructor() (builder.Constructor, error) {
	if f.useful < 0 || f.useful > 1 {
		return nil, fmt.Errorf("--useful %g: %w", f.useful, builder.ErrInvalidProbability)
	}
	if f.maxFlow < 1 {
		return nil, fmt.Errorf("--max-flow must be at least 1, got %d", f.maxFlow)
	}

	switch f.shape {
	case "path":
		return builder.Path(f.valves), nil
	case "cycle":
		return builder.Cycle(f.valves), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "random":
		return builder.Random(f.valves, f.density), nil
	default:
		return nil, fmt.Errorf("unknown shape %q (want path, cycle, grid or random)", f.shape)
	}
}
