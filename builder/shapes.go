package builder

import (
	"fmt"

	"github.com/katalvlaran/volcano/core"
)

// Minimum sizes per shape.
const (
	minPathValves   = 2
	minCycleValves  = 3
	minGridValves   = 2
	minRandomValves = 2
)

// Path links n valves in a single corridor 0-1-...-(n-1). n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathValves {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathValves, ErrTooFewValves)
		}
		if err := addValves(g, cfg, n); err != nil {
			return fmt.Errorf("Path: %w", err)
		}
		for i := 1; i < n; i++ {
			if err := join(g, cfg, i-1, i); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle closes n valves into a ring. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleValves {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleValves, ErrTooFewValves)
		}
		if err := addValves(g, cfg, n); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		for i := 0; i < n; i++ {
			if err := join(g, cfg, i, (i+1)%n); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Grid lays out rows×cols valves in row-major order with 4-neighborhood
// tunnels. At least two valves overall.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < minGridValves {
			return fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrTooFewValves)
		}
		if err := addValves(g, cfg, rows*cols); err != nil {
			return fmt.Errorf("Grid: %w", err)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := join(g, cfg, i, i+1); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := join(g, cfg, i, i+cols); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// Random builds a connected cave: a random recursive tree (valve i joins a
// uniformly chosen earlier valve) plus every other pair independently with
// probability p. Requires WithSeed or WithRand. n ≥ 2, 0 ≤ p ≤ 1.
func Random(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomValves {
			return fmt.Errorf("Random: n=%d < min=%d: %w", n, minRandomValves, ErrTooFewValves)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("Random: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("Random: %w", ErrNeedRandSource)
		}
		if err := addValves(g, cfg, n); err != nil {
			return fmt.Errorf("Random: %w", err)
		}

		for i := 1; i < n; i++ {
			if err := join(g, cfg, cfg.rng.Intn(i), i); err != nil {
				return fmt.Errorf("Random: %w", err)
			}
		}
		// Stable trial order: i asc, j asc; existing tunnels are skipped
		// without consuming a draw.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if g.HasTunnel(cfg.idFn(i), cfg.idFn(j)) {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := join(g, cfg, i, j); err != nil {
						return fmt.Errorf("Random: %w", err)
					}
				}
			}
		}

		return nil
	}
}
