// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// api.go - the public entry point and the shape constructors.
//
// Design contract:
//   - One orchestrator: Build(shape, opts...). Creates g, resolves cfg, runs shape.
//   - Determinism: same shape, options and seed ⇒ identical caves.
//   - Safety: shapes never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/volcano/core"
)

// Constructor applies one shape to an empty graph under cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new cave by running shape under the options.
//
// Errors:
//   - ErrNeedRandSource if a random flow distribution has no rng.
//   - whatever shape returns, wrapped with "builder: Build: %w".
func Build(shape Constructor, opts ...Option) (*core.Graph, error) {
	if shape == nil {
		return nil, fmt.Errorf("builder: Build: nil shape: %w", ErrTooFewValves)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.flowsRand && cfg.rng == nil {
		return nil, fmt.Errorf("builder: Build: random flows: %w", ErrNeedRandSource)
	}

	g := core.NewGraph()
	if err := shape(g, cfg); err != nil {
		return nil, fmt.Errorf("builder: Build: %w", err)
	}

	return g, nil
}

// addValves inserts n valves with IDs cfg.idFn(0..n-1); index 0 gets flow 0.
func addValves(g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		flow := 0
		if i > 0 {
			flow = cfg.flowFn(cfg.rng)
		}
		if err := g.AddValve(cfg.idFn(i), flow); err != nil {
			return fmt.Errorf("AddValve(%s): %w", cfg.idFn(i), err)
		}
	}

	return nil
}

// join adds the tunnel between indices i and j.
func join(g *core.Graph, cfg builderConfig, i, j int) error {
	a, b := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddTunnel(a, b); err != nil {
		return fmt.Errorf("AddTunnel(%s, %s): %w", a, b, err)
	}

	return nil
}
