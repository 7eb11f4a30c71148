// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; shapes
// return sentinel errors. Later options override earlier ones.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a build by mutating a builderConfig before any valve
// is added.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn      IDFn
	flowFn    FlowFn
	rng       *rand.Rand
	flowsRand bool // flowFn draws from rng
}

// defaultFlow is the constant flow rate of every non-start valve unless a
// FlowFn is configured.
const defaultFlow = 1

// newBuilderConfig applies opts over deterministic defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:   LetterIDFn,
		flowFn: ConstantFlowFn(defaultFlow),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme overrides the valve ID generator. Panics if fn is nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for every random choice. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a private *rand.Rand for reproducible caves.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithFlowFn overrides the flow rate generator. Panics if fn is nil.
func WithFlowFn(fn FlowFn) Option {
	if fn == nil {
		panic("builder: WithFlowFn(nil)")
	}

	return func(c *builderConfig) {
		c.flowFn = fn
		c.flowsRand = false
	}
}

// WithSparseFlows makes each non-start valve useful with probability p,
// with a flow drawn uniformly from [1, max]; the rest get flow 0. Requires
// WithSeed or WithRand. Panics if p is outside [0,1] or max < 1.
func WithSparseFlows(p float64, max int) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithSparseFlows: p=%g not in [0,1]", p))
	}
	if max < 1 {
		panic(fmt.Sprintf("builder: WithSparseFlows: max=%d < 1", max))
	}

	return func(c *builderConfig) {
		c.flowFn = func(rng *rand.Rand) int {
			if rng.Float64() >= p {
				return 0
			}
			return 1 + rng.Intn(max)
		}
		c.flowsRand = true
	}
}
