// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewValves indicates a size parameter below the shape's minimum.
var ErrTooFewValves = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic shape or flow distribution used
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrIsolatedValve indicates a valve with no tunnel, which the scan grammar
// cannot express.
var ErrIsolatedValve = errors.New("builder: valve has no tunnel")
