// Package builder generates synthetic caves for tests, benchmarks and the
// `volcano generate` command.
//
// A cave is produced by one shape Constructor (Path, Cycle, Grid, Random)
// under a resolved builderConfig:
//
//   - Valve IDs come from an IDFn; the default LetterIDFn yields the
//     scan alphabet ("AA", "AB", ..., "ZZ", "BAA", ...), so index 0 is the
//     conventional start "AA".
//   - Flow rates come from a FlowFn; index 0 always gets flow 0.
//   - Randomness only enters through an explicit *rand.Rand (WithSeed,
//     WithRand); the same seed and options always give the same cave.
//
// WriteScan renders any connected cave back into the scan format read by
// package parse, so generated caves feed the CLI unchanged.
//
// Errors:
//
//	ErrTooFewValves       - shape parameters below the minimum.
//	ErrInvalidProbability - probability outside [0,1].
//	ErrNeedRandSource     - a stochastic shape or flow without WithSeed/WithRand.
//	ErrIsolatedValve      - WriteScan met a valve with no tunnel.
//
// Option constructors (WithX) panic on meaningless arguments; constructors
// themselves never panic.
package builder
