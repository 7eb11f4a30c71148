package distance

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for Table construction and lookup.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed to Build.
	ErrNilGraph = errors.New("distance: graph is nil")

	// ErrUnreachable indicates two useful valves are not connected.
	ErrUnreachable = errors.New("distance: valve pair unreachable")

	// ErrBadStrategy indicates an unknown strategy name.
	ErrBadStrategy = errors.New("distance: unknown strategy")
)

// Strategy selects the shortest-path routine used to fill the Table.
type Strategy int

const (
	// Dijkstra runs one label-setting relaxation per useful source.
	Dijkstra Strategy = iota

	// BFS runs one breadth-first walk per useful source.
	BFS

	// FloydWarshall closes the whole graph at once and extracts useful rows.
	FloydWarshall
)

var strategyNames = [...]string{
	Dijkstra:      "dijkstra",
	BFS:           "bfs",
	FloydWarshall: "floyd-warshall",
}

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadStrategy, name)
}

// Options configures Build.
type Options struct {
	Strategy Strategy
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithStrategy selects the shortest-path routine.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns Options with the Dijkstra strategy.
func DefaultOptions() Options {
	return Options{Strategy: Dijkstra}
}
