// types.go - options, sentinel errors and the Unreachable marker.
//
// Tunnels all cost one minute, yet the queue still orders by tentative
// distance: a popped valve is settled and may be reported at once.

package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for valves the search never reached.
const Unreachable = math.MaxInt

// Sentinel errors.
var (
	// ErrEmptySource indicates that the provided source valve ID is empty.
	ErrEmptySource = errors.New("dijkstra: source valve ID is empty")

	// ErrNilGraph rejects a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrValveNotFound reports a Source the graph does not contain.
	ErrValveNotFound = errors.New("dijkstra: source valve not found in graph")

	// ErrBadMaxDistance is the panic value of WithMaxDistance(<0).
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options is the resolved configuration of one Dijkstra call.
type Options struct {
	Source      string   // required, must exist in the graph
	ReturnPath  bool     // fill prev; otherwise prev is nil
	MaxDistance int      // valves farther than this stay Unreachable
	Targets     []string // empty settles every reachable valve
}

// Option mutates Options.
type Option func(*Options)

// Source names the valve distances are measured from. It is mandatory.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath asks for the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops relaxing past max hops. Negative max panics.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithTargets stops the search as soon as every listed valve is finalized.
// Targets that are unreachable simply leave the search running to exhaustion.
func WithTargets(ids ...string) Option {
	return func(o *Options) {
		o.Targets = append(o.Targets[:0:0], ids...)
	}
}

// DefaultOptions measures from source with no distance cap, no targets and
// no predecessor map. source is validated later, by Dijkstra.
func DefaultOptions(source string) Options {
	return Options{Source: source, MaxDistance: math.MaxInt}
}
