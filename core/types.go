// Package core defines the Valve and Graph types, the sentinel errors of the
// graph model, and the NewGraph constructor.
//
// All exported methods take the Graph's RWMutex, so a fully built Graph can be
// shared read-only between goroutines.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyValveID indicates that a valve ID is the empty string.
	ErrEmptyValveID = errors.New("core: valve ID is empty")

	// ErrNegativeFlow indicates that a valve was given a negative flow rate.
	ErrNegativeFlow = errors.New("core: negative flow rate")

	// ErrDuplicateValve indicates that a valve ID was registered twice.
	ErrDuplicateValve = errors.New("core: duplicate valve")

	// ErrUnknownValve indicates an operation referenced a valve that does not exist.
	ErrUnknownValve = errors.New("core: valve not found")

	// ErrLoopNotAllowed indicates a tunnel from a valve back to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Valve is a vertex of the cave graph.
type Valve struct {
	// ID uniquely identifies this Valve within its Graph (e.g. "AA").
	ID string

	// Flow is the pressure released per minute once the valve is open.
	Flow int
}

// Graph is the valve network.
//
// mu guards valves and adjacency. Tunnels are undirected: every entry in
// adjacency[a][b] has a mirror in adjacency[b][a].
type Graph struct {
	mu sync.RWMutex

	valves    map[string]*Valve              // valve ID → Valve
	adjacency map[string]map[string]struct{} // valve ID → neighbor set
	tunnels   int                            // number of distinct undirected tunnels
}

// Stats is a read-only snapshot of a Graph's size.
type Stats struct {
	ValveCount  int // |V|
	TunnelCount int // |E|, each undirected tunnel counted once
	UsefulCount int // valves with Flow > 0
	TotalFlow   int // sum of all flow rates
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		valves:    make(map[string]*Valve),
		adjacency: make(map[string]map[string]struct{}),
	}
}
