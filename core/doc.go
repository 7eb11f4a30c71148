// Package core provides the thread-safe in-memory valve Graph that every
// other package reads from.
//
// The Graph G = (V,E) is a small undirected, unweighted network:
//
//   - Each vertex is a Valve with a non-negative flow rate
//     (pressure released per remaining minute once the valve is open).
//   - Each edge is a Tunnel joining two distinct valves; traversing a
//     tunnel costs exactly one minute.
//   - Adjacency is stored as nested sets: adjacency[a][b] = struct{}{},
//     mirrored for b → a.
//   - A single sync.RWMutex guards the catalog, so search workers may
//     read the same Graph concurrently once it has been built.
//
// Why use core.Graph?
//
//   - Deterministic iteration: Valves() and NeighborIDs() return sorted IDs.
//   - Strict references: tunnels may only join valves already present,
//     so every neighbor ID always resolves to a Valve.
//   - Useful(start) returns the reduced valve set (start + flow > 0)
//     that the distance and search packages operate on.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	AddValve(id string, flow int) error      // O(1)
//	AddTunnel(a, b string) error             // O(1), idempotent
//
//	// Query
//	HasValve(id string) bool                 // O(1)
//	FlowRate(id string) (int, error)         // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	Valves() []string                        // O(V·log V), sorted
//	Useful(start string) ([]string, error)   // O(V·log V), start first
//	Stats() Stats                            // O(V+E)
//
// Errors:
//
//	ErrEmptyValveID   - valve ID is the empty string.
//	ErrNegativeFlow   - flow rate below zero.
//	ErrDuplicateValve - AddValve called twice for the same ID.
//	ErrUnknownValve   - a referenced valve does not exist.
//	ErrLoopNotAllowed - tunnel from a valve to itself.
//
// Quick ASCII example (the canonical ten-valve cave):
//
//	JJ─II─AA─BB
//	      │   │
//	      DD─CC
//	      │
//	      EE─FF─GG─HH
package core
