// File: methods_tunnels.go
// Role: Tunnel insertion and neighborhood queries.
//
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
package core

import (
	"fmt"
	"sort"
)

// AddTunnel joins valves a and b with an undirected tunnel.
//
// Implementation:
//   - Stage 1: Reject self-loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, require both endpoints (ErrUnknownValve).
//   - Stage 3: Insert both directions; a repeated tunnel is a no-op.
//
// Input files list every tunnel from both ends, so idempotence is required
// for the parser to stay a straight line-by-line loop.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddTunnel(a, b string) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.valves[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownValve, a)
	}
	if _, ok := g.valves[b]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownValve, b)
	}
	if _, exists := g.adjacency[a][b]; exists {
		return nil
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.tunnels++

	return nil
}

// HasTunnel reports whether a and b are directly connected.
func (g *Graph) HasTunnel(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// NeighborIDs returns the valves one tunnel away from id, sorted ascending.
//
// Errors:
//   - ErrUnknownValve: if id is not registered.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValve, id)
	}
	out := make([]string, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// TunnelCount returns the number of distinct undirected tunnels.
func (g *Graph) TunnelCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.tunnels
}
