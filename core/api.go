// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over a built Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Locking model is defined in types.go.

package core

// Stats produces a deterministic snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count valves, useful valves and total flow in one pass.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		ValveCount:  len(g.valves),
		TunnelCount: g.tunnels,
	}
	for _, v := range g.valves {
		if v.Flow > 0 {
			s.UsefulCount++
		}
		s.TotalFlow += v.Flow
	}

	return s
}
