// File: methods_valves.go
// Role: Valve lifecycle & queries.
//
// Determinism:
//   - Valves() and Useful() return IDs sorted lexicographically ascending
//     (Useful keeps the start valve first).
//
// Concurrency:
//   - Catalog protected by mu; queries take the read lock.
package core

import (
	"fmt"
	"sort"
)

// AddValve registers a valve with the given flow rate.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyValveID) and flow ≥ 0 (ErrNegativeFlow).
//   - Stage 2: Under the write lock, reject duplicates (ErrDuplicateValve).
//   - Stage 3: Register the Valve and bootstrap its (empty) neighbor set.
//
// Unlike a generic vertex insert this is not idempotent: a second
// registration with the same ID almost always means malformed input, and
// silently keeping one of two flow rates would corrupt every score.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddValve(id string, flow int) error {
	if id == "" {
		return ErrEmptyValveID
	}
	if flow < 0 {
		return fmt.Errorf("%w: valve %q flow=%d", ErrNegativeFlow, id, flow)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.valves[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateValve, id)
	}
	g.valves[id] = &Valve{ID: id, Flow: flow}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasValve reports whether the valve ID exists (empty ID ⇒ false).
func (g *Graph) HasValve(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.valves[id]

	return ok
}

// FlowRate returns the flow rate of the valve.
//
// Errors:
//   - ErrUnknownValve: if id is not registered.
func (g *Graph) FlowRate(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.valves[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, id)
	}

	return v.Flow, nil
}

// Valve returns a copy of the registered Valve.
func (g *Graph) Valve(id string) (Valve, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.valves[id]
	if !ok {
		return Valve{}, fmt.Errorf("%w: %q", ErrUnknownValve, id)
	}

	return *v, nil
}

// Valves returns all valve IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Valves() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.valves))
	for id := range g.valves {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// ValveCount returns |V|.
func (g *Graph) ValveCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.valves)
}

// Useful returns the valves worth scheduling: start first, followed by
// every other valve with Flow > 0 in ascending ID order. The start valve
// appears exactly once even when its own flow rate is positive.
//
// Errors:
//   - ErrUnknownValve: if start is not registered.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Useful(start string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.valves[start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownValve, start)
	}

	rest := make([]string, 0, len(g.valves))
	for id, v := range g.valves {
		if id != start && v.Flow > 0 {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)

	return append([]string{start}, rest...), nil
}
