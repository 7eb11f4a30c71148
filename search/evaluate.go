package search

import (
	"github.com/katalvlaran/volcano/core"
)

// CanOpen reports whether an actor at minute elapsed, travel minutes away
// from a valve, can still open it in time for it to release anything.
//
// Opening takes one minute after arrival, and a valve that finishes at
// minute limit−1 would still release for one minute, hence limit−2.
func CanOpen(elapsed, travel, limit int) bool {
	return elapsed+travel <= limit-2
}

// Release scores a schedule against g: the sum of Flow × (limit − Time)
// over every step. Steps may belong to any actor in any interleaving.
//
// Errors:
//   - core.ErrUnknownValve if a step names a valve g does not have.
func Release(g *core.Graph, s Schedule, limit int) (int, error) {
	total := 0
	for _, st := range s {
		flow, err := g.FlowRate(st.Valve)
		if err != nil {
			return 0, err
		}
		total += flow * (limit - st.Time)
	}

	return total, nil
}

// release is Release over interned steps and flows.
func release(path []step, flows []int, limit int) int {
	total := 0
	for _, st := range path {
		total += flows[st.valve] * (limit - st.time)
	}

	return total
}
