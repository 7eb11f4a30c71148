// dijkstra.go - the lazy-heap relaxation loop.
//
// A valve may sit in the heap several times; stale copies are dropped on pop.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/volcano/core"
)

// Dijkstra computes shortest tunnel-hop distances from Options.Source to
// every valve it settles.
//
// dist holds every valve of g, Unreachable where nothing was settled. prev
// is nil unless WithReturnPath was given; prev[v] is the valve v was reached
// from.
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrValveNotFound.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasValve(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrValveNotFound, cfg.Source)
	}

	valves := g.Valves()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int, len(valves)),
		visited: make(map[string]bool, len(valves)),
		pq:      make(nodePQ, 0, len(valves)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(valves))
	}
	if len(cfg.Targets) > 0 {
		r.pending = make(map[string]struct{}, len(cfg.Targets))
		for _, id := range cfg.Targets {
			r.pending[id] = struct{}{}
		}
	}

	r.init(valves)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner is the per-call state of one shortest-path run.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int      // tentative hops from Source
	prev    map[string]string   // nil unless ReturnPath
	visited map[string]bool     // settled
	pending map[string]struct{} // unsettled targets, nil without WithTargets
	pq      nodePQ              // lazy: stale entries are skipped on pop
}

// init sets every distance to Unreachable and pushes Source=0 into the heap.
func (r *runner) init(valves []string) {
	for _, v := range valves {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process settles valves in distance order until the heap drains, the
// next distance passes MaxDistance, or the last pending target settles.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if r.pending != nil {
			delete(r.pending, u)
			if len(r.pending) == 0 {
				return nil
			}
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax offers dist[u]+1 to every neighbor of u. u must be settled.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	newDist := r.dist[u] + 1
	if newDist > r.options.MaxDistance {
		return nil
	}
	for _, v := range neighbors {
		// strict improvement only
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry.
type nodeItem struct {
	id   string
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, ties broken by
// ID so settlement order is reproducible.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}

	return pq[i].dist < pq[j].dist
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
