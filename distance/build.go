package distance

import (
	"fmt"

	"github.com/katalvlaran/volcano/bfs"
	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/dijkstra"
)

// Build measures travel times between the useful valves of g reachable
// from start.
//
// Implementation:
//   - Stage 1: Validate the graph and collect g.Useful(start); start is index 0.
//   - Stage 2: Fill one row per useful source with the selected Strategy.
//   - Stage 3: Reject any pair left unreachable (ErrUnreachable).
//
// The cave is guaranteed connected, so a disconnected useful pair is a
// broken input and the whole run must stop rather than score around it.
func Build(g *core.Graph, start string, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids, err := g.Useful(start)
	if err != nil {
		return nil, err
	}
	t := newTable(ids)

	switch o.Strategy {
	case Dijkstra:
		err = t.fillRows(func(src string) (map[string]int, error) {
			dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithTargets(ids...))
			return dist, err
		})
	case BFS:
		err = t.fillRows(func(src string) (map[string]int, error) {
			res, err := bfs.BFS(g, src, bfs.WithTargets(ids...))
			if err != nil {
				return nil, err
			}
			return res.Depth, nil
		})
	case FloydWarshall:
		err = t.fillClosure(g)
	default:
		err = fmt.Errorf("%w: %v", ErrBadStrategy, o.Strategy)
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

// fillRows runs one single-source search per interned valve and copies the
// distances to every other interned valve into that valve's row.
func (t *Table) fillRows(run func(src string) (map[string]int, error)) error {
	for i, src := range t.ids {
		dist, err := run(src)
		if err != nil {
			return fmt.Errorf("distance: measuring from %q: %w", src, err)
		}
		row := t.d[i*t.n : (i+1)*t.n]
		for j, dst := range t.ids {
			d, ok := dist[dst]
			if !ok || d == dijkstra.Unreachable {
				return fmt.Errorf("%w: %q → %q", ErrUnreachable, src, dst)
			}
			row[j] = d
		}
	}

	return nil
}
