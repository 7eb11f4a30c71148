package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/volcano/core"
)

// ErrNeighbors wraps a failed neighbor lookup.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// frontier is one queued valve.
type frontier struct {
	id    string
	depth int
}

// walker is the mutable state of one walk. queue[head:] is still pending.
type walker struct {
	g         *core.Graph
	o         BFSOptions
	queue     []frontier
	head      int
	seen      map[string]bool
	remaining map[string]struct{} // targets not yet dequeued
	res       *BFSResult
}

// BFS walks g outward from startID, one tunnel ring at a time.
// The partial result is returned alongside any hook or cancellation error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasValve(startID) {
		return nil, ErrStartValveNotFound
	}

	n := g.ValveCount()
	w := &walker{
		g:     g,
		o:     o,
		queue: make([]frontier, 0, n),
		seen:  make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if len(o.Targets) > 0 {
		w.remaining = make(map[string]struct{}, len(o.Targets))
		for _, id := range o.Targets {
			w.remaining[id] = struct{}{}
		}
	}

	w.push(startID, 0, "")

	return w.res, w.drain()
}

// push records id at depth d under parent and queues it.
func (w *walker) push(id string, d int, parent string) {
	w.seen[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.o.OnEnqueue(id, d)
	w.queue = append(w.queue, frontier{id: id, depth: d})
}

// drain pops the queue in FIFO order. It stops early on a hook error,
// cancellation, or once the last target has been dequeued.
func (w *walker) drain() error {
	for w.head < len(w.queue) {
		if err := w.o.Ctx.Err(); err != nil {
			return err
		}

		cur := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, cur.id)
		delete(w.remaining, cur.id)
		if err := w.o.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", cur.id, err)
		}
		if w.remaining != nil && len(w.remaining) == 0 {
			return nil
		}
		if w.o.MaxDepth > 0 && cur.depth >= w.o.MaxDepth {
			continue
		}
		if err := w.expand(cur); err != nil {
			return err
		}
	}

	return nil
}

// expand queues the unseen neighbors of cur one level deeper.
func (w *walker) expand(cur frontier) error {
	nbrs, err := w.g.NeighborIDs(cur.id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, cur.id, err)
	}
	for _, v := range nbrs {
		if !w.seen[v] {
			w.push(v, cur.depth+1, cur.id)
		}
	}

	return nil
}
