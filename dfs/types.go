package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartValveNotFound indicates that the start valve does not exist.
	ErrStartValveNotFound = errors.New("dfs: start valve not found")
)

// Option mutates DFSOptions.
type Option func(*DFSOptions)

// DFSOptions tunes a walk. Hooks and filter run inline, so the walk stays
// O(V+E) only while they are O(1).
type DFSOptions struct {
	// Ctx is polled once per visited valve.
	Ctx context.Context

	// OnVisit runs when a valve is first reached. An error stops the walk.
	OnVisit func(id string) error

	// OnExit runs once every tunnel out of a valve is done, just before the
	// valve joins Order.
	OnExit func(id string) error

	// MaxDepth caps recursion; 0 visits the start only and -1 is unbounded.
	MaxDepth int

	// FilterNeighbor vetoes a neighbor by returning false.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns Background context, no hooks, no depth limit and
// no neighbor filter.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for the walk. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips every neighbor for which fn returns false and
// counts it in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// DFSResult captures the outcome of a depth-first walk.
type DFSResult struct {
	// Order records valves in the sequence they finished (post-order).
	Order []string

	// Depth maps each valve ID to its depth in the DFS tree. This is not a
	// shortest distance; use bfs or dijkstra for that.
	Depth map[string]int

	// Parent maps each valve ID to the valve it was discovered from.
	// The start valve has no entry.
	Parent map[string]string

	// Visited flags which valves were reached.
	Visited map[string]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
