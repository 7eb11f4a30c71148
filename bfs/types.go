package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartValveNotFound is returned when the start ID is absent.
	ErrStartValveNotFound = errors.New("bfs: start valve not found")

	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation marks an Option that was given a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a walk. A bad value (such as a negative depth) is recorded
// and reported as ErrOptionViolation by BFS, never by the Option itself.
type Option func(*BFSOptions)

// BFSOptions gathers the hooks and limits of one walk.
type BFSOptions struct {
	// Ctx cancels the walk between dequeues.
	Ctx context.Context

	// OnEnqueue sees each valve and its depth when it joins the queue.
	OnEnqueue func(id string, depth int)

	// OnVisit sees each valve when it leaves the queue; an error stops the
	// walk and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds how deep neighbors are discovered. 0 means no bound.
	MaxDepth int

	// Targets, if non-empty, ends the walk as soon as every listed valve
	// has been visited. Depths of the remaining frontier are still final.
	Targets []string

	err error
}

// DefaultOptions walks the whole component under context.Background:
//   - no depth limit (MaxDepth == 0)
//   - no targets (walk the whole component)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext cancels the walk with ctx. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the enqueue hook. nil keeps the no-op.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit installs the visit hook. nil keeps the no-op.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovering valves deeper than d. 0 lifts the bound;
// a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: negative depth %d", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithTargets ends the walk once every listed valve has been visited.
func WithTargets(ids ...string) Option {
	return func(o *BFSOptions) {
		o.Targets = append(o.Targets[:0:0], ids...)
	}
}

// BFSResult is what a walk discovered. Depth is travel time in minutes,
// since every tunnel takes one; Parent links each valve to the one it was
// discovered from; Order is the visit sequence.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo follows Parent links back from dest and returns the route from
// the start to dest, both included.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: %q was not reached", dest)
	}
	path := make([]string, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
