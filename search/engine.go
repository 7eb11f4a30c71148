package search

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourbasic/bit"

	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/distance"
)

// actionKind tags an entry of the work stack.
type actionKind uint8

const (
	backtrack actionKind = iota
	explore
)

// action is one entry of the work stack. actor and valve are only
// meaningful for explore.
type action struct {
	kind  actionKind
	actor int
	valve int
}

// step is an interned Step.
type step struct {
	actor int
	time  int
	valve int
}

// actorState is an actor's position and clock.
type actorState struct {
	pos  int
	time int
}

// problem is the read-only input shared by every engine of one run.
type problem struct {
	table  *distance.Table
	flows  []int    // flows[i] is the flow rate of table.ID(i)
	closed *bit.Set // valves worth opening (flow > 0)
	actors int
	limit  int
	bound  bool
	log    logrus.FieldLogger
	onLeaf func(Schedule, int)
}

// engine holds the mutable state of one depth-first search.
type engine struct {
	*problem
	ctx context.Context

	stack    []action
	path     []step
	unopened *bit.Set

	best     int
	bestPath []step
	steps    int // sparse cancellation checks counter

	leaves, explored, pruned int
}

// MaximumRelease returns the schedule that releases the most pressure on g
// within the time budget, with travel times taken from table.
//
// Implementation:
//   - Stage 1: Apply options, validate inputs and intern flow rates.
//   - Stage 2: Seed the stack with a Backtrack sentinel and every feasible
//     (actor, valve) first move.
//   - Stage 3: Drain the stack, sequentially or split across workers.
//
// Complexity:
//   - Exponential in actors × useful valves.
func MaximumRelease(ctx context.Context, g *core.Graph, table *distance.Table, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if table == nil {
		return Result{}, ErrNilTable
	}

	p, err := newProblem(g, table, o)
	if err != nil {
		return Result{}, err
	}
	first := p.firstMoves()

	o.Logger.WithFields(logrus.Fields{
		"actors":  o.Actors,
		"minutes": o.TimeLimit,
		"valves":  p.closed.Size(),
		"moves":   len(first),
		"workers": o.Workers,
		"bound":   o.UpperBound,
	}).Debug("search: starting")

	if o.Workers > 1 && len(first) > 1 {
		return p.runParallel(ctx, first, o.Workers)
	}

	e := p.newEngine(ctx)
	e.stack = append(e.stack, action{kind: backtrack})
	e.stack = append(e.stack, first...)
	if err := e.run(); err != nil {
		return Result{}, err
	}

	return e.result(), nil
}

// newProblem interns flow rates by table index.
func newProblem(g *core.Graph, table *distance.Table, o Options) (*problem, error) {
	p := &problem{
		table:  table,
		flows:  make([]int, table.Len()),
		closed: new(bit.Set),
		actors: o.Actors,
		limit:  o.TimeLimit,
		bound:  o.UpperBound,
		log:    o.Logger,
		onLeaf: o.OnLeaf,
	}
	for i := 0; i < table.Len(); i++ {
		flow, err := g.FlowRate(table.ID(i))
		if err != nil {
			return nil, fmt.Errorf("search: table does not match graph: %w", err)
		}
		p.flows[i] = flow
		if flow > 0 {
			p.closed.Add(i)
		}
	}

	return p, nil
}

// firstMoves lists every feasible opening move from the start, valves in
// ascending index order, all actors per valve.
func (p *problem) firstMoves() []action {
	var moves []action
	start := p.table.Start()
	p.closed.Visit(func(v int) bool {
		if CanOpen(0, p.table.At(start, v), p.limit) {
			for a := 0; a < p.actors; a++ {
				moves = append(moves, action{kind: explore, actor: a, valve: v})
			}
		}
		return false
	})

	return moves
}

// newEngine returns an engine with a fresh schedule and a full unopened set.
func (p *problem) newEngine(ctx context.Context) *engine {
	n := p.table.Len()

	return &engine{
		problem:  p,
		ctx:      ctx,
		stack:    make([]action, 0, 4*n*p.actors),
		path:     make([]step, 0, n),
		unopened: new(bit.Set).Set(p.closed),
	}
}

// run drains the stack.
func (e *engine) run() error {
	for len(e.stack) > 0 {
		if e.cancelled() {
			return e.ctx.Err()
		}
		a := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		switch a.kind {
		case explore:
			e.explore(a.actor, a.valve)
		case backtrack:
			e.undo()
		}
	}

	return nil
}

// cancelled performs a rare context test (first action, then every 4096).
func (e *engine) cancelled() bool {
	check := e.steps&4095 == 0
	e.steps++

	return check && e.ctx.Err() != nil
}

// stateOf derives an actor's position and clock from its most recent step.
func (e *engine) stateOf(actor int) actorState {
	for i := len(e.path) - 1; i >= 0; i-- {
		if e.path[i].actor == actor {
			return actorState{pos: e.path[i].valve, time: e.path[i].time}
		}
	}

	return actorState{pos: e.table.Start(), time: 0}
}

// explore commits actor to open valve next, then queues every follow-up
// move or scores the schedule if none is left.
func (e *engine) explore(actor, valve int) {
	e.explored++
	from := e.stateOf(actor)
	done := from.time + e.table.At(from.pos, valve) + 1

	e.path = append(e.path, step{actor: actor, time: done, valve: valve})
	e.unopened.Delete(valve)
	e.stack = append(e.stack, action{kind: backtrack})

	if e.bound && e.hopeless() {
		e.pruned++
		return
	}

	queued := 0
	for a := 0; a < e.actors; a++ {
		st := e.stateOf(a)
		e.unopened.Visit(func(v int) bool {
			if CanOpen(st.time, e.table.At(st.pos, v), e.limit) {
				e.stack = append(e.stack, action{kind: explore, actor: a, valve: v})
				queued++
			}
			return false
		})
	}
	if queued == 0 {
		e.leaf()
	}
}

// undo pops the most recent commitment, if any, and reopens its valve.
func (e *engine) undo() {
	if len(e.path) == 0 {
		return
	}
	last := e.path[len(e.path)-1]
	e.path = e.path[:len(e.path)-1]
	e.unopened.Add(last.valve)
}

// leaf scores the current schedule and keeps it if it beats the incumbent.
func (e *engine) leaf() {
	e.leaves++
	r := release(e.path, e.flows, e.limit)
	if e.onLeaf != nil {
		e.onLeaf(e.schedule(e.path), r)
	}
	if r > e.best {
		e.best = r
		e.bestPath = append(e.bestPath[:0], e.path...)
		e.log.WithField("release", r).Debug("search: new incumbent")
	}
}

// hopeless reports whether the current node cannot beat the incumbent even
// if every unopened valve were opened by whichever actor could finish it
// first, ignoring that one actor cannot be in two places.
func (e *engine) hopeless() bool {
	var states [MaxActors]actorState
	for a := 0; a < e.actors; a++ {
		states[a] = e.stateOf(a)
	}

	optimistic := release(e.path, e.flows, e.limit)
	e.unopened.Visit(func(v int) bool {
		earliest := e.limit
		for a := 0; a < e.actors; a++ {
			if t := states[a].time + e.table.At(states[a].pos, v) + 1; t < earliest {
				earliest = t
			}
		}
		optimistic += e.flows[v] * (e.limit - earliest)
		return false
	})

	return optimistic <= e.best
}

// schedule converts interned steps to a Schedule.
func (e *engine) schedule(path []step) Schedule {
	out := make(Schedule, len(path))
	for i, st := range path {
		out[i] = Step{Actor: st.actor, Time: st.time, Valve: e.table.ID(st.valve)}
	}

	return out
}

// result packages the engine's counters and incumbent.
func (e *engine) result() Result {
	return Result{
		Release:  e.best,
		Schedule: e.schedule(e.bestPath),
		Leaves:   e.leaves,
		Explored: e.explored,
		Pruned:   e.pruned,
	}
}
