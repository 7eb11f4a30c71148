// Package search finds the valve-opening schedule that releases the most
// pressure before a shared time budget runs out, for one or more actors.
//
// What
//
//   - Actors start together at the start valve at minute 0. Each has its own
//     clock and position; moving costs Table.At(from, to) minutes and
//     opening a valve costs one more.
//   - A valve opened at minute t releases Flow × (limit − t).
//   - Actors interact only through the shared set of unopened valves.
//
// How
//
//	The engine runs an explicit depth-first search over a LIFO stack of
//	actions, never the call stack:
//
//	  Explore(actor, valve) - commit actor to open valve next; push a
//	                          Backtrack marker, then one Explore per
//	                          (actor, still-unopened valve) pair that is
//	                          still feasible. No such pair ⇒ leaf; score it.
//	  Backtrack             - undo the most recent commitment.
//
//	The stack starts with a Backtrack sentinel followed by every feasible
//	first move. The search ends when the stack is empty.
//
// Feasibility
//
//	CanOpen(elapsed, travel, limit) ⇔ elapsed + travel ≤ limit − 2.
//	A valve that finishes opening at minute limit−1 or later releases
//	nothing, so such moves are never explored.
//
// Options
//
//   - WithActors(n):     number of actors, 1..MaxActors (default 1).
//   - WithTimeLimit(t):  budget in minutes, ≥ 0 (default 30).
//   - WithUpperBound():  prune a node when its release plus an optimistic
//     estimate of what remains cannot beat the incumbent. The estimate
//     lets every unopened valve finish as early as the closest actor could
//     manage alone, so it never underestimates and the maximum is unchanged.
//   - WithWorkers(n):    split the first moves across n goroutines, each
//     with its own schedule and unopened set; results are max-reduced.
//   - WithLogger(l):     logrus logger for run and incumbent messages.
//   - WithOnLeaf(fn):    observe every leaf schedule and its release.
//
// Complexity
//
//	Exponential in actors × useful valves; meant for caves with at most a
//	few dozen useful valves and a handful of actors.
//
// Errors
//
//   - ErrNilGraph, ErrNilTable      missing inputs.
//   - ErrBadActors, ErrBadTimeLimit, ErrBadWorkers  invalid options.
//   - core.ErrUnknownValve          table valve missing from the graph.
//   - ctx.Err()                     cancellation (checked every 4096 actions).
package search
