// Package bfs walks a core.Graph ring by ring from a start valve and
// records tunnel-hop depth, parent links and dequeue order.
//
// What
//
//   - Depth[v] is the number of tunnels between start and v.
//   - Parent[v] is the valve v was first discovered from; PathTo follows it.
//   - OnEnqueue sees a valve as it is discovered; OnVisit sees it as it is
//     dequeued and may stop the walk by returning an error.
//   - MaxDepth > 0 caps discovery depth; 0 leaves it uncapped.
//   - WithTargets ends the walk once each listed valve has been dequeued.
//
// Why
//
//   - Every tunnel costs one minute, so BFS depth is exactly travel time.
//   - The distance package uses it as the alternative oracle strategy and
//     to cross-check the Dijkstra relaxation.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Valves|, E = |Tunnels|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil, ErrStartValveNotFound for bad inputs.
//   - ErrOptionViolation for a negative MaxDepth.
//   - ErrNeighbors when a neighbor lookup fails.
//   - OnVisit errors, wrapped with the valve ID.
package bfs
