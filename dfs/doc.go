// Package dfs implements depth-first search over a cave's tunnels.
//
// What:
//
//   - DFS(g, start, opts...): recursive walk from start with pre-order
//     and post-order hooks, depth limit, neighbor filter and cancellation.
//   - Components(g): the connected parts of the cave, each sorted, ordered
//     by their smallest valve ID.
//   - Unreachable(g, start): valves no tunnel path connects to start.
//
// Why:
//
//	The distance table only succeeds when every valve worth opening is
//	reachable from the start. Reporting disconnected parts up front turns a
//	bare "unreachable" error into a readable diagnosis, and flags dead
//	corridors that are harmless but usually a typo in the scan.
//
// Complexity:
//
//   - DFS:         Time O(V+E), Memory O(V) for the recursion and maps.
//   - Components:  Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrStartValveNotFound  start valve not in graph
//   - context.Canceled       walk canceled via context
//   - hook errors            propagated from OnVisit or OnExit
package dfs
