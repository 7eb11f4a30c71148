// Package distance builds the travel-time Table between the valves that
// matter: the start valve plus every valve with a positive flow rate.
//
// What
//
//   - Interns the useful valves to dense indices 0..n-1 (start is always 0).
//   - Stores the minimum tunnel count between every ordered pair in a flat
//     row-major n×n buffer, so lookups in the search hot loop are a single
//     multiply-add with no map access and no "valve not found" path.
//   - Walks the full graph while measuring, so zero-flow valves still serve
//     as transit nodes; they simply never get an index.
//
// Strategies
//
//   - Dijkstra (default): one label-setting run per useful source, stopping
//     as soon as every useful target is settled.
//   - BFS: one breadth-first walk per useful source, stopping the same way.
//   - FloydWarshall: dense all-pairs closure over every valve, then the
//     useful rows and columns are extracted. O(V³); kept as a cross-check.
//
// All three must agree; the tests hold them to it.
//
// Complexity (U = useful valves, V = valves, E = tunnels)
//
//   - Dijkstra: O(U · (V + E) log V)
//   - BFS:      O(U · (V + E))
//   - Floyd–Warshall: O(V³)
//   - Memory: O(U²) for the Table.
//
// Errors
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - core.ErrUnknownValve if the start valve is missing.
//   - ErrUnreachable    if some useful pair is disconnected.
//   - ErrBadStrategy    for an unknown strategy name.
package distance
