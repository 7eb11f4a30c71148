// Package dijkstra provides label-setting single-source shortest paths over
// a core.Graph of valves.
//
// Overview:
//
//   - Each tunnel costs one minute; distances are minimum tunnel counts.
//   - A min-heap always expands the next-closest valve; once popped, its
//     distance is final.
//   - The walk covers the full graph, including zero-flow valves, which act
//     purely as transit nodes.
//
// Key features:
//
//   - WithTargets: stop as soon as every interesting valve is settled. The
//     distance package passes the useful-valve set here, so a search from
//     one end of a long corridor does not keep expanding past its last target.
//   - WithMaxDistance: abort exploration beyond a specified distance.
//   - WithReturnPath: return a predecessor map to rebuild each route.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Example:
//
//	dist, _, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("AA"),
//	    dijkstra.WithTargets("BB", "HH"),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist["HH"]) // 5 on the reference cave
package dijkstra
