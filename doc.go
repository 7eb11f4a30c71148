// Package volcano finds the largest total pressure a team of actors can
// release by opening valves in a cave before the time runs out.
//
// What is in the box?
//
//	parse/     - read a cave scan into a core.Graph
//	core/      - thread-safe Graph of valves (with flow rates) and tunnels
//	bfs/       - breadth-first walks (unit-weight shortest paths)
//	dijkstra/  - label-setting shortest paths with early stop on targets
//	dfs/       - depth-first walks, connected components, reachability
//	distance/  - dense travel-time table between the valves worth opening
//	search/    - explicit-stack depth-first search over opening schedules
//	builder/   - reproducible synthetic caves and scan writer
//	config/    - YAML run configuration (scenarios, tuning, log level)
//	cmd/volcano - cobra CLI: solve, distances, generate
//
// The pipeline is always the same:
//
//	g, _ := parse.NewParser().Parse(r)
//	tbl, _ := distance.Build(g, "AA")
//	res, _ := search.MaximumRelease(ctx, g, tbl, search.WithActors(2), search.WithTimeLimit(26))
//	fmt.Println(res.Release, res.Schedule)
//
// Travel costs one minute per tunnel, opening costs one minute, and a valve
// opened at minute t releases flow × (limit − t). Every actor starts at the
// start valve at minute 0; the search is exhaustive (optionally pruned by an
// admissible bound), so the result is the true optimum.
package volcano
