package dfs

import (
	"sort"

	"github.com/katalvlaran/volcano/core"
)

// Components splits g into its connected parts. Each part is sorted and
// parts are ordered by their smallest ID, so the result is deterministic.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.ValveCount())
	var out [][]string
	for _, id := range g.Valves() {
		if seen[id] {
			continue
		}
		res, err := DFS(g, id)
		if err != nil {
			return nil, err
		}
		part := make([]string, 0, len(res.Visited))
		for v := range res.Visited {
			seen[v] = true
			part = append(part, v)
		}
		sort.Strings(part)
		out = append(out, part)
	}

	return out, nil
}

// Unreachable lists, sorted, the valves of g that no tunnel path joins to
// start.
func Unreachable(g *core.Graph, start string) ([]string, error) {
	res, err := DFS(g, start)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, id := range g.Valves() {
		if !res.Visited[id] {
			out = append(out, id)
		}
	}

	return out, nil
}
