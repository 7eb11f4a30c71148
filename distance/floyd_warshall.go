// Purpose:
//   - Dense APSP (Floyd–Warshall) over the whole valve graph with
//     deterministic loop order, used as the closure strategy.
//
// Contract:
//   - inf marks "no path"; the diagonal is 0 before the closure runs.

package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/volcano/core"
)

// inf is large enough to mean "no path" yet safe to add to itself.
const inf = math.MaxInt / 4

// fillClosure runs Floyd–Warshall over every valve and copies the rows and
// columns of the interned valves into t.
func (t *Table) fillClosure(g *core.Graph) error {
	all := g.Valves()
	n := len(all)
	pos := make(map[string]int, n)
	for i, id := range all {
		pos[id] = i
	}

	data := make([]int, n*n)
	for i := range data {
		data[i] = inf
	}
	for i, id := range all {
		data[i*n+i] = 0
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("distance: neighbors of %q: %w", id, err)
		}
		for _, nb := range nbrs {
			data[i*n+pos[nb]] = 1
		}
	}

	floydWarshallInPlace(data, n)

	for i, src := range t.ids {
		pi := pos[src]
		for j, dst := range t.ids {
			d := data[pi*n+pos[dst]]
			if d >= inf {
				return fmt.Errorf("%w: %q → %q", ErrUnreachable, src, dst)
			}
			t.d[i*t.n+j] = d
		}
	}

	return nil
}

// floydWarshallInPlace runs the APSP closure on a flat row-major n×n buffer.
// Loop order is fixed (k → i → j). Time O(n³), extra space O(1).
func floydWarshallInPlace(data []int, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik >= inf {
				continue // no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj >= inf {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
