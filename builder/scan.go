package builder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/volcano/core"
)

// WriteScan renders g in the scan format, one line per valve in ascending
// ID order with neighbors sorted:
//
//	Valve AA has flow rate=0; tunnels lead to valves BB, DD
//	Valve HH has flow rate=22; tunnel leads to valve GG
func WriteScan(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, id := range g.Valves() {
		flow, err := g.FlowRate(id)
		if err != nil {
			return err
		}
		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return err
		}
		switch len(nbs) {
		case 0:
			return fmt.Errorf("%w: %q", ErrIsolatedValve, id)
		case 1:
			fmt.Fprintf(bw, "Valve %s has flow rate=%d; tunnel leads to valve %s\n", id, flow, nbs[0])
		default:
			fmt.Fprintf(bw, "Valve %s has flow rate=%d; tunnels lead to valves %s\n", id, flow, strings.Join(nbs, ", "))
		}
	}

	return bw.Flush()
}

// ScanString is WriteScan into a string.
func ScanString(g *core.Graph) (string, error) {
	var b strings.Builder
	if err := WriteScan(&b, g); err != nil {
		return "", err
	}

	return b.String(), nil
}
