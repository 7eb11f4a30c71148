package distance

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/volcano/core"
)

// Table is the read-only travel-time matrix between useful valves.
//
// ids[i] is the valve interned as index i; ids[0] is the start valve.
// d[i*n+j] is the tunnel count from ids[i] to ids[j].
type Table struct {
	ids   []string
	index map[string]int
	n     int
	d     []int
}

// newTable allocates an n×n table for the given interned IDs.
func newTable(ids []string) *Table {
	t := &Table{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		n:     len(ids),
		d:     make([]int, len(ids)*len(ids)),
	}
	for i, id := range ids {
		t.index[id] = i
	}

	return t
}

// Len returns the number of interned valves.
func (t *Table) Len() int { return t.n }

// Start returns the index of the start valve (always 0).
func (t *Table) Start() int { return 0 }

// IDs returns a copy of the interned valve IDs in index order.
func (t *Table) IDs() []string {
	return append([]string(nil), t.ids...)
}

// ID returns the valve ID interned at index i.
func (t *Table) ID(i int) string { return t.ids[i] }

// Index returns the interned index of id.
func (t *Table) Index(id string) (int, bool) {
	i, ok := t.index[id]

	return i, ok
}

// At returns the travel time between interned indices i and j.
// Indices come from the Table itself, so an out-of-range index is a
// programming error and panics.
func (t *Table) At(i, j int) int {
	return t.d[i*t.n+j]
}

// Between returns the travel time between two useful valves by ID.
//
// Errors:
//   - core.ErrUnknownValve if either ID is not part of the Table.
func (t *Table) Between(a, b string) (int, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a useful valve", core.ErrUnknownValve, a)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a useful valve", core.ErrUnknownValve, b)
	}

	return t.At(i, j), nil
}

// String renders the table as an aligned grid with ID headers.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString("   ")
	for _, id := range t.ids {
		fmt.Fprintf(&b, " %3s", id)
	}
	for i, id := range t.ids {
		fmt.Fprintf(&b, "\n%3s", id)
		for j := 0; j < t.n; j++ {
			fmt.Fprintf(&b, " %3d", t.At(i, j))
		}
	}

	return b.String()
}
