package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/bfs"
	"github.com/katalvlaran/volcano/core"
)

// cave registers every valve named in tunnels (flow 0) and joins them.
func cave(t *testing.T, tunnels ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, tn := range tunnels {
		for _, id := range tn {
			if !g.HasValve(id) {
				require.NoError(t, g.AddValve(id, 0))
			}
		}
		require.NoError(t, g.AddTunnel(tn[0], tn[1]))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "AA")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "AA")
	require.ErrorIs(t, err, bfs.ErrStartValveNotFound)

	require.NoError(t, g.AddValve("AA", 0))
	_, err = bfs.BFS(g, "AA", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_LoneValve(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddValve("AA", 0))

	res, err := bfs.BFS(g, "AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA"}, res.Order)
	assert.Equal(t, map[string]int{"AA": 0}, res.Depth)
}

// TestBFS_RingDepths walks a four-valve ring; the far side is two tunnels away.
func TestBFS_RingDepths(t *testing.T) {
	g := cave(t, [2]string{"AA", "BB"}, [2]string{"BB", "CC"}, [2]string{"CC", "DD"}, [2]string{"DD", "AA"})

	res, err := bfs.BFS(g, "AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "BB", "DD", "CC"}, res.Order)
	assert.Equal(t, map[string]int{"AA": 0, "BB": 1, "DD": 1, "CC": 2}, res.Depth)
}

func TestBFS_StaysInComponent(t *testing.T) {
	g := cave(t, [2]string{"AA", "BB"}, [2]string{"XX", "YY"})

	res, err := bfs.BFS(g, "AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "BB"}, res.Order)
	assert.NotContains(t, res.Depth, "XX")
}

func TestBFS_MaxDepth(t *testing.T) {
	g := cave(t, [2]string{"AA", "BB"}, [2]string{"BB", "CC"})

	for depth, want := range map[int][]string{
		1:  {"AA", "BB"},
		0:  {"AA", "BB", "CC"}, // 0 disables the limit
		10: {"AA", "BB", "CC"},
	} {
		res, err := bfs.BFS(g, "AA", bfs.WithMaxDepth(depth))
		require.NoError(t, err)
		assert.Equal(t, want, res.Order, "MaxDepth=%d", depth)
	}
}

func TestBFS_TargetsStopEarly(t *testing.T) {
	g := cave(t, [2]string{"AA", "BB"}, [2]string{"BB", "CC"}, [2]string{"CC", "DD"}, [2]string{"DD", "EE"})

	res, err := bfs.BFS(g, "AA", bfs.WithTargets("CC", "AA"))
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "BB", "CC"}, res.Order)
	assert.Equal(t, 2, res.Depth["CC"])
	assert.NotContains(t, res.Depth, "EE", "nothing past the last target is discovered")
}

func TestBFS_Hooks(t *testing.T) {
	g := cave(t, [2]string{"AA", "BB"}, [2]string{"BB", "CC"})

	var enq, vis []string
	_, err := bfs.BFS(g, "AA",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, fmt.Sprintf("%s@%d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, fmt.Sprintf("%s@%d", id, d)); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA@0", "BB@1", "CC@2"}, enq)
	assert.Equal(t, enq, vis)
}

func TestBFS_Aborts(t *testing.T) {
	g := cave(t, [2]string{"AA", "BB"})

	boom := errors.New("boom")
	_, err := bfs.BFS(g, "AA", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "BB" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "AA", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFSResult_PathTo(t *testing.T) {
	g := cave(t, [2]string{"AA", "BB"}, [2]string{"BB", "CC"})
	require.NoError(t, g.AddValve("QQ", 0))

	res, err := bfs.BFS(g, "AA")
	require.NoError(t, err)

	path, err := res.PathTo("AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA"}, path)

	path, err = res.PathTo("CC")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "BB", "CC"}, path)

	_, err = res.PathTo("QQ")
	require.Error(t, err)
}
