package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/dfs"
)

// cave builds a graph from flow-free valves and tunnel pairs.
func cave(t *testing.T, ids []string, tunnels [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddValve(id, 0))
	}
	for _, tn := range tunnels {
		require.NoError(t, g.AddTunnel(tn[0], tn[1]))
	}

	return g
}

func referenceCave(t *testing.T) *core.Graph {
	return cave(t,
		[]string{"AA", "BB", "CC", "DD", "EE", "FF", "GG", "HH", "II", "JJ"},
		[][2]string{
			{"AA", "DD"}, {"AA", "II"}, {"AA", "BB"},
			{"BB", "CC"}, {"CC", "DD"}, {"DD", "EE"},
			{"EE", "FF"}, {"FF", "GG"}, {"GG", "HH"}, {"II", "JJ"},
		})
}

func TestDFS_OrderAndDepth(t *testing.T) {
	g := referenceCave(t)

	res, err := dfs.DFS(g, "AA")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"HH", "GG", "FF", "EE", "DD", "CC", "BB", "JJ", "II", "AA"},
		res.Order)
	assert.Equal(t, 7, res.Depth["HH"], "tree depth, not shortest distance")
	assert.Equal(t, "CC", res.Parent["DD"])
	assert.NotContains(t, res.Parent, "AA")
	assert.Len(t, res.Visited, 10)
}

func TestDFS_Hooks(t *testing.T) {
	g := referenceCave(t)

	var pre, post []string
	_, err := dfs.DFS(g, "II",
		dfs.WithOnVisit(func(id string) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id string) error { post = append(post, id); return nil }),
		dfs.WithFilterNeighbor(func(id string) bool { return id != "AA" }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"II", "JJ"}, pre)
	assert.Equal(t, []string{"JJ", "II"}, post)

	boom := errors.New("boom")
	res, err := dfs.DFS(g, "AA", dfs.WithOnExit(func(id string) error {
		if id == "EE" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_MaxDepthAndFilterCount(t *testing.T) {
	g := referenceCave(t)

	res, err := dfs.DFS(g, "AA", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AA", "BB", "DD", "II"}, res.Order)

	res, err = dfs.DFS(g, "AA", dfs.WithFilterNeighbor(func(id string) bool { return id != "DD" }))
	require.NoError(t, err)
	assert.False(t, res.Visited["DD"])
	assert.False(t, res.Visited["EE"], "EE hangs off DD only")
	assert.Equal(t, 2, res.SkippedNeighbors) // CC→DD and AA→DD
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "AA")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(referenceCave(t), "ZZ")
	require.ErrorIs(t, err, dfs.ErrStartValveNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(referenceCave(t), "AA", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponentsAndUnreachable(t *testing.T) {
	g := cave(t,
		[]string{"AA", "BB", "CC", "XX", "YY", "ZZ"},
		[][2]string{{"AA", "BB"}, {"BB", "CC"}, {"XX", "YY"}},
	)

	parts, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"AA", "BB", "CC"}, {"XX", "YY"}, {"ZZ"}}, parts)

	lost, err := dfs.Unreachable(g, "AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"XX", "YY", "ZZ"}, lost)

	lost, err = dfs.Unreachable(referenceCave(t), "AA")
	require.NoError(t, err)
	assert.Empty(t, lost)

	_, err = dfs.Components(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}
