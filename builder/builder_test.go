package builder_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/builder"
	"github.com/katalvlaran/volcano/dfs"
	"github.com/katalvlaran/volcano/parse"
)

func TestLetterIDFn(t *testing.T) {
	cases := map[int]string{0: "AA", 1: "AB", 25: "AZ", 26: "BA", 675: "ZZ", 676: "BAA"}
	for idx, want := range cases {
		assert.Equal(t, want, builder.LetterIDFn(idx), "idx=%d", idx)
	}
	assert.Panics(t, func() { builder.LetterIDFn(-1) })

	seen := map[string]bool{}
	for i := 0; i < 2000; i++ {
		id := builder.LetterIDFn(i)
		require.False(t, seen[id], "duplicate ID %s at %d", id, i)
		seen[id] = true
	}
}

func TestShapes(t *testing.T) {
	cases := []struct {
		name            string
		shape           builder.Constructor
		valves, tunnels int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(6), 6, 6},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"column", builder.Grid(4, 1), 4, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.shape)
			require.NoError(t, err)
			st := g.Stats()
			assert.Equal(t, tc.valves, st.ValveCount)
			assert.Equal(t, tc.tunnels, st.TunnelCount)
			assert.Equal(t, tc.valves-1, st.UsefulCount, "all but the start get the default flow")

			flow, err := g.FlowRate("AA")
			require.NoError(t, err)
			assert.Zero(t, flow)
		})
	}
}

func TestShapes_Errors(t *testing.T) {
	for _, shape := range []builder.Constructor{
		builder.Path(1), builder.Cycle(2), builder.Grid(1, 1), builder.Grid(0, 5), builder.Random(1, 0.5),
	} {
		_, err := builder.Build(shape, builder.WithSeed(1))
		require.ErrorIs(t, err, builder.ErrTooFewValves)
	}

	_, err := builder.Build(builder.Random(5, 1.5), builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(builder.Random(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(builder.Path(5), builder.WithSparseFlows(0.5, 10))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(nil)
	require.Error(t, err)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithFlowFn(nil) })
	assert.Panics(t, func() { builder.WithSparseFlows(-0.1, 5) })
	assert.Panics(t, func() { builder.WithSparseFlows(0.5, 0) })
}

func TestRandom_ConnectedAndDeterministic(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		opts := []builder.Option{builder.WithSeed(seed), builder.WithSparseFlows(0.4, 25)}
		g, err := builder.Build(builder.Random(15, 0.1), opts...)
		require.NoError(t, err)

		parts, err := dfs.Components(g)
		require.NoError(t, err)
		assert.Len(t, parts, 1, "seed %d", seed)
		assert.GreaterOrEqual(t, g.TunnelCount(), 14)

		again, err := builder.Build(builder.Random(15, 0.1), opts...)
		require.NoError(t, err)
		a, err := builder.ScanString(g)
		require.NoError(t, err)
		b, err := builder.ScanString(again)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("seed %d not reproducible (-first +second):\n%s", seed, diff)
		}
	}
}

func TestRandom_DenseIsComplete(t *testing.T) {
	g, err := builder.Build(builder.Random(6, 1), builder.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	assert.Equal(t, 15, g.TunnelCount())
}

func TestWithFlowFnAndIDScheme(t *testing.T) {
	next := 0
	g, err := builder.Build(builder.Path(4),
		builder.WithFlowFn(func(*rand.Rand) int { next += 10; return next }),
		builder.WithIDScheme(func(i int) string { return "V" + strconv.Itoa(i) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"V0", "V1", "V2", "V3"}, g.Valves())
	for id, want := range map[string]int{"V0": 0, "V1": 10, "V2": 20, "V3": 30} {
		got, err := g.FlowRate(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, id)
	}
}

func TestWriteScan_RoundTrip(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3), builder.WithSeed(9), builder.WithSparseFlows(0.5, 30))
	require.NoError(t, err)

	text, err := builder.ScanString(g)
	require.NoError(t, err)

	back, err := parse.NewParser().ParseString(text)
	require.NoError(t, err)
	again, err := builder.ScanString(back)
	require.NoError(t, err)
	assert.Equal(t, text, again)
	assert.Equal(t, g.Stats(), back.Stats())
}

func TestWriteScan_Grammar(t *testing.T) {
	g, err := builder.Build(builder.Path(3))
	require.NoError(t, err)

	text, err := builder.ScanString(g)
	require.NoError(t, err)
	assert.Equal(t,
		"Valve AA has flow rate=0; tunnel leads to valve AB\n"+
			"Valve AB has flow rate=1; tunnels lead to valves AA, AC\n"+
			"Valve AC has flow rate=1; tunnel leads to valve AB\n",
		text)

	require.NoError(t, g.AddValve("ZZ", 3))
	_, err = builder.ScanString(g)
	require.ErrorIs(t, err, builder.ErrIsolatedValve)
}
