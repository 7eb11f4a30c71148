package search_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/builder"
	"github.com/katalvlaran/volcano/distance"
	"github.com/katalvlaran/volcano/search"
)

// TestRandomCaves cross-checks the engine's modes on generated caves.
func TestRandomCaves(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 12; seed++ {
		g, err := builder.Build(builder.Random(12, 0.15),
			builder.WithSeed(seed), builder.WithSparseFlows(0.5, 20))
		require.NoError(t, err)
		tbl, err := distance.Build(g, "AA")
		require.NoError(t, err)

		for _, tc := range []struct{ actors, minutes int }{{1, 14}, {2, 10}} {
			base := []search.Option{search.WithActors(tc.actors), search.WithTimeLimit(tc.minutes)}

			full, err := search.MaximumRelease(ctx, g, tbl, base...)
			require.NoError(t, err)

			got, err := search.Release(g, full.Schedule, tc.minutes)
			require.NoError(t, err)
			require.Equal(t, full.Release, got, "seed %d: schedule does not score its release", seed)

			cut, err := search.MaximumRelease(ctx, g, tbl, append(base, search.WithUpperBound())...)
			require.NoError(t, err)
			require.Equal(t, full.Release, cut.Release, "seed %d actors %d: bound changed the optimum", seed, tc.actors)

			par, err := search.MaximumRelease(ctx, g, tbl, append(base, search.WithWorkers(3))...)
			require.NoError(t, err)
			if diff := cmp.Diff(full, par); diff != "" {
				t.Fatalf("seed %d actors %d: parallel differs (-seq +par):\n%s", seed, tc.actors, diff)
			}
		}
	}
}

// TestMoreActorsNeverHurt holds because a second actor may simply idle.
func TestMoreActorsNeverHurt(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.Build(builder.Grid(3, 3), builder.WithSeed(seed), builder.WithSparseFlows(0.6, 15))
		require.NoError(t, err)
		tbl, err := distance.Build(g, "AA")
		require.NoError(t, err)

		one, err := search.MaximumRelease(ctx, g, tbl, search.WithTimeLimit(9))
		require.NoError(t, err)
		two, err := search.MaximumRelease(ctx, g, tbl, search.WithActors(2), search.WithTimeLimit(9), search.WithUpperBound())
		require.NoError(t, err)
		require.GreaterOrEqual(t, two.Release, one.Release, "seed %d", seed)
	}
}
