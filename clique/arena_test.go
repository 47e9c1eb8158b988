package clique

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/core"
)

// diamond: A-B, A-C, B-C, B-D, C-D (two triangles sharing B-C).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"B", "D"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestArena_IndexFollowsSortedIDs(t *testing.T) {
	a := newArena(diamond(t))
	require.Equal(t, []string{"A", "B", "C", "D"}, a.ids)
	require.True(t, a.adj[0].Test(1))
	require.True(t, a.adj[1].Test(0), "adjacency mirrored")
	require.False(t, a.adj[0].Test(3))
	require.Equal(t, []string{"A", "D"}, a.names([]int{3, 0}))
}

func TestSubgraph_ChildrenDoNotAlias(t *testing.T) {
	s := newArena(diamond(t)).full()
	excl := s.without(1)
	incl := s.closedNeighborhood(0)

	require.Equal(t, 4, s.size(), "parent untouched")
	require.Equal(t, []int{0, 2, 3}, excl.members())
	require.Equal(t, []int{0, 1, 2}, incl.members())

	excl.alive.Clear(0)
	require.True(t, s.alive.Test(0))
	require.True(t, incl.alive.Test(0))
}

func TestRank_DegreeDescendingTiesByIndex(t *testing.T) {
	s := newArena(diamond(t)).full()
	r := rank(s)
	require.Equal(t, []int{1, 2, 0, 3}, r.order)
	require.Equal(t, []int{3, 3, 2, 2}, r.deg)

	// After dropping B, C is the only vertex of degree 2.
	r = rank(s.without(1))
	require.Equal(t, []int{2, 0, 3}, r.order)
	require.Equal(t, []int{2, 1, 1}, r.deg)
}

func TestHeuristics_OnEmptySubgraph(t *testing.T) {
	s := newArena(core.NewGraph()).full()
	r := rank(s)
	require.Empty(t, greedyClique(s, r))
	colors, count := greedyColoring(s, r)
	require.Zero(t, count)
	require.Empty(t, colors)

	_, _, _, ok := branch(s, r)
	require.False(t, ok)
}

func TestGreedyColoring_IgnoresDeadVertices(t *testing.T) {
	s := newArena(diamond(t)).full().without(1).without(2) // only A and D, no edge
	colors, count := greedyColoring(s, rank(s))
	require.Equal(t, 1, count)
	require.Equal(t, []int{0, uncolored, uncolored, 0}, colors)
}

func TestIncumbent_OnlyGrows(t *testing.T) {
	var in incumbent
	in.offer([]int{4, 5})
	in.offer([]int{1})
	in.offer([]int{7, 8})
	require.Equal(t, []int{4, 5}, in.snapshot())
	in.offer([]int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3}, in.snapshot())
	require.Equal(t, int64(3), in.size.Load())
}
