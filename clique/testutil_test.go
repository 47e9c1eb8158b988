// Package clique_test: shared fixtures and brute-force oracles.
//
// The oracles enumerate every vertex subset / every coloring and are only
// meant for graphs with at most ~12 vertices.
package clique_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

// vid is the canonical vertex name for index i; zero-padded so that
// lexicographic order equals numeric order.
func vid(i int) string { return fmt.Sprintf("v%02d", i) }

// mkGraph builds a graph on n vertices v00..v{n-1} with the given index edges.
func mkGraph(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(vid(i)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(vid(e[0]), vid(e[1])))
	}

	return g
}

// mkComplete returns K_n.
func mkComplete(t testing.TB, n int) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return mkGraph(t, n, edges)
}

// mkCycle returns C_n (n ≥ 3).
func mkCycle(t testing.TB, n int) *core.Graph {
	t.Helper()
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return mkGraph(t, n, edges)
}

// mkRandom returns a G(n,p) graph drawn from rng.
func mkRandom(t testing.TB, rng *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return mkGraph(t, n, edges)
}

// bruteOmega returns the clique number of g by subset enumeration.
func bruteOmega(t testing.TB, g *core.Graph) int {
	t.Helper()
	ids := g.Vertices()
	n := len(ids)
	require.LessOrEqual(t, n, 16, "bruteOmega is exponential")

	best := 0
	for mask := 1; mask < 1<<n; mask++ {
		var set []string
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				set = append(set, ids[i])
			}
		}
		if len(set) > best && clique.IsClique(g, set) {
			best = len(set)
		}
	}

	return best
}

// bruteChi returns the chromatic number of g by backtracking over k = 0,1,2,…
func bruteChi(t testing.TB, g *core.Graph) int {
	t.Helper()
	ids := g.Vertices()
	n := len(ids)
	require.LessOrEqual(t, n, 16, "bruteChi is exponential")
	if n == 0 {
		return 0
	}

	colors := make([]int, n)
	var try func(i, k int) bool
	try = func(i, k int) bool {
		if i == n {
			return true
		}
		for c := 0; c < k; c++ {
			ok := true
			for j := 0; j < i; j++ {
				if colors[j] == c && g.HasEdge(ids[i], ids[j]) {
					ok = false
					break
				}
			}
			if ok {
				colors[i] = c
				if try(i+1, k) {
					return true
				}
			}
		}

		return false
	}
	for k := 1; ; k++ {
		if try(0, k) {
			return k
		}
	}
}

// isMaximal reports whether no vertex outside k is adjacent to all of k.
func isMaximal(g *core.Graph, k []string) bool {
	in := make(map[string]bool, len(k))
	for _, v := range k {
		in[v] = true
	}
	for _, u := range g.Vertices() {
		if in[u] {
			continue
		}
		all := true
		for _, v := range k {
			if !g.HasEdge(u, v) {
				all = false
				break
			}
		}
		if all {
			return false
		}
	}

	return true
}

// randomCases yields a reproducible batch of small random graphs with
// densities spread over (0,1).
func randomCases(t testing.TB, seed int64, count, maxN int) []*core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	densities := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	out := make([]*core.Graph, 0, count)
	for i := 0; i < count; i++ {
		n := 1 + rng.Intn(maxN)
		out = append(out, mkRandom(t, rng, n, densities[i%len(densities)]))
	}

	return out
}
