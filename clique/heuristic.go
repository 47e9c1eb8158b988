package clique

import "github.com/katalvlaran/lvclique/core"

// greedyClique builds one maximal clique: accept the highest-degree
// candidate, keep only its neighbors as candidates, repeat.
//
// Every accepted vertex is adjacent to all previously accepted ones because
// the candidate list is filtered to the neighbors of each accepted vertex
// before the next pick. The result is a lower bound on ω.
//
// Complexity: O(n·|K|) bit tests, where n = |alive|.
func greedyClique(s subgraph, r ranking) []int {
	cand := append([]int(nil), r.order...)
	var k []int
	for len(cand) > 0 {
		v := cand[0]
		k = append(k, v)

		nbrs := s.a.adj[v]
		next := cand[:0] // in-place filter; writes never overtake reads
		for _, u := range cand[1:] {
			if nbrs.Test(uint(u)) {
				next = append(next, u)
			}
		}
		cand = next
	}

	return k
}

// GreedyClique returns a maximal (not necessarily maximum) clique of g,
// sorted by vertex ID. An empty graph yields an empty, non-nil slice;
// a complete graph K_n yields all n vertices.
//
// Errors:
//   - ErrNilGraph if g is nil.
//
// Complexity: O(V² / w + V log V) with w the machine word size.
func GreedyClique(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := newArena(g).full()

	return s.a.names(greedyClique(s, rank(s))), nil
}
