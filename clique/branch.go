package clique

import "github.com/katalvlaran/lvclique/core"

// branch splits s on the highest-degree non-universal vertex p:
//
//   - exclude = s \ {p}      (maximum cliques without p)
//   - include = s ∩ N[p]     (maximum cliques with p need only p's neighbors)
//
// Any maximum clique of s lies in one of the two, so the split is exhaustive.
// Both children are strictly smaller: exclude drops p, include drops every
// non-neighbor of p, and one exists because p is not universal.
//
// ok is false when every vertex is universal (s is complete, or empty);
// callers must then answer with the whole vertex set instead of branching.
func branch(s subgraph, r ranking) (exclude, include subgraph, pivot int, ok bool) {
	full := s.size() - 1
	for i, v := range r.order {
		if r.deg[i] < full {
			return s.without(v), s.closedNeighborhood(v), v, true
		}
	}

	return subgraph{}, subgraph{}, 0, false
}

// Branch applies the branching rule to g and returns the two child graphs
// as independent copies, together with the pivot ID.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrCompleteGraph if g has no non-universal vertex (complete or empty).
//
// Complexity: O(V² / w + V log V) for ranking plus O(V + E) per child copy.
func Branch(g *core.Graph) (exclude, include *core.Graph, pivot string, err error) {
	if g == nil {
		return nil, nil, "", ErrNilGraph
	}
	s := newArena(g).full()
	a, b, p, ok := branch(s, rank(s))
	if !ok {
		return nil, nil, "", ErrCompleteGraph
	}

	return core.InducedSubgraph(g, a.keep()), core.InducedSubgraph(g, b.keep()), s.a.ids[p], nil
}
