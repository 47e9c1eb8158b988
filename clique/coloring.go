package clique

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvclique/core"
)

// uncolored marks arena vertices that have no color (dead or not yet reached).
const uncolored = -1

// greedyColoring colors alive vertices in descending-degree order.
//
// For each vertex the colors of its already colored neighbors are collected.
// If they cover every color introduced so far, a fresh color is opened;
// otherwise the smallest free color is reused. The coloring is proper by
// construction, so the returned count bounds χ(G), and therefore ω(G), from
// above. An empty subgraph yields 0 without opening any color.
//
// colors is indexed by arena vertex; non-alive vertices stay uncolored.
//
// Complexity: O(n · N/w) where N is the arena size and w the word size.
func greedyColoring(s subgraph, r ranking) (colors []int, count int) {
	colors = make([]int, len(s.a.ids))
	for i := range colors {
		colors[i] = uncolored
	}

	taken := bitset.New(uint(len(r.order)))
	for _, v := range r.order {
		taken.ClearAll()
		nbrs := s.a.adj[v]
		for u, ok := nbrs.NextSet(0); ok; u, ok = nbrs.NextSet(u + 1) {
			if c := colors[u]; c != uncolored {
				taken.Set(uint(c))
			}
		}

		if int(taken.Count()) == count {
			colors[v] = count
			count++

			continue
		}
		free, _ := taken.NextClear(0) // a gap below count exists: taken.Count() < count
		colors[v] = int(free)
	}

	return colors, count
}

// GreedyColoring returns a proper coloring of g (vertex ID → color in
// [0, k)) produced by the descending-degree greedy rule.
//
// Errors:
//   - ErrNilGraph if g is nil.
func GreedyColoring(g *core.Graph) (map[string]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := newArena(g).full()
	colors, _ := greedyColoring(s, rank(s))

	out := make(map[string]int, len(colors))
	for v, c := range colors {
		out[s.a.ids[v]] = c
	}

	return out, nil
}

// ColoringBound returns the number of colors GreedyColoring uses on g:
// an upper bound on the chromatic number and hence on the clique number.
// Empty graph ⇒ 0, single vertex ⇒ 1.
func ColoringBound(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	s := newArena(g).full()
	_, count := greedyColoring(s, rank(s))

	return count, nil
}
