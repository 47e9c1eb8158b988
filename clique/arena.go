package clique

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvclique/core"
)

// arena is an immutable, index-based snapshot of a core.Graph.
// Vertex i is ids[i] (ids sorted ascending, so index order equals ID order);
// adj[i] holds the open neighborhood of i.
type arena struct {
	ids []string
	adj []*bitset.BitSet
}

// newArena snapshots g once. Subproblems then only carry an alive mask, so
// "removing" a vertex never touches the shared adjacency.
func newArena(g *core.Graph) *arena {
	ids := g.Vertices()
	n := uint(len(ids))
	index := make(map[string]int, len(ids))
	adj := make([]*bitset.BitSet, len(ids))
	for i, id := range ids {
		index[id] = i
		adj[i] = bitset.New(n)
	}

	var (
		u, v     int
		okU, okV bool
		e        core.Edge
	)
	for _, e = range g.Edges() {
		u, okU = index[e.From]
		v, okV = index[e.To]
		if !okU || !okV {
			continue // vertex added concurrently after the Vertices() snapshot
		}
		adj[u].Set(uint(v))
		adj[v].Set(uint(u))
	}

	return &arena{ids: ids, adj: adj}
}

// full returns the subproblem containing every vertex.
func (a *arena) full() subgraph {
	alive := bitset.New(uint(len(a.ids)))
	for i := range a.ids {
		alive.Set(uint(i))
	}

	return subgraph{a: a, alive: alive}
}

// names maps indices to IDs, sorted ascending.
func (a *arena) names(idx []int) []string {
	sorted := append([]int(nil), idx...)
	sort.Ints(sorted)
	out := make([]string, len(sorted))
	for i, v := range sorted {
		out[i] = a.ids[v]
	}

	return out
}

// subgraph is the vertex-induced subgraph of an arena selected by alive.
// Each subgraph owns its alive mask; derived subgraphs always clone it.
type subgraph struct {
	a     *arena
	alive *bitset.BitSet
}

func (s subgraph) size() int { return int(s.alive.Count()) }

// degree counts the neighbors of v that are still alive.
func (s subgraph) degree(v int) int {
	return int(s.a.adj[v].IntersectionCardinality(s.alive))
}

// members lists alive vertices in ascending index order.
func (s subgraph) members() []int {
	out := make([]int, 0, s.size())
	for i, ok := s.alive.NextSet(0); ok; i, ok = s.alive.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// without returns s minus v.
func (s subgraph) without(v int) subgraph {
	alive := s.alive.Clone()
	alive.Clear(uint(v))

	return subgraph{a: s.a, alive: alive}
}

// closedNeighborhood returns s restricted to v and its alive neighbors.
func (s subgraph) closedNeighborhood(v int) subgraph {
	alive := s.alive.Intersection(s.a.adj[v])
	alive.Set(uint(v))

	return subgraph{a: s.a, alive: alive}
}

// keep converts the alive mask into the ID set expected by core.InducedSubgraph.
func (s subgraph) keep() map[string]bool {
	out := make(map[string]bool, s.size())
	for _, v := range s.members() {
		out[s.a.ids[v]] = true
	}

	return out
}

// ranking is the degree ordering of one subgraph: order[i] has degree deg[i],
// degrees descending, ties by ascending index. It is rebuilt for every
// subproblem because each removal changes degrees.
type ranking struct {
	order []int
	deg   []int
}

func rank(s subgraph) ranking {
	members := s.members()
	deg := make([]int, len(s.a.ids))
	for _, v := range members {
		deg[v] = s.degree(v)
	}
	sort.SliceStable(members, func(i, j int) bool {
		return deg[members[i]] > deg[members[j]]
	})

	r := ranking{order: members, deg: make([]int, len(members))}
	for i, v := range members {
		r.deg[i] = deg[v]
	}

	return r
}
