package clique

import "github.com/katalvlaran/lvclique/core"

// IsClique reports whether ids is a clique of g: every ID exists, no ID
// repeats, and every pair is adjacent. The empty set is a clique.
//
// Complexity: O(k²) for k = len(ids).
func IsClique(g *core.Graph, ids []string) bool {
	if g == nil {
		return false
	}
	seen := make(map[string]struct{}, len(ids))
	for i, u := range ids {
		if !g.HasVertex(u) {
			return false
		}
		if _, dup := seen[u]; dup {
			return false
		}
		seen[u] = struct{}{}
		for _, v := range ids[:i] {
			if !g.HasEdge(u, v) {
				return false
			}
		}
	}

	return true
}

// IsProperColoring reports whether colors assigns a non-negative color to
// every vertex of g and no edge of g joins two vertices of equal color.
//
// Complexity: O(V + E log E).
func IsProperColoring(g *core.Graph, colors map[string]int) bool {
	if g == nil {
		return false
	}
	for _, id := range g.Vertices() {
		if c, ok := colors[id]; !ok || c < 0 {
			return false
		}
	}
	for _, e := range g.Edges() {
		if colors[e.From] == colors[e.To] {
			return false
		}
	}

	return true
}
