// File: view.go
// Role: Non-mutating graph views (fresh graphs derived from a source topology).
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.
//   - Complement keeps every vertex and swaps edges with non-edges.

package core

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. IDs in keep that are absent from g are ignored.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var id, w string
	for id = range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: id}
			out.adjacency[id] = make(map[string]struct{})
		}
	}
	for id = range out.vertices {
		for w = range g.adjacency[id] {
			if !keep[w] {
				continue
			}
			out.adjacency[id][w] = struct{}{}
			if id < w {
				out.edgeCount++
			}
		}
	}

	return out
}

// Complement returns the complement graph: same vertices, and {u,v} is an
// edge iff u != v and {u,v} is not an edge of g. Cliques of the complement
// are independent sets of g.
//
// Complexity: O(V²). Concurrency: read locks only on source.
func Complement(g *Graph) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var u, v string
	for u = range g.vertices {
		out.vertices[u] = &Vertex{ID: u}
		out.adjacency[u] = make(map[string]struct{})
	}
	for u = range g.vertices {
		for v = range g.vertices {
			if u == v {
				continue
			}
			if _, ok := g.adjacency[u][v]; ok {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if u < v {
				out.edgeCount++
			}
		}
	}

	return out
}
