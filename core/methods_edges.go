// File: methods_edges.go
// Role: Edge lifecycle & queries for the undirected simple graph.
//
// Determinism:
//   - Edges() returns canonical edges (From < To) sorted by (From, To).
//
// Concurrency:
//   - AddEdge locks muVert (auto-creating endpoints) then muEdgeAdj.
//   - Queries hold muEdgeAdj read lock only.
package core

import "sort"

// AddEdge connects u and v with an undirected edge, creating missing
// endpoints on the fly.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyVertexID) and reject u == v (ErrLoopNotAllowed).
//   - Stage 2: Under muVert write lock, register missing endpoints.
//   - Stage 3: Under muEdgeAdj write lock, mirror the edge in both buckets.
//
// Behavior highlights:
//   - Idempotent: adding an existing edge is a no-op, so the graph stays simple.
//   - Symmetry u∈N(v) ⇔ v∈N(u) holds after every call.
//
// Errors:
//   - ErrEmptyVertexID: if u or v is empty.
//   - ErrLoopNotAllowed: if u == v.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var id string
	for _, id = range [2]string{u, v} {
		if _, ok := g.vertices[id]; !ok {
			g.vertices[id] = &Vertex{ID: id}
			ensureAdjacency(g, id)
		}
	}

	if _, ok := g.adjacency[u][v]; ok {
		return nil // already adjacent
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent. Missing vertices ⇒ false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, in canonical form (From < To), sorted by
// From and then To.
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	var u, v string
	var nbrs map[string]struct{}
	for u, nbrs = range g.adjacency {
		for v = range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
