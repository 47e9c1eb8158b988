// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices and adjacency.
// The clone shares no maps with g, so sibling subproblems built from one
// parent never alias each other.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	var (
		id   string
		nbrs map[string]struct{}
		w    string
	)
	for id = range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
	}
	for id, nbrs = range g.adjacency {
		bucket := make(map[string]struct{}, len(nbrs))
		for w = range nbrs {
			bucket[w] = struct{}{}
		}
		clone.adjacency[id] = bucket
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to an empty state.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
// Concurrency: acquires both write locks.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.adjacency = make(map[string]map[string]struct{})
	g.edgeCount = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
