// Package core provides a thread-safe in-memory undirected simple graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) is the input contract of the clique solver:
//
//   - Enumerable vertex set with deterministic order (Vertices()).
//   - Per-vertex neighbor lookup (NeighborIDs) and degree query (Degree).
//   - Vertex removal (RemoveVertex) and independent copies (Clone,
//     InducedSubgraph) so that sibling subproblems never alias.
//   - Symmetric adjacency kept by construction:
//     adjacency[u][v] exists iff adjacency[v][u] exists.
//   - No self-loops, no parallel edges (AddEdge(v,v) → ErrLoopNotAllowed,
//     a repeated AddEdge(u,v) is a no-op).
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v string) error         // O(1), auto-adds endpoints
//	HasEdge(u, v string) bool          // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // O(V·log V), sorted
//	Edges() []Edge                           // O(E·log E), canonical From < To
//	Degree(id string) (int, error)           // O(1)
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1)
//
//	// Copies & views
//	Clone() *Graph                                   // O(V+E)
//	InducedSubgraph(g, keep map[string]bool) *Graph  // O(V+E)
//	Complement(g) *Graph                             // O(V²)
//	Clear()                                          // O(1)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop
package core
