// Package clique computes a maximum clique of an undirected simple graph by
// exact branch-and-bound, guided by two greedy bounds.
//
// Building blocks:
//
//	GreedyClique(g)      – one maximal clique, descending-degree rule (lower bound).
//	GreedyColoring(g)    – proper coloring, descending-degree rule.
//	ColoringBound(g)     – number of colors used (upper bound on ω and χ).
//	Branch(g)            – split on the highest-degree non-universal vertex.
//	MaxClique(g, opts…)  – the driver; see bb.go for the proof of the stop rule.
//	IsClique, IsProperColoring – verification helpers.
//
// Representation:
//
// The solver snapshots the core.Graph once into an arena of adjacency
// bitsets indexed by vertex position in g.Vertices(). A subproblem is just an
// alive mask over that arena, so the "remove a vertex" and "restrict to a
// closed neighborhood" steps of branching cost one bitset copy and never
// alias a sibling's state. Degrees and the degree ordering are recomputed for
// every subproblem.
//
// Determinism:
//
// Ties in the degree ordering break by ascending vertex ID, and greedy
// coloring reuses the smallest free color, so sequential runs are fully
// reproducible. Parallel runs (WithParallelDepth) return a clique of the same
// size, possibly a different one.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("B", "C")
//	_ = g.AddEdge("C", "A")
//	_ = g.AddEdge("C", "D")
//	res, err := clique.MaxClique(g)
//	// res.Clique == [A B C], res.Size == 3, res.Optimal == true
package clique
