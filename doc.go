// Package lvclique finds maximum cliques in in-memory undirected graphs
// with an exact branch-and-bound search.
//
// What is inside:
//
//	core/   : thread-safe undirected simple Graph: vertices, symmetric adjacency,
//	          degree queries, Clone, InducedSubgraph, Complement.
//	clique/ : the solver: greedy clique (lower bound), greedy coloring (upper
//	          bound), pivot branching, and the MaxClique driver with optional
//	          incumbent pruning, parallel branches, and time/node limits.
//
// The search stops on a subproblem as soon as the greedy clique size equals
// the greedy color count. That is exact, not a heuristic cut-off:
// |K| ≤ ω(G) ≤ χ(G) ≤ colors, so equal ends force ω(G) = |K|.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("B", "C")
//	_ = g.AddEdge("C", "A")
//	res, _ := clique.MaxClique(g)
//	fmt.Println(res.Clique, res.Size) // [A B C] 3
//
//	go get github.com/katalvlaran/lvclique
package lvclique
