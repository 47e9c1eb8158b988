// Package clique: Branch-and-Bound driver (exact search with greedy bounds).
//
// MaxClique returns one maximum clique via recursive bound-and-split:
//
//  1. EVALUATE: on the current subproblem compute a greedy clique K and a
//     greedy coloring with C colors.
//  2. If |K| == C, K is optimal for the subproblem. This is a proof, not an
//     approximation: |K| ≤ ω(G) because K is a clique, ω(G) ≤ χ(G) because
//     the vertices of a clique need pairwise distinct colors, and χ(G) ≤ C
//     because the greedy coloring is proper. Equality of the outer terms
//     pins ω(G) = |K|.
//  3. BRANCH: otherwise split on a non-universal pivot (see branch.go),
//     solve both children and keep the larger clique.
//
// Every child has strictly fewer vertices than its parent, so recursion
// depth is at most |V| and the search terminates on every finite graph.
// A subproblem without a non-universal vertex is complete and is answered
// by its whole vertex set.
//
// Extensions (all optional, answer size unaffected):
//   - Incumbent pruning: a subproblem with C ≤ |best so far| cannot improve
//     the answer and is dropped. The incumbent is mutex-guarded; its size is
//     mirrored in an atomic for the hot path.
//   - Parallel branches: for depth < ParallelDepth the exclude-branch runs on
//     its own goroutine (sourcegraph/conc WaitGroup); children are merged by
//     post-merge reduction, exactly as in the sequential order.
//   - Limits: TimeLimit, MaxNodes and ctx are checked once per subproblem.
//     On abort the best clique found so far is returned with the error.
//
// Complexity:
//   - Worst case exponential in |V| (maximum clique is NP-hard).
//   - Per subproblem: O(n·N/w + n log n) for ranking, greedy clique and
//     coloring over bitsets (n alive vertices, N arena size, w word size).
//   - Memory: O(N²/w) arena + O(N/w) alive mask per live subproblem.

package clique

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/sourcegraph/conc"

	"github.com/katalvlaran/lvclique/core"
)

// incumbent is the best clique found anywhere in the search tree so far.
type incumbent struct {
	mu   sync.Mutex
	best []int
	size atomic.Int64
}

// offer records k if it is strictly larger than the current best.
func (in *incumbent) offer(k []int) {
	if int64(len(k)) <= in.size.Load() {
		return
	}
	in.mu.Lock()
	if len(k) > len(in.best) {
		in.best = append([]int(nil), k...)
		in.size.Store(int64(len(k)))
	}
	in.mu.Unlock()
}

func (in *incumbent) snapshot() []int {
	in.mu.Lock()
	defer in.mu.Unlock()

	return append([]int(nil), in.best...)
}

// bbEngine holds the shared state of one MaxClique run.
type bbEngine struct {
	ctx  context.Context
	log  logr.Logger
	opts Options

	useDeadline bool
	deadline    time.Time

	inc incumbent

	nodes     atomic.Int64
	boundHits atomic.Int64
	branches  atomic.Int64
	pruned    atomic.Int64
	fallbacks atomic.Int64
	maxDepth  atomic.Int64

	stopped  atomic.Bool
	stopOnce sync.Once
	stopErr  error
}

// stop records the first abort reason; later calls are ignored.
func (e *bbEngine) stop(err error) {
	e.stopOnce.Do(func() {
		e.stopErr = err
		e.stopped.Store(true)
	})
}

// enter accounts for one EVALUATE step and checks every limit.
// It returns false when the search must unwind.
func (e *bbEngine) enter(depth int) bool {
	if e.stopped.Load() {
		return false
	}
	n := e.nodes.Add(1)
	if e.opts.MaxNodes > 0 && n > e.opts.MaxNodes {
		e.stop(ErrNodeLimit)

		return false
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.stop(ErrTimeLimit)

		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.stop(fmt.Errorf("clique: search cancelled: %w", err))

		return false
	}

	d := int64(depth)
	for {
		cur := e.maxDepth.Load()
		if d <= cur || e.maxDepth.CompareAndSwap(cur, d) {
			break
		}
	}

	return true
}

// solve returns the best clique of s found by this subtree (nil if the
// subtree was pruned or the search was aborted).
func (e *bbEngine) solve(s subgraph, depth int) []int {
	if !e.enter(depth) {
		return nil
	}

	// EVALUATE: ω(s) ∈ [|k|, c].
	r := rank(s)
	k := greedyClique(s, r)
	e.inc.offer(k)
	_, c := greedyColoring(s, r)
	if len(k) == c {
		e.boundHits.Add(1)

		return k
	}
	if e.opts.IncumbentPruning && int64(c) <= e.inc.size.Load() {
		e.pruned.Add(1)

		return nil
	}

	// BRANCH.
	exclude, include, pivot, ok := branch(s, r)
	if !ok {
		// No pivot: s is complete and is its own maximum clique.
		e.fallbacks.Add(1)
		all := s.members()
		e.inc.offer(all)

		return all
	}
	e.branches.Add(1)
	if v := e.log.V(2); v.Enabled() {
		v.Info("branch", "depth", depth, "pivot", s.a.ids[pivot],
			"vertices", s.size(), "lower", len(k), "upper", c)
	}

	var a, b []int
	if depth < e.opts.ParallelDepth {
		var wg conc.WaitGroup
		wg.Go(func() { a = e.solve(exclude, depth+1) })
		b = e.solve(include, depth+1)
		wg.Wait()
	} else {
		a = e.solve(exclude, depth+1)
		b = e.solve(include, depth+1)
	}
	if len(b) > len(a) {
		return b
	}

	return a
}

func (e *bbEngine) stats() Stats {
	return Stats{
		Nodes:             e.nodes.Load(),
		BoundHits:         e.boundHits.Load(),
		Branches:          e.branches.Load(),
		Pruned:            e.pruned.Load(),
		CompleteFallbacks: e.fallbacks.Load(),
		MaxDepth:          int(e.maxDepth.Load()),
	}
}

// MaxClique returns a maximum clique of g. It is MaxCliqueContext with
// context.Background().
func MaxClique(g *core.Graph, opts ...Option) (Result, error) {
	return MaxCliqueContext(context.Background(), g, opts...)
}

// MaxCliqueContext returns a maximum clique of g, honoring ctx cancellation.
//
// Returns:
//   - Result with Optimal == true and Size == ω(g) on success.
//   - On ErrTimeLimit, ErrNodeLimit or cancellation: the best clique found so
//     far (always a valid clique, possibly empty), Optimal == false, and the error.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrBadTimeLimit, ErrBadMaxNodes, ErrBadParallelDepth for invalid options.
//   - ErrTimeLimit, ErrNodeLimit, or a wrapped ctx.Err() when the search is cut short.
func MaxCliqueContext(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}

	e := &bbEngine{ctx: ctx, log: cfg.Logger.WithName("clique"), opts: cfg}
	if cfg.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(cfg.TimeLimit)
	}

	a := newArena(g)
	e.log.V(1).Info("search started", "vertices", len(a.ids), "edges", g.EdgeCount(),
		"parallelDepth", cfg.ParallelDepth, "pruning", cfg.IncumbentPruning)

	best := e.solve(a.full(), 0)
	if inc := e.inc.snapshot(); len(inc) > len(best) {
		best = inc
	}

	res := Result{Clique: a.names(best), Size: len(best), Stats: e.stats()}
	if e.stopped.Load() {
		e.log.V(1).Info("search aborted", "reason", e.stopErr.Error(),
			"size", res.Size, "nodes", res.Stats.Nodes)

		return res, e.stopErr
	}
	res.Optimal = true
	e.log.V(1).Info("search finished", "size", res.Size, "nodes", res.Stats.Nodes,
		"branches", res.Stats.Branches, "pruned", res.Stats.Pruned, "maxDepth", res.Stats.MaxDepth)

	return res, nil
}
