// SPDX-License-Identifier: MIT
// File: types.go
// Role: result, statistics, and configuration types of the maximum-clique solver.
//
// Options:
//
//	– TimeLimit:        soft wall-clock budget; exceeded ⇒ ErrTimeLimit (0 = none).
//	– MaxNodes:         cap on evaluated subproblems; exceeded ⇒ ErrNodeLimit (0 = none).
//	– ParallelDepth:    recursion levels whose exclude-branch runs in its own goroutine (0 = sequential).
//	– IncumbentPruning: abandon subproblems whose coloring bound cannot beat the best clique so far.
//	– Logger:           logr sink; V(1) run summary, V(2) per-branch decisions.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrCompleteGraph     if Branch is asked to split a graph without a non-universal vertex.
//	– ErrTimeLimit         if TimeLimit elapsed before the search finished.
//	– ErrNodeLimit         if MaxNodes subproblems were evaluated before the search finished.
//	– ErrBadTimeLimit      if TimeLimit < 0.
//	– ErrBadMaxNodes       if MaxNodes < 0.
//	– ErrBadParallelDepth  if ParallelDepth < 0.

package clique

import (
	"errors"
	"time"

	"github.com/go-logr/logr"
)

// Sentinel errors returned by the clique package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrCompleteGraph indicates that every vertex is universal, so no pivot exists.
	ErrCompleteGraph = errors.New("clique: graph has no non-universal vertex to branch on")

	// ErrTimeLimit indicates the soft time budget was exhausted.
	ErrTimeLimit = errors.New("clique: time limit exceeded")

	// ErrNodeLimit indicates the subproblem budget was exhausted.
	ErrNodeLimit = errors.New("clique: node limit exceeded")

	// ErrBadTimeLimit indicates a negative TimeLimit.
	ErrBadTimeLimit = errors.New("clique: TimeLimit must be non-negative")

	// ErrBadMaxNodes indicates a negative MaxNodes.
	ErrBadMaxNodes = errors.New("clique: MaxNodes must be non-negative")

	// ErrBadParallelDepth indicates a negative ParallelDepth.
	ErrBadParallelDepth = errors.New("clique: ParallelDepth must be non-negative")
)

// Result holds the outcome of MaxClique.
type Result struct {
	// Clique lists the vertex IDs of the clique, sorted ascending.
	// It is always a clique of the input graph, even when an error is returned.
	Clique []string

	// Size is len(Clique).
	Size int

	// Optimal is true when the search finished, i.e. Size == ω(G).
	Optimal bool

	// Stats describes the search tree that produced the answer.
	Stats Stats
}

// Stats counts search events. Under parallel search the counters are exact;
// only their interleaving differs between runs.
type Stats struct {
	Nodes             int64 // subproblems evaluated (EVALUATE steps)
	BoundHits         int64 // subproblems closed by |K| == coloring bound
	Branches          int64 // subproblems split in two
	Pruned            int64 // subproblems abandoned by the incumbent bound
	CompleteFallbacks int64 // subproblems answered by the whole vertex set (no pivot)
	MaxDepth          int   // deepest recursion level reached (root = 0)
}

// Options configures MaxClique.
type Options struct {
	TimeLimit        time.Duration
	MaxNodes         int64
	ParallelDepth    int
	IncumbentPruning bool
	Logger           logr.Logger
}

// Option represents a functional option for configuring MaxClique.
type Option func(*Options)

// WithTimeLimit sets a soft wall-clock budget checked once per subproblem.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithMaxNodes caps the number of evaluated subproblems.
func WithMaxNodes(n int64) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithParallelDepth runs the exclude-branch of every subproblem shallower
// than depth in its own goroutine. Depth d spawns at most 2^d-1 goroutines.
func WithParallelDepth(depth int) Option {
	return func(o *Options) { o.ParallelDepth = depth }
}

// WithIncumbentPruning toggles pruning against the best clique found so far.
// Disabling it reproduces the plain bound-equality recursion node for node.
func WithIncumbentPruning(enabled bool) Option {
	return func(o *Options) { o.IncumbentPruning = enabled }
}

// WithLogger routes solver logs to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the configuration used when no Option is passed.
//
// Defaults:
//   - TimeLimit:        0 (no deadline).
//   - MaxNodes:         0 (no cap).
//   - ParallelDepth:    0 (sequential).
//   - IncumbentPruning: true.
//   - Logger:           logr.Discard().
func DefaultOptions() Options {
	return Options{
		IncumbentPruning: true,
		Logger:           logr.Discard(),
	}
}

// validate checks numeric knobs and returns the first violated sentinel.
func (o Options) validate() error {
	switch {
	case o.TimeLimit < 0:
		return ErrBadTimeLimit
	case o.MaxNodes < 0:
		return ErrBadMaxNodes
	case o.ParallelDepth < 0:
		return ErrBadParallelDepth
	}

	return nil
}
