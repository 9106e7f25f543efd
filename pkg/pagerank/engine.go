package pagerank

import (
	"context"
	"math"
	"time"

	"github.com/lioia/dense-pagerank/pkg/graph"
	"github.com/lioia/dense-pagerank/pkg/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/floats"
)

// StopReason tells which exit condition ended a run
type StopReason int

const (
	StopBudget    StopReason = iota // Elapsed time reached the budget
	StopPredicted                   // The next iteration would have overshot the budget
	StopCeiling                     // MaxIterations reached
	StopCancelled                   // Context cancelled between two iterations
)

func (r StopReason) String() string {
	switch r {
	case StopBudget:
		return "budget"
	case StopPredicted:
		return "predicted"
	case StopCeiling:
		return "ceiling"
	case StopCancelled:
		return "cancelled"
	}
	return "undefined"
}

type Result struct {
	Ranks         []float64        // Final rank vector, one entry per vertex
	Stats         ConvergenceStats // Diff accumulators over all iterations
	Iterations    int              // Completed iterations
	Elapsed       time.Duration    // Time spent in the iteration loop
	LastIteration time.Duration    // Duration of the last completed iteration
	Stop          StopReason       // Why the loop ended
	DriftWarnings int              // Iterations whose rank sum drifted from 1
}

// Engine runs the time-boxed power iteration over a transition matrix.
// An Engine holds no per-run state and can be run several times.
type Engine struct {
	transition *Transition
	opts       Options
	ranges     []span           // Rows owned by each worker
	now        func() time.Time // Replaced in tests
}

type span struct {
	lo, hi int
}

func NewEngine(t *Transition, opts Options) (*Engine, error) {
	if t == nil {
		return nil, ErrEmptyGraph
	}
	if opts.Damping == 0 {
		opts.Damping = t.Damping()
	} else if opts.Damping != t.Damping() {
		return nil, xerrors.Errorf("damping %v differs from the transition matrix (%v): %w",
			opts.Damping, t.Damping(), ErrInvalidDamping)
	}
	if err := opts.validate(t.Order()); err != nil {
		return nil, xerrors.Errorf("engine options validation failed: %w", err)
	}
	return &Engine{
		transition: t,
		opts:       opts,
		ranges:     partition(t.Order(), opts.Workers),
		now:        time.Now,
	}, nil
}

func (e *Engine) Options() Options {
	return e.opts
}

// Run iterates until one of the exit conditions holds. The conditions are
// only checked between iterations: a started iteration always completes.
// Convergence is never an exit condition.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	n := e.transition.Order()
	rank := make([]float64, n)
	next := make([]float64, n)
	// Initialise all vertices to 1/n
	for i := range rank {
		rank[i] = 1.0 / float64(n)
	}
	// Teleportation term, added once per vertex instead of a separate pass
	teleport := (1.0 - e.opts.Damping) / float64(n)

	result := &Result{Stats: NewConvergenceStats()}
	start := e.now()
	var elapsed, perIteration time.Duration
	for {
		stop, done := e.exit(ctx, elapsed, perIteration, result.Iterations)
		if done {
			result.Stop = stop
			break
		}
		iterationStart := e.now()

		if err := e.step(rank, next, teleport); err != nil {
			return nil, err
		}
		diff := floats.Distance(next, rank, 1)
		result.Stats.Observe(diff)

		// Swap the buffers
		rank, next = next, rank

		// Diagnostic only: drift never stops the run
		if total := floats.Sum(rank); math.Abs(total-1.0) >= DriftTolerance {
			utils.WarnLog("engine", "Iteration %d: sum of all pageranks is not 1 but %.12f", result.Iterations, total)
			result.DriftWarnings++
		}

		iterationEnd := e.now()
		elapsed = iterationEnd.Sub(start)
		perIteration = iterationEnd.Sub(iterationStart)
		result.Iterations++
	}
	result.Ranks = rank
	result.Elapsed = elapsed
	result.LastIteration = perIteration
	utils.NodeLog("engine", "%d iterations achieved in %.2f seconds (stop: %s)",
		result.Iterations, elapsed.Seconds(), result.Stop)
	return result, nil
}

func (e *Engine) exit(ctx context.Context, elapsed, perIteration time.Duration, iterations int) (StopReason, bool) {
	switch {
	case elapsed >= e.opts.Budget:
		return StopBudget, true
	case elapsed+perIteration >= e.opts.Budget:
		return StopPredicted, true
	case iterations >= e.opts.MaxIterations:
		return StopCeiling, true
	case ctx.Err() != nil:
		return StopCancelled, true
	}
	return 0, false
}

// step computes next from rank. Workers write disjoint rows of next and
// only read rank, so they need no locking; Wait is the only barrier.
func (e *Engine) step(rank, next []float64, teleport float64) error {
	if len(e.ranges) == 1 {
		e.rows(e.ranges[0], rank, next, teleport)
		return nil
	}
	var g errgroup.Group
	for _, s := range e.ranges {
		s := s
		g.Go(func() error {
			e.rows(s, rank, next, teleport)
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) rows(s span, rank, next []float64, teleport float64) {
	for i := s.lo; i < s.hi; i++ {
		next[i] = teleport + floats.Dot(e.transition.Row(i), rank)
	}
}

// partition splits [0, n) into `workers` contiguous ranges whose sizes
// differ by at most one
func partition(n, workers int) []span {
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	ranges := make([]span, workers)
	size, extra := n/workers, n%workers
	lo := 0
	for w := range ranges {
		hi := lo + size
		if w < extra {
			hi++
		}
		ranges[w] = span{lo: lo, hi: hi}
		lo = hi
	}
	return ranges
}

// Compute builds the transition matrix of adj and runs the engine on it
func Compute(ctx context.Context, adj *graph.Adjacency, opts Options) (*Result, error) {
	if opts.Damping == 0 {
		opts.Damping = DefaultDamping
	}
	t, err := BuildTransition(adj, opts.Damping)
	if err != nil {
		return nil, err
	}
	e, err := NewEngine(t, opts)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}
