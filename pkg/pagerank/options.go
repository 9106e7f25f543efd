package pagerank

import (
	"math"
	"runtime"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

const (
	DefaultDamping = 0.85
	DefaultBudget  = 10 * time.Second
	// Safety ceiling only: runs are bounded by the budget
	DefaultMaxIterations = math.MaxInt
	// A rank vector whose sum drifts this far from 1 is reported
	DriftTolerance = 1e-12
)

// Options configures the power-iteration engine.
type Options struct {
	// Damping is the probability that a random surfer follows an outgoing
	// link instead of teleporting to a random vertex.
	Damping float64

	// Budget bounds the wall-clock time of the iteration loop. An iteration
	// is not started when the previous one suggests it would overshoot.
	Budget time.Duration

	// MaxIterations stops the loop regardless of the budget. If not
	// specified, DefaultMaxIterations is used.
	MaxIterations int

	// Workers is the number of goroutines sharing the rows of each
	// iteration. If not specified, one per CPU is used.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Budget:        DefaultBudget,
		MaxIterations: DefaultMaxIterations,
		Workers:       runtime.NumCPU(),
	}
}

// validate checks the options and sets the default values where required.
// Workers is capped at order so that no worker gets an empty range.
func (o *Options) validate(order int) error {
	var err error
	if o.Damping <= 0 || o.Damping >= 1 {
		err = multierror.Append(err, xerrors.Errorf("damping %v: %w", o.Damping, ErrInvalidDamping))
	}
	if o.Budget <= 0 {
		err = multierror.Append(err, xerrors.Errorf("budget %v: %w", o.Budget, ErrInvalidBudget))
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > order {
		o.Workers = order
	}
	return err
}
