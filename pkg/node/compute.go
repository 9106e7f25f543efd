package node

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/lioia/dense-pagerank/pkg/graph"
	"github.com/lioia/dense-pagerank/pkg/pagerank"
	"github.com/lioia/dense-pagerank/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/xerrors"
)

var ErrInvalidRequest = errors.New("node: invalid request")

// Request overrides the node configuration for a single run.
// Zero fields keep the configured value.
type Request struct {
	Generator     string  `json:"generator"`
	Order         int     `json:"order"`
	Damping       float64 `json:"damping"`
	BudgetMs      int64   `json:"budget_ms"`
	MaxIterations int     `json:"max_iterations"`
	Workers       int     `json:"workers"`
	Graph         string  `json:"graph"` // Inline edge list; overrides Generator
}

func (r Request) apply(config utils.Config) (utils.Config, error) {
	if r.Generator != "" {
		config.Generator = r.Generator
		config.Graph = ""
	}
	if r.Order != 0 {
		config.Order = r.Order
	}
	if r.Damping != 0 {
		config.Damping = r.Damping
	}
	if r.BudgetMs > math.MaxInt64/int64(time.Millisecond) {
		return config, xerrors.Errorf("budget_ms %d is too large: %w", r.BudgetMs, ErrInvalidRequest)
	}
	if r.BudgetMs != 0 {
		config.Budget = time.Duration(r.BudgetMs) * time.Millisecond
	}
	if r.MaxIterations != 0 {
		config.MaxIterations = r.MaxIterations
	}
	if r.Workers != 0 {
		config.Workers = r.Workers
	}
	if err := config.Validate(); err != nil {
		return config, xerrors.Errorf("%v: %w", err, ErrInvalidRequest)
	}
	return config, nil
}

// LoadAdjacency loads config.Graph when set, otherwise runs the configured
// generator. The second value describes where the graph came from.
func LoadAdjacency(config utils.Config) (*graph.Adjacency, string, error) {
	if config.Graph != "" {
		adj, err := graph.LoadGraphResource(config.Graph)
		return adj, config.Graph, err
	}
	adj, err := graph.Generate(config.Generator, config.Order)
	return adj, config.Generator, err
}

func Options(config utils.Config) pagerank.Options {
	return pagerank.Options{
		Damping:       config.Damping,
		Budget:        config.Budget,
		MaxIterations: config.MaxIterations,
		Workers:       config.Workers,
	}
}

// Run computes the ranks of adj and wraps them into a new report
func Run(ctx context.Context, config utils.Config, adj *graph.Adjacency, source string) (*Report, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	utils.NodeLog("node", "Starting run %s on %s (%d vertices, budget %s)", id, source, adj.Order(), config.Budget)
	result, err := pagerank.Compute(ctx, adj, Options(config))
	if err != nil {
		return nil, xerrors.Errorf("run %s: %w", id, err)
	}
	return NewReport(id, source, result), nil
}

// Compute serves a request: the run is stored and, when a publisher is
// configured, published. Publishing failures are only logged.
func (n *Node) Compute(ctx context.Context, req Request) (*Report, error) {
	if req.Order > n.MaxOrder {
		return nil, xerrors.Errorf("order %d exceeds %d: %w", req.Order, n.MaxOrder, ErrInvalidRequest)
	}
	config, err := req.apply(n.Config)
	if err != nil {
		return nil, err
	}
	var adj *graph.Adjacency
	var source string
	if req.Graph != "" {
		adj, err = graph.LoadGraphFromBytes([]byte(req.Graph))
		if err != nil {
			return nil, xerrors.Errorf("%v: %w", err, ErrInvalidRequest)
		}
		if adj.Order() > n.MaxOrder {
			return nil, xerrors.Errorf("inline graph of order %d exceeds %d: %w", adj.Order(), n.MaxOrder, ErrInvalidRequest)
		}
		source = "inline"
	} else {
		adj, source, err = LoadAdjacency(config)
		if err != nil {
			return nil, err
		}
	}

	if err := n.slots.Acquire(ctx, 1); err != nil {
		return nil, xerrors.Errorf("waiting for a free run slot: %w", err)
	}
	report, err := Run(ctx, config, adj, source)
	n.slots.Release(1)
	if err != nil {
		return nil, err
	}
	n.runs.put(report)
	if n.Publisher != nil {
		// The request context may already be gone
		if err := n.Publisher.Publish(context.Background(), report); err != nil {
			utils.WarnLog("node", "Could not publish report %s: %v", report.Id, err)
		}
	}
	return report, nil
}

func (n *Node) Report(id string) (*Report, bool) {
	return n.runs.get(id)
}

func isClientError(err error) bool {
	for _, target := range []error{
		ErrInvalidRequest,
		graph.ErrInvalidOrder,
		graph.ErrOrderTooLarge,
		graph.ErrUnknownGenerator,
		graph.ErrEmptyEdgeList,
		pagerank.ErrInvalidDamping,
		pagerank.ErrInvalidBudget,
		pagerank.ErrEmptyGraph,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
