package graph

import (
	"sort"
	"time"

	"github.com/lioia/dense-pagerank/pkg/utils"
	"golang.org/x/xerrors"
)

type Generator func(order int) (*Adjacency, error)

var generators = map[string]Generator{
	"nice":   Nice,
	"sneaky": Sneaky,
}

// Generators returns the registered generator names, sorted
func Generators() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Generate(name string, order int) (*Adjacency, error) {
	generator, ok := generators[name]
	if !ok {
		return nil, xerrors.Errorf("%q (available: %v): %w", name, Generators(), ErrUnknownGenerator)
	}
	start := time.Now()
	adj, err := generator(order)
	if err != nil {
		return nil, err
	}
	utils.NodeLog("graph", "%.2f seconds to generate the %s graph", time.Since(start).Seconds(), name)
	return adj, nil
}

// Nice is the complete graph without self-loops: every vertex ends up
// with the same rank
func Nice(order int) (*Adjacency, error) {
	adj, err := NewAdjacency(order)
	if err != nil {
		return nil, err
	}
	for i := 0; i < order; i++ {
		for j := 0; j < order; j++ {
			if i != j {
				adj.SetEdge(i, j)
			}
		}
	}
	return adj, nil
}

// Sneaky is triangular: vertex i links to vertices 0..order-i-1,
// self-loops excluded
func Sneaky(order int) (*Adjacency, error) {
	adj, err := NewAdjacency(order)
	if err != nil {
		return nil, err
	}
	for i := 0; i < order; i++ {
		for j := 0; j < order-i; j++ {
			if i != j {
				adj.SetEdge(i, j)
			}
		}
	}
	return adj, nil
}
