package pagerank

import (
	"github.com/lioia/dense-pagerank/pkg/graph"
	"github.com/lioia/dense-pagerank/pkg/utils"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

// Transition is the damped transition matrix of a graph.
// Row i holds the contributions flowing into vertex i: T[i][j] is
// damping/outdegree(j) if j links to i, 0 otherwise. Rows are contiguous,
// so the rank update of vertex i is a unit-stride dot product.
type Transition struct {
	order   int
	damping float64
	data    *mat.Dense
}

// BuildTransition converts adj into its transition matrix.
// Vertices without outgoing edges get an all-zero column: their rank is
// not redistributed.
func BuildTransition(adj *graph.Adjacency, damping float64) (*Transition, error) {
	if adj == nil || adj.Order() == 0 {
		return nil, ErrEmptyGraph
	}
	if damping <= 0 || damping >= 1 {
		return nil, xerrors.Errorf("damping %v: %w", damping, ErrInvalidDamping)
	}
	n := adj.Order()

	// Weight of every outgoing edge of each source vertex
	weights := make([]float64, n)
	for j, degree := range adj.OutDegrees() {
		if degree > 0 {
			weights[j] = damping / float64(degree)
		}
	}

	data := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		if weights[j] == 0 {
			continue
		}
		for i, edge := range adj.Row(j) {
			if edge {
				data.Set(i, j, weights[j])
			}
		}
	}
	utils.NodeLog("transition", "Built %dx%d transition matrix", n, n)
	return &Transition{order: n, damping: damping, data: data}, nil
}

func (t *Transition) Order() int {
	return t.order
}

func (t *Transition) Damping() float64 {
	return t.damping
}

func (t *Transition) At(i, j int) float64 {
	return t.data.At(i, j)
}

// Row returns the contiguous row of target vertex i. It aliases the
// matrix and must not be modified.
func (t *Transition) Row(i int) []float64 {
	return t.data.RawRowView(i)
}

// Equal reports whether both matrices hold exactly the same values
func (t *Transition) Equal(other *Transition) bool {
	return other != nil && t.order == other.order && t.damping == other.damping && mat.Equal(t.data, other.data)
}
