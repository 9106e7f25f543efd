package graph

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Adjacency is a square, row-major adjacency matrix.
// If an edge links vertex A to vertex B, then HasEdge(A, B) is true.
// Redundant edges are stored once.
type Adjacency struct {
	order int    // Number of vertices
	edges []bool // edges[from*order+to]
}

func NewAdjacency(order int) (*Adjacency, error) {
	if order <= 0 {
		return nil, xerrors.Errorf("order %d: %w", order, ErrInvalidOrder)
	}
	if order > MaxOrder {
		return nil, xerrors.Errorf("order %d exceeds %d: %w", order, MaxOrder, ErrOrderTooLarge)
	}
	return &Adjacency{
		order: order,
		edges: make([]bool, order*order),
	}, nil
}

func (a *Adjacency) Order() int {
	return a.order
}

// SetEdge adds the edge from -> to. Indexes out of range panic, like a slice.
func (a *Adjacency) SetEdge(from, to int) {
	a.edges[a.index(from, to)] = true
}

func (a *Adjacency) HasEdge(from, to int) bool {
	return a.edges[a.index(from, to)]
}

// OutDegree counts the outgoing edges of v.
func (a *Adjacency) OutDegree(v int) int {
	degree := 0
	for _, edge := range a.Row(v) {
		if edge {
			degree++
		}
	}
	return degree
}

// OutDegrees computes every out-degree in a single pass over the matrix.
func (a *Adjacency) OutDegrees() []int {
	degrees := make([]int, a.order)
	for v := range degrees {
		degrees[v] = a.OutDegree(v)
	}
	return degrees
}

// Row returns the outgoing edges of v. The slice aliases the matrix and
// must not be modified.
func (a *Adjacency) Row(v int) []bool {
	return a.edges[v*a.order : (v+1)*a.order]
}

// Edges returns the number of edges in the graph.
func (a *Adjacency) Edges() int {
	count := 0
	for _, edge := range a.edges {
		if edge {
			count++
		}
	}
	return count
}

func (a *Adjacency) index(from, to int) int {
	if from < 0 || from >= a.order || to < 0 || to >= a.order {
		panic(fmt.Sprintf("graph: edge %d -> %d out of range [0, %d)", from, to, a.order))
	}
	return from*a.order + to
}
