package pagerank

import (
	"testing"

	"github.com/lioia/dense-pagerank/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 0 -> 1, 0 -> 2, 1 -> 2; vertex 2 has no outgoing edge
func danglingGraph(t *testing.T) *graph.Adjacency {
	t.Helper()
	adj, err := graph.NewAdjacency(3)
	require.NoError(t, err)
	adj.SetEdge(0, 1)
	adj.SetEdge(0, 2)
	adj.SetEdge(1, 2)
	return adj
}

func TestBuildTransition_Values(t *testing.T) {
	tr, err := BuildTransition(danglingGraph(t), 0.85)
	require.NoError(t, err)

	expected := [][]float64{
		{0, 0, 0},
		{0.85 / 2, 0, 0},
		{0.85 / 2, 0.85, 0},
	}
	for i := range expected {
		for j := range expected[i] {
			assert.Equal(t, expected[i][j], tr.At(i, j), "T[%d][%d]", i, j)
		}
		assert.Equal(t, expected[i], tr.Row(i))
	}
}

func TestBuildTransition_ColumnSums(t *testing.T) {
	const d = 0.85
	tests := []struct {
		name string
		adj  *graph.Adjacency
	}{
		{"sneaky", mustGenerate(t, "sneaky", 20)},
		{"nice", mustGenerate(t, "nice", 20)},
		{"dangling", danglingGraph(t)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := BuildTransition(tc.adj, d)
			require.NoError(t, err)
			for j := 0; j < tr.Order(); j++ {
				sum := 0.0
				for i := 0; i < tr.Order(); i++ {
					sum += tr.At(i, j)
				}
				if tc.adj.OutDegree(j) > 0 {
					assert.InDelta(t, d, sum, 1e-12, "column %d", j)
				} else {
					assert.Zero(t, sum, "column %d", j)
				}
			}
		})
	}
}

// The hoisted out-degree table must give the same matrix as counting the
// out-degree again for every cell.
func TestBuildTransition_MatchesNaive(t *testing.T) {
	const d = 0.85
	adj := mustGenerate(t, "sneaky", 30)
	tr, err := BuildTransition(adj, d)
	require.NoError(t, err)

	n := adj.Order()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			expected := 0.0
			if adj.HasEdge(j, i) {
				outdegree := 0
				for k := 0; k < n; k++ {
					if adj.HasEdge(j, k) {
						outdegree++
					}
				}
				expected = d / float64(outdegree)
			}
			require.Equal(t, expected, tr.At(i, j), "T[%d][%d]", i, j)
		}
	}
}

func TestBuildTransition_Idempotent(t *testing.T) {
	adj := mustGenerate(t, "sneaky", 50)
	first, err := BuildTransition(adj, 0.85)
	require.NoError(t, err)
	second, err := BuildTransition(adj, 0.85)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	other, err := BuildTransition(adj, 0.5)
	require.NoError(t, err)
	assert.False(t, first.Equal(other))
	assert.False(t, first.Equal(nil))
}

func TestBuildTransition_SingleVertex(t *testing.T) {
	adj, err := graph.NewAdjacency(1)
	require.NoError(t, err)
	tr, err := BuildTransition(adj, 0.85)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, tr.Row(0))
}

func TestBuildTransition_Errors(t *testing.T) {
	_, err := BuildTransition(nil, 0.85)
	assert.ErrorIs(t, err, ErrEmptyGraph)

	adj := danglingGraph(t)
	for _, d := range []float64{0, 1, -0.5, 1.5} {
		_, err = BuildTransition(adj, d)
		assert.ErrorIs(t, err, ErrInvalidDamping, "damping %v", d)
	}
}

func mustGenerate(t testing.TB, name string, order int) *graph.Adjacency {
	t.Helper()
	adj, err := graph.Generate(name, order)
	require.NoError(t, err)
	return adj
}
