package pagerank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvergenceStats(t *testing.T) {
	stats := NewConvergenceStats()
	assert.Equal(t, ConvergenceStats{MaxDiff: 0, MinDiff: 1, TotalDiff: 0}, stats)
	assert.Zero(t, stats.MeanDiff(0))

	for _, diff := range []float64{0.5, 0.25, 0.75, 0.125} {
		stats.Observe(diff)
	}
	assert.Equal(t, 0.75, stats.MaxDiff)
	assert.Equal(t, 0.125, stats.MinDiff)
	assert.Equal(t, 1.625, stats.TotalDiff)
	assert.Equal(t, 1.625/4, stats.MeanDiff(4))
}

func TestConvergenceStats_FirstObservationReplacesSentinel(t *testing.T) {
	stats := NewConvergenceStats()
	stats.Observe(1.5)
	assert.Equal(t, 1.5, stats.MaxDiff)
	assert.Equal(t, 1.5, stats.MinDiff)

	stats.Observe(2)
	assert.Equal(t, 2.0, stats.MaxDiff)
	assert.Equal(t, 1.5, stats.MinDiff)
	assert.Equal(t, 3.5, stats.TotalDiff)
}
