package pagerank

// ConvergenceStats accumulates the L1 difference between consecutive rank
// vectors over a whole run.
type ConvergenceStats struct {
	MaxDiff   float64 `json:"max_diff"`
	MinDiff   float64 `json:"min_diff"`
	TotalDiff float64 `json:"total_diff"`
	observed  bool    // MinDiff still holds the sentinel while false
}

// NewConvergenceStats starts MinDiff at 1.0; the first observation
// overwrites it, whatever its value.
func NewConvergenceStats() ConvergenceStats {
	return ConvergenceStats{MinDiff: 1.0}
}

func (s *ConvergenceStats) Observe(diff float64) {
	if diff > s.MaxDiff {
		s.MaxDiff = diff
	}
	if !s.observed || diff < s.MinDiff {
		s.MinDiff = diff
	}
	s.observed = true
	s.TotalDiff += diff
}

// MeanDiff is 0 when no iteration ran
func (s ConvergenceStats) MeanDiff(iterations int) float64 {
	if iterations == 0 {
		return 0
	}
	return s.TotalDiff / float64(iterations)
}
