package pagerank

import "errors"

var (
	ErrEmptyGraph     = errors.New("pagerank: empty graph")
	ErrInvalidDamping = errors.New("pagerank: damping must be in the range (0, 1)")
	ErrInvalidBudget  = errors.New("pagerank: budget must be positive")
)
