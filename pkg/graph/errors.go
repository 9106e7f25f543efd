package graph

import "errors"

// MaxOrder bounds the number of vertices so that a dense N×N float64
// transition matrix stays below 2 GiB.
const MaxOrder = 16384

// MaxRenderOrder is the largest graph Render accepts.
const MaxRenderOrder = 64

var (
	ErrInvalidOrder     = errors.New("graph: order must be positive")
	ErrOrderTooLarge    = errors.New("graph: order too large")
	ErrUnknownGenerator = errors.New("graph: unknown generator")
	ErrEmptyEdgeList    = errors.New("graph: edge list contains no edges")
	ErrTooLargeToRender = errors.New("graph: too many vertices to render")
)
