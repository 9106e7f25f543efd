package node

import (
	"fmt"
	"io"

	"github.com/lioia/dense-pagerank/pkg/pagerank"
	"gonum.org/v1/gonum/floats"
	"google.golang.org/protobuf/types/known/structpb"
)

// Report is the outcome of one computation, as printed, served and published
type Report struct {
	Id             string    `json:"id"`
	Source         string    `json:"source"` // Generator name or graph resource
	Order          int       `json:"order"`
	Iterations     int       `json:"iterations"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	Stop           string    `json:"stop"`
	MaxDiff        float64   `json:"max_diff"`
	MinDiff        float64   `json:"min_diff"`
	TotalDiff      float64   `json:"total_diff"`
	DriftWarnings  int       `json:"drift_warnings"`
	Sum            float64   `json:"sum"`
	Ranks          []float64 `json:"ranks"`
}

func NewReport(id, source string, result *pagerank.Result) *Report {
	return &Report{
		Id:             id,
		Source:         source,
		Order:          len(result.Ranks),
		Iterations:     result.Iterations,
		ElapsedSeconds: result.Elapsed.Seconds(),
		Stop:           result.Stop.String(),
		MaxDiff:        result.Stats.MaxDiff,
		MinDiff:        result.Stats.MinDiff,
		TotalDiff:      result.Stats.TotalDiff,
		DriftWarnings:  result.DriftWarnings,
		Sum:            floats.Sum(result.Ranks),
		Ranks:          result.Ranks,
	}
}

// PrintReport prints every `every`-th rank (none when every is 0) and the
// summary of the run
func PrintReport(w io.Writer, r *Report, every int) {
	fmt.Fprintf(w, "%d iterations achieved in %.2f seconds\n", r.Iterations, r.ElapsedSeconds)
	if every > 0 {
		for v := 0; v < len(r.Ranks); v += every {
			fmt.Fprintf(w, "PageRank of vertex %d: %.6f\n", v, r.Ranks[v])
		}
	}
	fmt.Fprintf(w, "Sum of all pageranks = %.12f, total diff = %.12f, max diff = %.12f and min diff = %.12f.\n",
		r.Sum, r.TotalDiff, r.MaxDiff, r.MinDiff)
}

// Message converts the report into a protobuf Struct for the result queue
func (r *Report) Message() (*structpb.Struct, error) {
	ranks := make([]any, len(r.Ranks))
	for i, rank := range r.Ranks {
		ranks[i] = rank
	}
	return structpb.NewStruct(map[string]any{
		"id":              r.Id,
		"source":          r.Source,
		"order":           r.Order,
		"iterations":      r.Iterations,
		"elapsed_seconds": r.ElapsedSeconds,
		"stop":            r.Stop,
		"max_diff":        r.MaxDiff,
		"min_diff":        r.MinDiff,
		"total_diff":      r.TotalDiff,
		"drift_warnings":  r.DriftWarnings,
		"sum":             r.Sum,
		"ranks":           ranks,
	})
}
