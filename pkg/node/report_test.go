package node

import (
	"bytes"
	"testing"
	"time"

	"github.com/lioia/dense-pagerank/pkg/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func testReport() *Report {
	return NewReport("abc", "sneaky", &pagerank.Result{
		Ranks:      []float64{0.5, 0.25, 0.125, 0.125},
		Stats:      pagerank.ConvergenceStats{MaxDiff: 0.5, MinDiff: 0.25, TotalDiff: 0.75},
		Iterations: 2,
		Elapsed:    1500 * time.Millisecond,
		Stop:       pagerank.StopPredicted,
	})
}

func TestNewReport(t *testing.T) {
	r := testReport()
	assert.Equal(t, 4, r.Order)
	assert.Equal(t, 1.5, r.ElapsedSeconds)
	assert.Equal(t, "predicted", r.Stop)
	assert.Equal(t, 1.0, r.Sum)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, testReport(), 2)
	assert.Equal(t, "2 iterations achieved in 1.50 seconds\n"+
		"PageRank of vertex 0: 0.500000\n"+
		"PageRank of vertex 2: 0.125000\n"+
		"Sum of all pageranks = 1.000000000000, total diff = 0.750000000000, "+
		"max diff = 0.500000000000 and min diff = 0.250000000000.\n", buf.String())

	buf.Reset()
	PrintReport(&buf, testReport(), 0)
	assert.NotContains(t, buf.String(), "PageRank of vertex")
}

func TestReport_Message(t *testing.T) {
	msg, err := testReport().Message()
	require.NoError(t, err)

	data, err := protobuf.Marshal(msg)
	require.NoError(t, err)
	var decoded structpb.Struct
	require.NoError(t, protobuf.Unmarshal(data, &decoded))

	fields := decoded.AsMap()
	assert.Equal(t, "abc", fields["id"])
	assert.Equal(t, "predicted", fields["stop"])
	assert.Equal(t, float64(2), fields["iterations"])
	assert.Equal(t, []any{0.5, 0.25, 0.125, 0.125}, fields["ranks"])
}
