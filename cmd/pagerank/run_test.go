package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	t.Setenv("RABBIT_HOST", "")
	output := filepath.Join(t.TempDir(), "ranks.txt")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"run",
		"--generator", "nice",
		"--order", "4",
		"--budget", "5s",
		"--max-iterations", "3",
		"--sample", "1",
		"--output", output,
	})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "3 iterations achieved in")
	for _, line := range []string{
		"PageRank of vertex 0: 0.250000",
		"PageRank of vertex 3: 0.250000",
		"Sum of all pageranks = 1.000000000000",
		"Total time taken:",
	} {
		assert.Contains(t, out.String(), line)
	}

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Node 0 with rank 0.250000\n"+
		"Node 1 with rank 0.250000\n"+
		"Node 2 with rank 0.250000\n"+
		"Node 3 with rank 0.250000\n", string(contents))
}
