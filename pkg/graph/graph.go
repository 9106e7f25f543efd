package graph

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/lioia/dense-pagerank/pkg/utils"
	"golang.org/x/xerrors"
)

// Write dumps one line per vertex into output
func Write(output string, ranks []float64) error {
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	for id, rank := range ranks {
		if _, err = fmt.Fprintf(w, "Node %d with rank %f\n", id, rank); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadGraphResource loads an edge list from an http(s) URL or a local file
func LoadGraphResource(resource string) (*Adjacency, error) {
	var bytes []byte
	// Check if it's a network resource or a local one
	if strings.HasPrefix(resource, "http") {
		resp, err := http.Get(resource)
		if err != nil {
			return nil, xerrors.Errorf("could not load network file at %s: %w", resource, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, xerrors.Errorf("could not load network file at %s: status %s", resource, resp.Status)
		}
		bytes, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, xerrors.Errorf("could not load body from request: %w", err)
		}
	} else {
		var err error
		bytes, err = os.ReadFile(resource)
		if err != nil {
			return nil, xerrors.Errorf("could not read graph at %s: %w", resource, err)
		}
	}
	adj, err := LoadGraphFromBytes(bytes)
	if err != nil {
		return nil, xerrors.Errorf("could not load graph from %s: %w", resource, err)
	}
	utils.NodeLog("graph", "Loaded %s: %d vertices, %d edges", resource, adj.Order(), adj.Edges())
	return adj, nil
}

// LoadGraphFromBytes parses `from to` (or `from,to`) lines with 0-based
// vertex ids. The order of the graph is the largest id + 1.
// Self-loops are dropped.
func LoadGraphFromBytes(contents []byte) (*Adjacency, error) {
	type edge struct{ from, to int }
	var edges []edge
	order := 0
	// Split file contents in lines (based on newline delimiter)
	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	for number, line := range lines {
		from, to, skip, err := convertLine(line)
		if err != nil {
			return nil, xerrors.Errorf("line %d: %w", number+1, err)
		}
		// Comment line -> no new edge to add
		if skip {
			continue
		}
		if from+1 > order {
			order = from + 1
		}
		if to+1 > order {
			order = to + 1
		}
		edges = append(edges, edge{from, to})
	}
	if len(edges) == 0 {
		return nil, ErrEmptyEdgeList
	}
	adj, err := NewAdjacency(order)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e.from != e.to {
			adj.SetEdge(e.from, e.to)
		}
	}
	return adj, nil
}

func convertLine(line string) (int, int, bool, error) {
	line = strings.TrimSpace(line)
	// Skip comment lines
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || line == "" {
		return 0, 0, true, nil
	}
	// Accept both space/tab and comma separated pairs
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(tokens) < 2 {
		return 0, 0, false, xerrors.Errorf("expected `from to`, got %q", line)
	}
	from, err := strconv.Atoi(tokens[0])
	if err != nil || from < 0 {
		return 0, 0, false, xerrors.Errorf("could not convert FromNode %s", tokens[0])
	}
	to, err := strconv.Atoi(tokens[1])
	if err != nil || to < 0 {
		return 0, 0, false, xerrors.Errorf("could not convert ToNode %s", tokens[1])
	}
	// Ids index an order of at most MaxOrder
	if from >= MaxOrder || to >= MaxOrder {
		return 0, 0, false, xerrors.Errorf("edge %d -> %d needs more than %d vertices: %w", from, to, MaxOrder, ErrOrderTooLarge)
	}
	return from, to, false, nil
}
