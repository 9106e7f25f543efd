package graph

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"golang.org/x/xerrors"
)

var formats = map[string]graphviz.Format{
	"dot": graphviz.XDOT,
	"svg": graphviz.SVG,
	"png": graphviz.PNG,
	"jpg": graphviz.JPG,
}

// Render draws adj with graphviz. When ranks is not nil every vertex is
// labelled with its rank.
func Render(adj *Adjacency, ranks []float64, format string, w io.Writer) error {
	if adj.Order() > MaxRenderOrder {
		return xerrors.Errorf("%d vertices (max %d): %w", adj.Order(), MaxRenderOrder, ErrTooLargeToRender)
	}
	f, ok := formats[format]
	if !ok {
		return xerrors.Errorf("unsupported render format %q", format)
	}
	if ranks != nil && len(ranks) != adj.Order() {
		return xerrors.Errorf("%d ranks for %d vertices", len(ranks), adj.Order())
	}

	g := graphviz.New()
	defer g.Close()
	graph, err := g.Graph()
	if err != nil {
		return xerrors.Errorf("create graph: %w", err)
	}
	defer graph.Close()

	nodes := make([]*cgraph.Node, adj.Order())
	for v := range nodes {
		n, err := graph.CreateNode(fmt.Sprintf("%d", v))
		if err != nil {
			return xerrors.Errorf("create node %d: %w", v, err)
		}
		if ranks != nil {
			n.SetLabel(fmt.Sprintf("%d\n%.4f", v, ranks[v]))
		}
		nodes[v] = n
	}
	for from := 0; from < adj.Order(); from++ {
		for to, edge := range adj.Row(from) {
			if !edge {
				continue
			}
			if _, err := graph.CreateEdge(fmt.Sprintf("%d-%d", from, to), nodes[from], nodes[to]); err != nil {
				return xerrors.Errorf("create edge %d -> %d: %w", from, to, err)
			}
		}
	}
	return g.Render(graph, f, w)
}

// RenderFile picks the format from the extension of output
func RenderFile(adj *Adjacency, ranks []float64, output string) error {
	format := strings.TrimPrefix(filepath.Ext(output), ".")
	if _, ok := formats[format]; !ok {
		return xerrors.Errorf("unsupported render format %q", format)
	}
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()
	return Render(adj, ranks, format, file)
}
