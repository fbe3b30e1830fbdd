package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridpack/pkg/grid"
)

// Edge records that the item From rests directly below the item To.
type Edge struct {
	From string
	To   string
}

// Options configures DOT generation.
type Options struct {
	// Detailed adds size and position to node labels.
	Detailed bool
}

// SupportGraph returns the resting edges of l in layout order.
func SupportGraph(l grid.Layout) []Edge {
	var edges []Edge
	for _, a := range l {
		for _, b := range l {
			if a.ID == b.ID || a.Y != b.Bottom() {
				continue
			}
			if a.X < b.Right() && b.X < a.Right() {
				edges = append(edges, Edge{From: a.ID, To: b.ID})
			}
		}
	}
	return edges
}

// ToDOT converts l to Graphviz DOT source.
func ToDOT(l grid.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, it := range l {
		fmt.Fprintf(&buf, "  %q [%s];\n", it.ID, strings.Join(fmtAttrs(it, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range SupportGraph(l) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(it grid.Item, detailed bool) string {
	if !detailed {
		return it.ID
	}
	return fmt.Sprintf("%s\n%dx%d at (%d,%d)", it.ID, it.W, it.H, it.X, it.Y)
}

func fmtAttrs(it grid.Item, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(it, detailed))}
	if it.Static {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
