package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/flowmark/flowmark/pkg/flowchart"
	"github.com/flowmark/flowmark/pkg/observability"
)

// ToDOT converts a flowchart to Graphviz DOT. Subgraphs become clusters,
// shapes are mapped to their closest DOT equivalents, and invisible
// links are emitted with style=invis so they still constrain layout.
func ToDOT(f *flowchart.Flowchart) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir(f.Direction))
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	writeBody(&buf, f, "  ")

	buf.WriteString("}\n")
	return buf.String()
}

// writeBody emits one container's nodes, edges, and nested clusters.
func writeBody(buf *bytes.Buffer, f *flowchart.Flowchart, indent string) {
	for _, n := range f.Nodes() {
		attrs := nodeAttrs(n)
		fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID(), strings.Join(attrs, ", "))
	}

	for _, l := range f.Links() {
		if attrs := edgeAttrs(l); len(attrs) > 0 {
			fmt.Fprintf(buf, "%s%q -> %q [%s];\n", indent, l.From(), l.To(), strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(buf, "%s%q -> %q;\n", indent, l.From(), l.To())
		}
	}

	for _, sg := range f.Subgraphs() {
		fmt.Fprintf(buf, "%ssubgraph %q {\n", indent, "cluster_"+sg.ID())
		label := sg.Title
		if label == "" {
			label = sg.ID()
		}
		fmt.Fprintf(buf, "%s  label=%q;\n", indent, label)
		fmt.Fprintf(buf, "%s  rankdir=%s;\n", indent, rankdir(sg.Direction))
		writeBody(buf, sg, indent+"  ")
		fmt.Fprintf(buf, "%s}\n", indent)
	}
}

func nodeAttrs(n *flowchart.Node) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.Label)}
	switch n.Shape {
	case flowchart.ShapeRound, flowchart.ShapeStadium:
		attrs = append(attrs, "shape=box", "style=rounded")
	case flowchart.ShapeRect:
		attrs = append(attrs, "shape=box")
	case flowchart.ShapeSubroutine:
		attrs = append(attrs, "shape=box", "peripheries=2")
	case flowchart.ShapeCircle:
		attrs = append(attrs, "shape=circle")
	case flowchart.ShapeAsymmetric:
		attrs = append(attrs, "shape=cds")
	case flowchart.ShapeRhombus:
		attrs = append(attrs, "shape=diamond")
	case flowchart.ShapeHexagon:
		attrs = append(attrs, "shape=hexagon")
	}
	return attrs
}

func edgeAttrs(l *flowchart.Link) []string {
	var attrs []string
	if l.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", l.Label))
	}
	switch l.Kind {
	case flowchart.LinkLine:
		attrs = append(attrs, "dir=none")
	case flowchart.LinkInvisible:
		attrs = append(attrs, "style=invis")
	}
	return attrs
}

func rankdir(d flowchart.Direction) string {
	switch d {
	case flowchart.DirectionLR:
		return "LR"
	case flowchart.DirectionRL:
		return "RL"
	case flowchart.DirectionBT:
		return "BT"
	}
	return "TB"
}

// Graphviz renders markup locally through the embedded Graphviz engine.
type Graphviz struct{}

// Render parses the markup, converts it to DOT, and rasterizes SVG.
func (Graphviz) Render(ctx context.Context, markup string) ([]byte, error) {
	observability.Render().OnRenderStart(ctx, "graphviz")
	start := time.Now()

	f, err := flowchart.Parse(markup)
	if err != nil {
		observability.Render().OnRenderComplete(ctx, "graphviz", 0, time.Since(start), err)
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	data, err := renderSVG(ctx, ToDOT(f))
	observability.Render().OnRenderComplete(ctx, "graphviz", len(data), time.Since(start), err)
	return data, err
}

// renderSVG rasterizes a DOT graph to SVG using Graphviz.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
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

// Ensure Graphviz implements Renderer.
var _ Renderer = Graphviz{}
