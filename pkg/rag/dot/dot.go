package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/aryaneelshivam/deadpanda/pkg/rag"
)

// Options configures diagram generation.
type Options struct {
	// Cycle, when non-nil and existing, highlights the cycle's nodes and
	// edges in red.
	Cycle *rag.CycleInfo
}

// ToDOT converts a snapshot to Graphviz DOT source.
// The resulting string can be rendered with [RenderSVG] or external tools.
func ToDOT(state rag.GraphState, opts Options) string {
	hotNodes := make(map[string]bool)
	hotEdges := make(map[string]bool)
	if opts.Cycle != nil && opts.Cycle.Exists {
		for _, id := range opts.Cycle.AffectedNodes {
			hotNodes[id] = true
		}
		for _, id := range opts.Cycle.AffectedEdges {
			hotEdges[id] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph RAG {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for _, n := range state.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, hotNodes[n.ID]), ", "))
	}

	buf.WriteString("\n")
	for _, e := range state.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(edgeAttrs(e, hotEdges[e.ID]), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n rag.Node, hot bool) []string {
	label := n.Label
	if label == "" {
		label = n.ID
	}

	var attrs []string
	switch n.Type {
	case rag.NodeResource:
		attrs = append(attrs,
			fmt.Sprintf("label=%q", fmt.Sprintf("%s\n%d/%d", label, n.Available, n.Instances)),
			"shape=box")
	default:
		attrs = append(attrs, fmt.Sprintf("label=%q", label), "shape=circle")
	}

	if hot {
		attrs = append(attrs, "color=red", "fontcolor=red", "penwidth=2")
	}
	return attrs
}

func edgeAttrs(e rag.Edge, hot bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", strconv.Itoa(e.Instances))}
	if e.Type == rag.EdgeRequest {
		attrs = append(attrs, "style=dashed")
	}
	if hot {
		attrs = append(attrs, "color=red", "fontcolor=red", "penwidth=2")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG in-process.
func RenderSVG(src string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the opening svg tag so the diagram scales
// cleanly when embedded in a page.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
