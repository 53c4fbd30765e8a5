package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/msartori/causalgo/pkg/graph"
	"github.com/msartori/causalgo/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Required marks edges drawn with a bold outline, typically the
	// edges fixed by prior knowledge rather than learned from data.
	Required []graph.Edge

	// Detailed includes each variable's in- and out-degree in its label.
	// When false, only the variable name is shown.
	Detailed bool

	// LeftToRight lays the diagram out horizontally instead of the
	// default top-to-bottom orientation.
	LeftToRight bool
}

// ToDOT converts a directed graph to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered using
// [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Edges listed in [Options.Required] are drawn bold so that constrained
// structure stands out from learned structure.
func ToDOT(g *graph.Directed, opts Options) string {
	required := make(map[graph.Edge]struct{}, len(opts.Required))
	for _, e := range opts.Required {
		required[e] = struct{}{}
	}

	rankdir := "TB"
	if opts.LeftToRight {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for x, l := range g.Labels() {
		if opts.Detailed {
			label := fmt.Sprintf("%s\nin: %d\nout: %d", l, g.InDegree(x), g.OutDegree(x))
			fmt.Fprintf(&buf, "  %q [label=%q];\n", l, label)
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", l)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if _, ok := required[e]; ok {
			fmt.Fprintf(&buf, "  %q -> %q [style=bold, penwidth=2];\n", g.Label(e.From), g.Label(e.To))
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", g.Label(e.From), g.Label(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
