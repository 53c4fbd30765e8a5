// Package nodelink renders learned network structures as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// variables appear as ellipses connected by arrows pointing from parent to
// child.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Required: edges drawn bold, for constraints supplied as prior
//     knowledge rather than learned from data
//   - Detailed: variable labels include in- and out-degree
//   - LeftToRight: horizontal layout instead of top-to-bottom
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
