// Package render provides visualization output for learned network
// structures.
//
// # Overview
//
// This package contains the generic format conversion step of the
// rendering pipeline:
//
//   - SVG to PDF/PNG conversion via the external rsvg-convert tool
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// rsvg-convert (from librsvg):
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders a learned graph as a directed diagram
// using Graphviz, with variables as boxes and edges as arrows:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/msartori/causalgo/pkg/render/nodelink
package render
