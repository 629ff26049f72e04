// Package dot renders resource-allocation graphs as Graphviz diagrams.
//
// # Overview
//
// Processes appear as circles and resources as boxes annotated with their
// available/total instance counts. ALLOCATION edges are solid arrows from
// resource to process; REQUEST edges are dashed arrows from process to
// resource. A detected deadlock cycle can be highlighted in red.
//
// # Usage
//
// Convert a snapshot to DOT, then render to SVG:
//
//	src := dot.ToDOT(state, dot.Options{Cycle: result.CycleInfo})
//	svg, err := dot.RenderSVG(src)
//
// The generated DOT can also be saved and processed with external Graphviz
// tools. In-process rendering uses [github.com/goccy/go-graphviz].
package dot
