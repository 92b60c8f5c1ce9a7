// Package sink renders a sequence of items as a tiled cell grid.
//
// # Overview
//
// A "sink" turns items plus a canvas size into a final output format:
//
//   - SVG: a self-contained vector document with optional tooltips
//   - PNG: a bitmap painted in-process (no external tools)
//
// Both lay the items out with [grid.New] and fail without producing any
// output when the layout fails (EMPTY_INPUT, OUT_OF_RANGE).
//
// # SVG Output
//
// [RenderSVG] writes, in order:
//
//   - An XML declaration, the SVG 1.1 DOCTYPE and the root element, sized to
//     the canvas times the scale factor with a viewBox of the canvas itself
//   - A static <defs> block (cell gradient, tooltip shadow filter, no-call
//     hatch pattern)
//   - The tooltip <style> and <script>, unless print or static-raster mode
//   - A translated group with one <rect> per item in raster order
//   - The tooltip overlay group, unless static-raster mode
//
// Basic usage:
//
//	doc, err := sink.RenderSVG(calls, 800, 600,
//	    sink.WithScale(2),
//	    sink.WithPadding(10, 10),
//	)
//
// # SVG Options
//
//   - [WithScale]: Multiply the root element size
//   - [WithPrint]: Scale 1, no script
//   - [WithStaticRaster]: No script and no overlay, for rasterizer input
//   - [WithPadding]: Offset of the cell group
//   - [WithFill]: Fixed cell colour (default [DefaultFill])
//   - [WithPalette], [WithColorFunc]: Per-item colouring
//
// # PNG Output
//
// [RenderPNG] paints the same cells with fogleman/gg. SVG options pass
// through with [WithPNGSVGOptions] so both outputs match. For a bitmap made
// from the SVG document itself, use the rsvg-convert collaborator in
// [render.Rsvg].
//
// [grid.New]: github.com/matzehuels/genogrid/pkg/grid.New
// [render.Rsvg]: github.com/matzehuels/genogrid/pkg/render.Rsvg
package sink
