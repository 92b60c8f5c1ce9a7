// Package render hands finished SVG documents to an external rasterizer.
//
// # Overview
//
// Rendering and rasterizing are separate collaborators. The [sink] package
// produces SVG text; this package turns that text into PNG or PDF by way of
// a [Rasterizer]. The default implementation, [Rsvg], shells out to
// rsvg-convert (from librsvg):
//
//	doc, _ := sink.RenderSVG(calls, 800, 600, sink.WithStaticRaster())
//	png, err := render.ToPNG(ctx, render.NewRsvg(), doc, render.RasterOptions{
//	    Width: 1600, Height: 1200, DPI: 150,
//	})
//
// # Intermediate Documents
//
// Rasterizers read a file, not a stream. [WriteTemp] stores the document
// under a unique name in the temp directory and returns a cleanup func.
//
// Installing librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [sink]: github.com/matzehuels/genogrid/pkg/render/sink
package render
