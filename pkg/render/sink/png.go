package sink

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/matzehuels/genogrid/pkg/grid"
)

// PNGOption configures native PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts    []SVGOption
	background color.Color
}

// WithPNGSVGOptions reuses SVG options (scale, padding, fill, colouring) so
// the bitmap matches the vector document.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithBackground sets the colour behind the cells (default white).
func WithBackground(c color.Color) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// RenderPNG paints the grid directly into a bitmap, without an external
// rasterizer. The image is width*scale × height*scale pixels; rows that
// overflow the canvas are clipped like in the SVG viewport.
func RenderPNG(items []string, width, height int, opts ...PNGOption) ([]byte, error) {
	g, err := grid.New(width, height, len(items))
	if err != nil {
		return nil, err
	}
	pr := pngRenderer{background: color.White}
	for _, opt := range opts {
		opt(&pr)
	}
	r := newSVGRenderer(pr.svgOpts...)

	dc := gg.NewContext(scaled(width, r.scale), scaled(height, r.scale))
	dc.SetColor(pr.background)
	dc.Clear()
	dc.Scale(r.scale, r.scale)
	dc.Translate(float64(r.padX), float64(r.padY))

	for c := range g.Cells() {
		fill := r.cellFill(items[c.Index])
		dc.SetRGB255(fill.R, fill.G, fill.B)
		dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.Side), float64(c.Side))
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaled(n int, scale float64) int {
	return max(1, int(float64(n)*scale+0.5))
}
