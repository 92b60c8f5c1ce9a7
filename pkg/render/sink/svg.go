package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/genogrid/pkg/colour"
	"github.com/matzehuels/genogrid/pkg/grid"
	"github.com/matzehuels/genogrid/pkg/palette"
)

// DefaultFill is the colour of every cell unless per-item colouring is set.
var DefaultFill = colour.RGB{R: 70, G: 130, B: 180}

const svgPreamble = `<?xml version="1.0" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
`

const svgDefs = `
    <linearGradient id="cellShade" x1="0%" y1="0%" x2="0%" y2="100%">
      <stop offset="0%" stop-color="#ffffff" stop-opacity="0.25"/>
      <stop offset="100%" stop-color="#000000" stop-opacity="0.15"/>
    </linearGradient>
    <filter id="tooltipShadow" x="-20%" y="-20%" width="140%" height="140%">
      <feGaussianBlur in="SourceAlpha" stdDeviation="1.5"/>
      <feOffset dx="1" dy="1" result="offsetblur"/>
      <feMerge><feMergeNode/><feMergeNode in="SourceGraphic"/></feMerge>
    </filter>
    <pattern id="noCall" width="6" height="6" patternUnits="userSpaceOnUse" patternTransform="rotate(45)">
      <rect width="6" height="6" fill="#eeeeee"/>
      <line x1="0" y1="0" x2="0" y2="6" stroke="#bbbbbb" stroke-width="2"/>
    </pattern>
`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale      float64
	print      bool
	static     bool
	padX, padY int
	fill       colour.RGB
	colorFor   func(item string) colour.RGB
}

// WithScale multiplies the root element size. The viewBox stays at the
// logical canvas size.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithPrint renders at scale 1 without the tooltip script.
func WithPrint() SVGOption { return func(r *svgRenderer) { r.print = true } }

// WithStaticRaster drops the tooltip script and overlay, for documents that
// are handed to a rasterizer.
func WithStaticRaster() SVGOption { return func(r *svgRenderer) { r.static = true } }

// WithPadding offsets the cell group by (x, y).
func WithPadding(x, y int) SVGOption {
	return func(r *svgRenderer) { r.padX, r.padY = x, y }
}

// WithFill sets the fixed cell colour.
func WithFill(c colour.RGB) SVGOption { return func(r *svgRenderer) { r.fill = c } }

// WithColorFunc colours each cell by its item value.
func WithColorFunc(f func(item string) colour.RGB) SVGOption {
	return func(r *svgRenderer) { r.colorFor = f }
}

// WithPalette colours cells per category, assigning palette colours to item
// values in first-seen order.
func WithPalette(p palette.Palette) SVGOption {
	return func(r *svgRenderer) {
		if len(p) == 0 {
			return
		}
		r.colorFor = palette.NewMapper(p).Color
	}
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: 1, fill: DefaultFill}
	for _, opt := range opts {
		opt(&r)
	}
	if r.print || r.scale <= 0 {
		r.scale = 1
	}
	return r
}

func (r *svgRenderer) interactive() bool {
	return !r.print && !r.static
}

func (r *svgRenderer) cellFill(item string) colour.RGB {
	if r.colorFor != nil {
		return r.colorFor(item)
	}
	return r.fill
}

// RenderSVG renders one square cell per item on a width × height canvas.
// It returns no document at all when the items cannot be laid out.
func RenderSVG(items []string, width, height int, opts ...SVGOption) ([]byte, error) {
	g, err := grid.New(width, height, len(items))
	if err != nil {
		return nil, err
	}
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	canvas := svg.New(&buf)

	r.renderHeader(&buf, canvas, width, height)
	r.renderCells(canvas, g, items)
	r.renderFooter(canvas)

	return buf.Bytes(), nil
}

// WriteSVG renders like RenderSVG and writes the finished document to w.
// Nothing is written when rendering fails.
func WriteSVG(w io.Writer, items []string, width, height int, opts ...SVGOption) error {
	doc, err := RenderSVG(items, width, height, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

func (r *svgRenderer) renderHeader(buf *bytes.Buffer, canvas *svg.SVG, width, height int) {
	buf.WriteString(svgPreamble)
	fmt.Fprintf(buf, `<svg width="%s" height="%s" viewBox="0 0 %d %d" version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`+"\n",
		formatSize(float64(width)*r.scale), formatSize(float64(height)*r.scale), width, height)

	canvas.Def()
	buf.WriteString(svgDefs)
	canvas.DefEnd()

	if r.interactive() {
		renderTooltipScript(buf)
	}
}

func (r *svgRenderer) renderCells(canvas *svg.SVG, g grid.Grid, items []string) {
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", r.padX, r.padY))
	for c := range g.Cells() {
		item := items[c.Index]
		fill := fmt.Sprintf(`fill="%s"`, r.cellFill(item).CSS())
		if !r.interactive() {
			canvas.Rect(c.X, c.Y, c.Side, c.Side, fill)
			continue
		}
		canvas.Rect(c.X, c.Y, c.Side, c.Side,
			`class="cell"`,
			fill,
			fmt.Sprintf(`data-value="%s"`, escapeAttr(item)))
	}
	canvas.Gend()
}

// escapeAttr escapes s for a double-quoted XML attribute. Runes outside the
// XML character range, including invalid UTF-8, become U+FFFD.
func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func (r *svgRenderer) renderFooter(canvas *svg.SVG) {
	if !r.static {
		renderTooltipOverlay(canvas)
	}
	canvas.End()
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
