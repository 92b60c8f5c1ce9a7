package pipeline

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/matzehuels/genogrid/pkg/colour"
	"github.com/matzehuels/genogrid/pkg/errors"
	"github.com/matzehuels/genogrid/pkg/observability"
	"github.com/matzehuels/genogrid/pkg/palette"
	"github.com/matzehuels/genogrid/pkg/render"
	"github.com/matzehuels/genogrid/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. The rasterizer
// is only used for PDF and for PNG with the rsvg backend; it may be nil
// otherwise.
func Render(ctx context.Context, rasterizer render.Rasterizer, items []string, pal palette.Palette, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	svgOpts, err := buildSVGOptions(pal, opts)
	if err != nil {
		return nil, err
	}
	if opts.NeedsRasterizer() && rasterizer == nil {
		return nil, errors.New(errors.ErrCodeRasterizerUnavailable, "no rasterizer configured")
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte

		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(items, opts.Width, opts.Height, svgOpts...)
		case FormatPNG:
			if opts.Raster == RasterNative {
				data, err = sink.RenderPNG(items, opts.Width, opts.Height, sink.WithPNGSVGOptions(svgOpts...))
			} else {
				data, err = rasterize(ctx, rasterizer, items, svgOpts, opts, render.FormatPNG)
			}
		case FormatPDF:
			data, err = rasterize(ctx, rasterizer, items, svgOpts, opts, render.FormatPDF)
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// rasterize renders a static document and hands it to the rasterizer.
func rasterize(ctx context.Context, rasterizer render.Rasterizer, items []string, svgOpts []sink.SVGOption, opts Options, format string) ([]byte, error) {
	doc, err := sink.RenderSVG(items, opts.Width, opts.Height, append(slices.Clip(svgOpts), sink.WithStaticRaster())...)
	if err != nil {
		return nil, err
	}
	scale := opts.OutputScale()
	opts.Logger.Debug("rasterizing document", "format", format, "bytes", len(doc), "scale", scale)

	start := time.Now()
	data, err := render.Convert(ctx, rasterizer, doc, render.RasterOptions{
		Format: format,
		Width:  int(math.Round(float64(opts.Width) * scale)),
		Height: int(math.Round(float64(opts.Height) * scale)),
		DPI:    opts.DPI,
	})
	observability.Raster().OnRasterize(ctx, format, len(data), time.Since(start), err)
	return data, err
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(pal palette.Palette, opts Options) ([]sink.SVGOption, error) {
	fill, err := colour.ParseHex(opts.Fill)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "fill")
	}

	svgOpts := []sink.SVGOption{
		sink.WithScale(opts.Scale),
		sink.WithPadding(opts.PadX, opts.PadY),
		sink.WithFill(fill),
	}
	if opts.Print {
		svgOpts = append(svgOpts, sink.WithPrint())
	}
	if opts.Static {
		svgOpts = append(svgOpts, sink.WithStaticRaster())
	}
	if opts.ByCategory() && len(pal) > 0 {
		svgOpts = append(svgOpts, sink.WithPalette(pal))
	}
	return svgOpts, nil
}
