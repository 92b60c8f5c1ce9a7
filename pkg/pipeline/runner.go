package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/genogrid/pkg/genotype"
	"github.com/matzehuels/genogrid/pkg/grid"
	"github.com/matzehuels/genogrid/pkg/observability"
	"github.com/matzehuels/genogrid/pkg/palette"
	"github.com/matzehuels/genogrid/pkg/render"
)

// Runner executes the pipeline with a rasterizer and logger.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Rasterizer render.Rasterizer
	Logger     *log.Logger
}

// NewRunner creates a runner. If rasterizer is nil, rsvg-convert is used.
func NewRunner(rasterizer render.Rasterizer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if rasterizer == nil {
		rasterizer = &render.Rsvg{Binary: "rsvg-convert", Logger: logger}
	}
	return &Runner{
		Rasterizer: rasterizer,
		Logger:     logger,
	}
}

// Execute runs the complete layout → palette → render pipeline over items.
func (r *Runner) Execute(ctx context.Context, items []string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.Items = len(items)

	hooks := observability.Pipeline()

	// Stage 1: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, len(items))
	g, err := r.Layout(items, opts)
	hooks.OnLayoutComplete(ctx, g.Side, time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Grid = g
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("computed layout",
		"cells", g.Count,
		"side", g.Side,
		"columns", g.Columns(),
		"rows", g.Rows(),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Palette
	if opts.ByCategory() {
		paletteStart := time.Now()
		hooks.OnPaletteStart(ctx, opts.PaletteMethod, opts.PaletteSize)
		pal, categories, err := r.Palette(items, opts)
		hooks.OnPaletteComplete(ctx, opts.PaletteMethod, time.Since(paletteStart), err)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		result.Palette = pal
		result.Stats.Categories = categories
		result.Stats.PaletteTime = time.Since(paletteStart)

		r.Logger.Info("generated palette",
			"colors", len(pal),
			"categories", categories,
			"method", opts.PaletteMethod,
			"duration", result.Stats.PaletteTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(ctx, r.Rasterizer, items, result.Palette, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ExecuteFile reads items from path ("-" for stdin) and runs Execute.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	items, err := ReadItems(path, opts)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	r.Logger.Debug("read items", "path", path, "items", len(items))
	return r.Execute(ctx, items, opts)
}

// Layout computes the grid for items on the configured canvas.
func (r *Runner) Layout(items []string, opts Options) (grid.Grid, error) {
	opts.SetDefaults()
	g, err := grid.New(opts.Width, opts.Height, len(items))
	if err != nil {
		return grid.Grid{}, err
	}
	if _, h := g.Extent(); h > opts.Height {
		r.Logger.Debug("last row extends below canvas", "extent", h, "height", opts.Height)
	}
	return g, nil
}

// Palette generates one colour per distinct item value, or PaletteSize
// colours when set. It returns the palette and the number of categories.
func (r *Runner) Palette(items []string, opts Options) (palette.Palette, int, error) {
	opts.SetDefaults()
	categories := len(genotype.Categories(items))
	size := opts.PaletteSize
	if size == 0 {
		size = categories
	}
	if size < categories {
		r.Logger.Warn("fewer colours than categories, colours will repeat",
			"colors", size, "categories", categories)
	}

	pal, err := palette.Generate(size, palette.Method(opts.PaletteMethod), opts.PaletteOptions()...)
	if err != nil {
		return nil, categories, err
	}
	return pal, categories, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
