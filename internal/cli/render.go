package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/genogrid/pkg/errors"
	"github.com/matzehuels/genogrid/pkg/pipeline"
)

// renderCommand creates the render command for generating grids.
//
// Flags override values from --config. Only flags set on the command line
// take part in the override, so config values survive flag defaults.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		configPath string
	)
	var flags pipeline.Options

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a genotype file as a grid of square cells",
		Long: `Render a genotype file as a grid of square cells.

The file is tab-delimited with one call per line; lines starting with '#' are
comments. Use '-' to read from stdin. Each call becomes one square cell on a
fixed canvas, filled with a fixed colour or, with --color-by category, one
generated palette colour per distinct call.

PNG and PDF output is produced by rsvg-convert (librsvg). PNG can also be
painted in-process with --raster native.`,
		Example: `  genogrid render genome.txt
  genogrid render genome.txt --color-by category -f svg,png -o grid
  cat genome.txt | genogrid render - --print -o - > grid.svg
  genogrid render genome.txt --config genogrid.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				flags.Formats = parseFormats(formatsStr)
			}
			opts, err := resolveOptions(configPath, cmd.Flags(), flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, cmd.OutOrStdout())
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML or YAML options file")

	// Layout flags
	cmd.Flags().IntVar(&flags.Width, "width", pipeline.DefaultWidth, "canvas width")
	cmd.Flags().IntVar(&flags.Height, "height", pipeline.DefaultHeight, "canvas height")
	cmd.Flags().Float64Var(&flags.Scale, "scale", pipeline.DefaultScale, "output size relative to the canvas")
	cmd.Flags().IntVar(&flags.PadX, "pad-x", 0, "horizontal offset of the cells")
	cmd.Flags().IntVar(&flags.PadY, "pad-y", 0, "vertical offset of the cells")

	// Colour flags
	cmd.Flags().StringVar(&flags.ColorBy, "color-by", pipeline.ColorByFixed, "cell colouring: fixed, category")
	cmd.Flags().StringVar(&flags.Fill, "fill", pipeline.DefaultFill, "fixed cell colour (#rrggbb)")
	cmd.Flags().StringVar(&flags.PaletteMethod, "palette-method", "", "palette method: chroma_bisection (default), equal_spacing")
	cmd.Flags().IntVar(&flags.PaletteSize, "palette-size", 0, "palette size (default: number of distinct calls)")
	cmd.Flags().Float64Var(&flags.PaletteValue, "palette-value", 0, "palette brightness in (0,1], 0 selects the default 0.95")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", 0, "palette shuffle seed, 0 shuffles randomly")

	// Input flags
	cmd.Flags().IntVar(&flags.Field, "field", 0, "zero-based column holding the call (default 3)")
	cmd.Flags().BoolVar(&flags.SkipNoCalls, "skip-no-calls", false, "drop empty and '--' calls")

	// Render flags
	cmd.Flags().BoolVar(&flags.Print, "print", false, "print mode: scale 1, no tooltip script")
	cmd.Flags().BoolVar(&flags.Static, "static", false, "static document: no tooltip script or overlay")
	cmd.Flags().StringVar(&flags.Raster, "raster", pipeline.RasterRsvg, "PNG backend: rsvg, native")
	cmd.Flags().Float64Var(&flags.DPI, "dpi", 0, "rasterizer resolution (default 96)")

	_ = cmd.RegisterFlagCompletionFunc("color-by", cobra.FixedCompletions(
		[]string{pipeline.ColorByFixed, pipeline.ColorByCategory}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("raster", cobra.FixedCompletions(
		[]string{pipeline.RasterRsvg, pipeline.RasterNative}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("palette-method", cobra.FixedCompletions(
		paletteMethodNames(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// resolveOptions loads the config file, if any, and applies the flags that
// were set explicitly.
func resolveOptions(configPath string, fs *pflag.FlagSet, flags pipeline.Options) (pipeline.Options, error) {
	var opts pipeline.Options
	if configPath != "" {
		loaded, err := pipeline.LoadConfig(configPath)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts = loaded
	}

	overrides := map[string]func(){
		"format":         func() { opts.Formats = flags.Formats },
		"width":          func() { opts.Width = flags.Width },
		"height":         func() { opts.Height = flags.Height },
		"scale":          func() { opts.Scale = flags.Scale },
		"pad-x":          func() { opts.PadX = flags.PadX },
		"pad-y":          func() { opts.PadY = flags.PadY },
		"color-by":       func() { opts.ColorBy = flags.ColorBy },
		"fill":           func() { opts.Fill = flags.Fill },
		"palette-method": func() { opts.PaletteMethod = flags.PaletteMethod },
		"palette-size":   func() { opts.PaletteSize = flags.PaletteSize },
		"palette-value":  func() { opts.PaletteValue = flags.PaletteValue },
		"seed":           func() { opts.Seed = flags.Seed },
		"field":          func() { opts.Field = flags.Field },
		"skip-no-calls":  func() { opts.SkipNoCalls = flags.SkipNoCalls },
		"print":          func() { opts.Print = flags.Print },
		"static":         func() { opts.Static = flags.Static },
		"raster":         func() { opts.Raster = flags.Raster },
		"dpi":            func() { opts.DPI = flags.DPI },
	}
	for name, apply := range overrides {
		if fs.Changed(name) {
			apply()
		}
	}
	return opts, nil
}

// runRender reads the genotype file, runs the pipeline and writes artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, logger)

	rlog := newRenderLog(logger, input)
	spinner := newRenderSpinner(ctx, input)
	spinner.Start()

	result, err := runner.ExecuteFile(ctx, input, opts)
	if err != nil {
		cancelled := spinner.Cancelled()
		rlog.failed(err, cancelled)
		if cancelled {
			spinner.StopWithError("Render cancelled")
		} else {
			spinner.StopWithError("Render failed")
		}
		return err
	}
	spinner.Stop()
	rlog.rendered(result)

	g := result.Grid
	printSuccess("Rendered %s cells", StyleNumber.Render(fmt.Sprint(g.Count)))
	printDetail("cell side %d · %d columns · %d rows", g.Side, g.Columns(), g.Rows())
	if result.Palette != nil {
		printDetail("%d colours for %d calls (%s)", len(result.Palette), result.Stats.Categories, opts.PaletteMethod)
	}
	if _, h := g.Extent(); h > opts.Height {
		printWarning("last row extends %d units below the canvas", h-opts.Height)
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		stdout:    stdout,
	})
}

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	stdout    io.Writer
}

// writeArtifacts writes one file per format. A single format goes to output
// as given; several formats share the base path of output.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 && p.output != "" {
		return writeArtifact(p.output, p.artifacts[p.formats[0]], p.stdout)
	}
	if p.output == "-" {
		return fmt.Errorf("--output - requires a single format, got %d", len(p.formats))
	}

	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		path := base + "." + format
		if err := writeArtifact(path, p.artifacts[format], p.stdout); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(path string, data []byte, stdout io.Writer) error {
	if path != "-" {
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
	}
	out, err := openOutput(path, stdout)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := writeAndClose(out, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if path != "-" {
		printFile(path)
	}
	return nil
}

// writeAndClose writes data and closes w. A close error is returned when the
// write succeeded, since buffered file data may only fail to flush on close.
func writeAndClose(w io.WriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
