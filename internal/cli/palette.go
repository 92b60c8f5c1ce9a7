package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/genogrid/pkg/palette"
	"github.com/matzehuels/genogrid/pkg/pipeline"
)

// paletteOpts holds the flags of the palette command.
type paletteOpts struct {
	method string
	value  float64
	seed   uint64
}

// paletteCommand creates the palette command for inspecting generated palettes.
func (c *CLI) paletteCommand() *cobra.Command {
	opts := paletteOpts{
		method: string(palette.DefaultMethod),
		value:  palette.DefaultValue,
	}

	cmd := &cobra.Command{
		Use:   "palette [count]",
		Short: "Print a generated colour palette",
		Long: `Print a generated colour palette with hue, hex code and a terminal swatch.

The smallest pairwise CIEDE2000 distance is reported so methods and sizes can
be compared: values below about 0.1 are hard to tell apart on screen.`,
		Example: `  genogrid palette 6
  genogrid palette 12 --method equal_spacing
  genogrid palette 24 --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			logger := loggerFromContext(cmd.Context())

			genOpts := (&pipeline.Options{
				PaletteValue: opts.value,
				Seed:         opts.seed,
				Logger:       logger,
			}).PaletteOptions()
			p, err := palette.Generate(count, palette.Method(opts.method), genOpts...)
			if err != nil {
				return err
			}
			logger.Debug("generated palette", "method", opts.method, "colors", len(p))

			printPalette(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", opts.method, "palette method: chroma_bisection, equal_spacing")
	cmd.Flags().Float64Var(&opts.value, "value", opts.value, "brightness in (0,1], 0 selects the default")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "shuffle seed, 0 shuffles randomly")

	_ = cmd.RegisterFlagCompletionFunc("method", cobra.FixedCompletions(
		paletteMethodNames(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// printPalette writes one line per colour followed by the minimum distance.
func printPalette(w io.Writer, p palette.Palette) {
	for i, e := range p {
		hex := e.Color.Hex()
		fmt.Fprintf(w, "%3d  %s  %6.2f°  %s\n", i+1, swatch(hex), e.Hue, StyleValue.Render(hex))
	}
	if len(p) > 1 {
		fmt.Fprintln(w)
		printKeyValue(w, "min ΔE", strconv.FormatFloat(p.MinDistance(), 'f', 4, 64))
	}
}

func paletteMethodNames() []string {
	names := make([]string, len(palette.Methods))
	for i, m := range palette.Methods {
		names[i] = string(m)
	}
	return names
}
