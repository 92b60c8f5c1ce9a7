// Package pipeline provides the layout → palette → render pipeline for genogrid.
//
// This package wires the building blocks together so the CLI (and any other
// entry point) gets the same defaults, validation and output handling.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: Derive the cell size for the item count on the canvas
//  2. Palette: Optionally generate one colour per distinct item value
//  3. Render: Generate output in the requested formats (SVG, PNG, PDF)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, logger)
//	opts := pipeline.Options{
//	    Width:   800,
//	    Height:  600,
//	    ColorBy: pipeline.ColorByCategory,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, items, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Options can also be loaded from a TOML or YAML file with [LoadConfig].
package pipeline

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/genogrid/pkg/errors"
	"github.com/matzehuels/genogrid/pkg/genotype"
	"github.com/matzehuels/genogrid/pkg/grid"
	"github.com/matzehuels/genogrid/pkg/palette"
	"github.com/matzehuels/genogrid/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default canvas width in logical units.
	DefaultWidth = 800

	// DefaultHeight is the default canvas height in logical units.
	DefaultHeight = 600

	// DefaultScale is the default ratio of rendered size to canvas size.
	DefaultScale = 1.0

	// DefaultFill is the fixed cell colour used when ColorBy is "fixed".
	DefaultFill = "#4682b4"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = render.FormatPNG
	FormatPDF = render.FormatPDF
)

// Colouring modes.
const (
	ColorByFixed    = "fixed"
	ColorByCategory = "category"
)

// Raster backends.
const (
	RasterRsvg   = "rsvg"
	RasterNative = "native"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. Field tags name the
// keys accepted in TOML and YAML config files.
type Options struct {
	// Layout options
	Width  int     `toml:"width" yaml:"width" validate:"gte=0"`
	Height int     `toml:"height" yaml:"height" validate:"gte=0"`
	Scale  float64 `toml:"scale" yaml:"scale" validate:"gte=0"`
	PadX   int     `toml:"pad_x" yaml:"pad_x" validate:"gte=0"`
	PadY   int     `toml:"pad_y" yaml:"pad_y" validate:"gte=0"`

	// Colour options
	ColorBy       string `toml:"color_by" yaml:"color_by" validate:"omitempty,oneof=fixed category"`
	Fill          string `toml:"fill" yaml:"fill" validate:"omitempty,hexcolor"`
	PaletteMethod string `toml:"palette_method" yaml:"palette_method"`
	PaletteSize   int    `toml:"palette_size" yaml:"palette_size" validate:"gte=0"`
	// PaletteValue zero selects palette.DefaultValue; Seed zero shuffles randomly.
	PaletteValue float64 `toml:"palette_value" yaml:"palette_value"`
	Seed         uint64  `toml:"seed" yaml:"seed"`

	// Input options. Field is the zero-based genotype column; zero selects
	// genotype.DefaultField.
	Field       int  `toml:"field" yaml:"field" validate:"gte=0"`
	SkipNoCalls bool `toml:"skip_no_calls" yaml:"skip_no_calls"`

	// Render options
	Formats []string `toml:"formats" yaml:"formats"`
	Print   bool     `toml:"print" yaml:"print"`
	Static  bool     `toml:"static" yaml:"static"`
	Raster  string   `toml:"raster" yaml:"raster" validate:"omitempty,oneof=rsvg native"`
	DPI     float64  `toml:"dpi" yaml:"dpi" validate:"gte=0"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-" yaml:"-" validate:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the computed layout.
	Grid grid.Grid

	// Palette is the generated palette, nil for fixed colouring.
	Palette palette.Palette

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Items       int
	Categories  int
	LayoutTime  time.Duration
	PaletteTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation
// =============================================================================

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field names in errors are
// the config file keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// convertValidationError turns validator errors into INVALID_CONFIG errors
// naming the first offending key.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := fe.Field()
		if field == "" {
			field = strings.ToLower(fe.StructField())
		}
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if fe.Param() != "" {
			msg += fmt.Sprintf(" (%s)", fe.Param())
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", msg)
	}
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "options")
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the options.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := convertValidationError(validatorInstance().Struct(o)); err != nil {
		return err
	}
	if o.Raster == RasterNative && slices.Contains(o.Formats, FormatPDF) {
		return errors.New(errors.ErrCodeInvalidConfig, "pdf output requires the %s raster backend", RasterRsvg)
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero values with defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.ColorBy == "" {
		o.ColorBy = ColorByFixed
	}
	if o.Fill == "" {
		o.Fill = DefaultFill
	}
	if o.PaletteMethod == "" {
		o.PaletteMethod = string(palette.DefaultMethod)
	}
	if o.PaletteValue == 0 {
		o.PaletteValue = palette.DefaultValue
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Raster == "" {
		o.Raster = RasterRsvg
	}
	if o.Field == 0 {
		o.Field = genotype.DefaultField
	}
	if o.DPI == 0 {
		o.DPI = render.DefaultDPI
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ByCategory reports whether cells are coloured per item value.
func (o *Options) ByCategory() bool {
	return o.ColorBy == ColorByCategory
}

// NeedsRasterizer reports whether any format goes through the external
// rasterizer.
func (o *Options) NeedsRasterizer() bool {
	for _, f := range o.Formats {
		if f == FormatPDF || (f == FormatPNG && o.Raster != RasterNative) {
			return true
		}
	}
	return false
}

// OutputScale is the scale actually applied to rendered output.
func (o *Options) OutputScale() float64 {
	if o.Print || o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// PaletteOptions returns the generator options for the palette fields. A zero
// PaletteValue selects palette.DefaultValue and a zero Seed shuffles randomly,
// matching SetDefaults.
func (o *Options) PaletteOptions() []palette.Option {
	value := o.PaletteValue
	if value == 0 {
		value = palette.DefaultValue
	}
	opts := []palette.Option{palette.WithValue(value)}
	if o.Logger != nil {
		opts = append(opts, palette.WithLogger(o.Logger))
	}
	if o.Seed != 0 {
		opts = append(opts, palette.WithSeed(o.Seed))
	}
	return opts
}
