package pipeline

import (
	"strings"
	"testing"

	"github.com/matzehuels/genogrid/pkg/errors"
	"github.com/matzehuels/genogrid/pkg/palette"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Zero options should pass: %v", err)
	}

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("canvas = %dx%d, want %dx%d", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.ColorBy != ColorByFixed {
		t.Errorf("ColorBy = %q, want %q", opts.ColorBy, ColorByFixed)
	}
	if opts.Fill != DefaultFill {
		t.Errorf("Fill = %q, want %q", opts.Fill, DefaultFill)
	}
	if opts.PaletteMethod != string(palette.DefaultMethod) {
		t.Errorf("PaletteMethod = %q, want %q", opts.PaletteMethod, palette.DefaultMethod)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Raster != RasterRsvg {
		t.Errorf("Raster = %q, want %q", opts.Raster, RasterRsvg)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
		wantKey  string
	}{
		{name: "negative width", opts: Options{Width: -1}, wantCode: errors.ErrCodeInvalidConfig, wantKey: "width"},
		{name: "negative padding", opts: Options{PadY: -3}, wantCode: errors.ErrCodeInvalidConfig, wantKey: "pad_y"},
		{name: "bad color-by", opts: Options{ColorBy: "rainbow"}, wantCode: errors.ErrCodeInvalidConfig, wantKey: "color_by"},
		{name: "bad fill", opts: Options{Fill: "steelblue"}, wantCode: errors.ErrCodeInvalidConfig, wantKey: "fill"},
		{name: "bad raster", opts: Options{Raster: "cairo"}, wantCode: errors.ErrCodeInvalidConfig, wantKey: "raster"},
		{name: "bad format", opts: Options{Formats: []string{"gif"}}, wantCode: errors.ErrCodeInvalidFormat, wantKey: "gif"},
		{name: "native pdf", opts: Options{Raster: RasterNative, Formats: []string{"pdf"}}, wantCode: errors.ErrCodeInvalidConfig, wantKey: "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("error = %v, want code %v", err, tt.wantCode)
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("error %q should name %q", err, tt.wantKey)
			}
		})
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{Width: 100}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	opts.Width = -1
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call should be a no-op, got %v", err)
	}
}

func TestNeedsRasterizer(t *testing.T) {
	tests := []struct {
		formats []string
		raster  string
		want    bool
	}{
		{[]string{"svg"}, RasterRsvg, false},
		{[]string{"svg", "png"}, RasterRsvg, true},
		{[]string{"png"}, RasterNative, false},
		{[]string{"pdf"}, RasterRsvg, true},
	}

	for _, tt := range tests {
		opts := Options{Formats: tt.formats, Raster: tt.raster}
		if got := opts.NeedsRasterizer(); got != tt.want {
			t.Errorf("NeedsRasterizer(%v, %s) = %v, want %v", tt.formats, tt.raster, got, tt.want)
		}
	}
}

func TestOutputScale(t *testing.T) {
	if got := (&Options{Scale: 2}).OutputScale(); got != 2 {
		t.Errorf("OutputScale() = %v, want 2", got)
	}
	if got := (&Options{Scale: 2, Print: true}).OutputScale(); got != 1 {
		t.Errorf("print OutputScale() = %v, want 1", got)
	}
}

func TestPaletteOptionsZeroValues(t *testing.T) {
	generate := func(o Options) palette.Palette {
		t.Helper()
		p, err := palette.Generate(8, palette.MethodChromaBisection, o.PaletteOptions()...)
		if err != nil {
			t.Fatal(err)
		}
		return p
	}

	zero := generate(Options{Seed: 7})
	explicit := generate(Options{Seed: 7, PaletteValue: palette.DefaultValue})
	for i := range zero {
		if zero[i].Color != explicit[i].Color {
			t.Errorf("colour %d = %v, want %v", i, zero[i].Color, explicit[i].Color)
		}
	}

	dim := generate(Options{Seed: 7, PaletteValue: 0.5})
	if dim[0].Color == explicit[0].Color {
		t.Error("explicit PaletteValue should change the palette")
	}
}
