package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/genogrid/pkg/errors"
)

// HSV is a hue/saturation/value triple. H is in degrees, S and V in [0,1].
type HSV struct {
	H, S, V float64
}

// RGB is an 8-bit-per-channel colour. Channels are ints in [0,255].
type RGB struct {
	R, G, B int
}

// Validate reports components outside the nominal domain. The returned error
// is a diagnostic; conversion never depends on it.
func (c HSV) Validate() error {
	switch {
	case c.H < 0 || c.H > 360 || math.IsNaN(c.H):
		return errors.New(errors.ErrCodeInvalidColorComponent, "hue %g outside [0,360]", c.H)
	case c.S < 0 || c.S > 1 || math.IsNaN(c.S):
		return errors.New(errors.ErrCodeInvalidColorComponent, "saturation %g outside [0,1]", c.S)
	case c.V < 0 || c.V > 1 || math.IsNaN(c.V):
		return errors.New(errors.ErrCodeInvalidColorComponent, "value %g outside [0,1]", c.V)
	}
	return nil
}

// RGB converts c with [HSVToRGB].
func (c HSV) RGB() RGB {
	return HSVToRGB(c.H, c.S, c.V)
}

// HSVToRGB converts a hue/saturation/value triple to RGB.
func HSVToRGB(h, s, v float64) RGB {
	if s == 0 {
		g := channel(v)
		return RGB{g, g, g}
	}

	sector := math.Floor(h / 60)
	f := h/60 - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch mod6(sector) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{channel(r), channel(g), channel(b)}
}

// mod6 maps a floored sector index onto 0..5, including negative hues.
func mod6(sector float64) int {
	c := int(math.Mod(sector, 6))
	if c < 0 {
		c += 6
	}
	return c
}

func channel(x float64) int {
	return int(math.Floor(x * 255))
}

// CSS returns the colour as an SVG/CSS functional value, e.g. "rgb(84,242,84)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex returns the colour as "#rrggbb". Channels are clamped to [0,255].
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

// Colorful converts c to a go-colorful colour for perceptual maths.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(clamp(c.R)) / 255,
		G: float64(clamp(c.G)) / 255,
		B: float64(clamp(c.B)) / 255,
	}
}

// Distance returns the CIEDE2000 perceptual distance between a and b.
// Identical colours have distance 0; just-noticeable differences are around 0.01.
func Distance(a, b RGB) float64 {
	return a.Colorful().DistanceCIEDE2000(b.Colorful())
}

// ParseHex parses "#rrggbb" or "#rgb".
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{int(r), int(g), int(b)}, nil
}

func clamp(x int) int {
	return max(0, min(x, 255))
}
