package colour

import (
	"testing"

	"github.com/matzehuels/genogrid/pkg/errors"
)

func TestHSVToRGBSectors(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		want RGB
	}{
		{"red", 0, RGB{242, 84, 84}},
		{"yellow", 60, RGB{242, 242, 84}},
		{"green", 120, RGB{84, 242, 84}},
		{"cyan", 180, RGB{84, 242, 242}},
		{"blue", 240, RGB{84, 84, 242}},
		{"magenta", 300, RGB{242, 84, 242}},
		{"full turn", 360, RGB{242, 84, 84}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToRGB(tt.h, 0.65, 0.95); got != tt.want {
				t.Errorf("HSVToRGB(%v, 0.65, 0.95) = %v, want %v", tt.h, got, tt.want)
			}
		})
	}
}

func TestHSVToRGBAchromatic(t *testing.T) {
	for _, h := range []float64{0, 37, 180, 359.9, 720, -45} {
		if got, want := HSVToRGB(h, 0, 0.5), (RGB{127, 127, 127}); got != want {
			t.Errorf("HSVToRGB(%v, 0, 0.5) = %v, want %v", h, got, want)
		}
	}
	if got, want := HSVToRGB(10, 0, 1), (RGB{255, 255, 255}); got != want {
		t.Errorf("HSVToRGB(10, 0, 1) = %v, want %v", got, want)
	}
	if got, want := HSVToRGB(10, 0, 0), (RGB{0, 0, 0}); got != want {
		t.Errorf("HSVToRGB(10, 0, 0) = %v, want %v", got, want)
	}
}

func TestHSVToRGBWraps(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		same float64
	}{
		{"above 360", 420, 60},
		{"negative", -60, 300},
		{"far negative", -300, 60},
		{"two turns", 735, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToRGB(tt.h, 0.65, 0.95)
			want := HSVToRGB(tt.same, 0.65, 0.95)
			if got != want {
				t.Errorf("HSVToRGB(%v) = %v, want %v (same as %v)", tt.h, got, want, tt.same)
			}
		})
	}
}

func TestHSVToRGBContinuousAtSectorBoundaries(t *testing.T) {
	for _, boundary := range []float64{60, 120, 180, 240, 300} {
		a := HSVToRGB(boundary-0.001, 0.65, 0.95)
		b := HSVToRGB(boundary+0.001, 0.65, 0.95)
		if absDiff(a.R, b.R) > 1 || absDiff(a.G, b.G) > 1 || absDiff(a.B, b.B) > 1 {
			t.Errorf("discontinuity at %v: %v vs %v", boundary, a, b)
		}
	}
}

func TestHSVToRGBChannelRange(t *testing.T) {
	for h := 0.0; h <= 360; h += 7.5 {
		for _, s := range []float64{0.1, 0.65, 1} {
			c := HSVToRGB(h, s, 1)
			for _, ch := range []int{c.R, c.G, c.B} {
				if ch < 0 || ch > 255 {
					t.Fatalf("HSVToRGB(%v, %v, 1) = %v, channel out of range", h, s, c)
				}
			}
		}
	}
}

func TestHSVValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       HSV
		wantErr bool
	}{
		{"nominal", HSV{120, 0.65, 0.95}, false},
		{"bounds", HSV{360, 1, 0}, false},
		{"hue high", HSV{361, 0.5, 0.5}, true},
		{"hue negative", HSV{-1, 0.5, 0.5}, true},
		{"saturation high", HSV{10, 1.5, 0.5}, true},
		{"value negative", HSV{10, 0.5, -0.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidColorComponent) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidColorComponent)
			}
		})
	}
}

func TestHSVOutOfRangeStillConverts(t *testing.T) {
	c := HSV{H: 10, S: 0.5, V: 1.2}
	if c.Validate() == nil {
		t.Fatal("Validate() = nil, want diagnostic")
	}
	got := c.RGB()
	if got.R <= 255 {
		t.Errorf("RGB().R = %d, want best-effort value above 255", got.R)
	}
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{84, 242, 84}
	if got, want := c.CSS(), "rgb(84,242,84)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
	if got, want := c.Hex(), "#54f254"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
	if got, want := (RGB{300, -5, 16}).Hex(), "#ff0010"; got != want {
		t.Errorf("Hex() clamped = %q, want %q", got, want)
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex("#4682b4")
	if err != nil {
		t.Fatalf("ParseHex error: %v", err)
	}
	if want := (RGB{70, 130, 180}); got != want {
		t.Errorf("ParseHex() = %v, want %v", got, want)
	}

	if _, err := ParseHex("steelblue"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseHex(name) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestDistance(t *testing.T) {
	red := HSVToRGB(0, 0.65, 0.95)
	if d := Distance(red, red); d != 0 {
		t.Errorf("Distance(red, red) = %v, want 0", d)
	}
	near := HSVToRGB(2, 0.65, 0.95)
	far := HSVToRGB(180, 0.65, 0.95)
	if Distance(red, near) >= Distance(red, far) {
		t.Errorf("Distance(red, near) = %v should be below Distance(red, far) = %v",
			Distance(red, near), Distance(red, far))
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
