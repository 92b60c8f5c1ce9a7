package palette

import (
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/genogrid/pkg/colour"
	"github.com/matzehuels/genogrid/pkg/errors"
)

// Method names a hue selection strategy.
type Method string

const (
	MethodEqualSpacing    Method = "equal_spacing"
	MethodChromaBisection Method = "chroma_bisection"
)

const (
	// Saturation is fixed for every generated colour.
	Saturation = 0.65

	// DefaultValue is the brightness used unless overridden with WithValue.
	DefaultValue = 0.95

	// DefaultMethod is used when Generate receives an empty method.
	DefaultMethod = MethodChromaBisection

	// MaxColors is the largest palette Generate will produce.
	MaxColors = 360

	// deterministicCycles is the number of bisection cycles consumed in order.
	deterministicCycles = 2
)

// Methods lists the supported methods.
var Methods = []Method{MethodChromaBisection, MethodEqualSpacing}

// Entry is one palette colour with the hue that produced it.
type Entry struct {
	Hue   float64
	Color colour.RGB
}

// Palette is an insertion-ordered set of colours with distinct hues.
type Palette []Entry

// Colors returns the RGB values in palette order.
func (p Palette) Colors() []colour.RGB {
	out := make([]colour.RGB, len(p))
	for i, e := range p {
		out[i] = e.Color
	}
	return out
}

// Hues returns the source hues in palette order.
func (p Palette) Hues() []float64 {
	out := make([]float64, len(p))
	for i, e := range p {
		out[i] = e.Hue
	}
	return out
}

// MinDistance returns the smallest CIEDE2000 distance between any two colours,
// or 0 for palettes with fewer than two entries.
func (p Palette) MinDistance() float64 {
	if len(p) < 2 {
		return 0
	}
	best := math.Inf(1)
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			best = min(best, colour.Distance(p[i].Color, p[j].Color))
		}
	}
	return best
}

// Option configures Generate.
type Option func(*generator)

type generator struct {
	value  float64
	rng    *rand.Rand
	logger *log.Logger
}

// WithValue overrides the brightness of every colour. Values outside [0,1]
// are logged as a warning and used as given.
func WithValue(v float64) Option {
	return func(g *generator) { g.value = v }
}

// WithRand sets the random source used to shuffle bisection candidates.
func WithRand(r *rand.Rand) Option {
	return func(g *generator) { g.rng = r }
}

// WithSeed seeds the shuffle so chroma_bisection output is reproducible.
func WithSeed(seed uint64) Option {
	return func(g *generator) { g.rng = newRand(seed) }
}

// WithLogger receives diagnostics. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(g *generator) { g.logger = l }
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Generate returns exactly count colours chosen by method.
//
// It fails with OUT_OF_RANGE unless 1 <= count <= 360, and with
// UNKNOWN_METHOD for an unrecognized method. An empty method selects
// DefaultMethod.
func Generate(count int, method Method, opts ...Option) (Palette, error) {
	g := generator{value: DefaultValue}
	for _, opt := range opts {
		opt(&g)
	}
	if g.logger == nil {
		g.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if g.rng == nil {
		g.rng = newRand(uint64(time.Now().UnixNano()))
	}

	if count < 1 || count > MaxColors {
		err := errors.New(errors.ErrCodeOutOfRange, "palette size %d outside 1..%d", count, MaxColors)
		g.logger.Warn("palette not generated", "err", err)
		return nil, err
	}
	if err := (colour.HSV{S: Saturation, V: g.value}).Validate(); err != nil {
		g.logger.Warn("palette value out of range", "value", g.value, "err", err)
	}

	switch method {
	case MethodEqualSpacing:
		return g.equalSpacing(count), nil
	case MethodChromaBisection, "":
		return g.chromaBisection(count), nil
	default:
		err := errors.New(errors.ErrCodeUnknownMethod, "unknown palette method %q", method)
		g.logger.Warn("palette not generated", "err", err)
		return nil, err
	}
}

func (g *generator) entry(hue float64) Entry {
	return Entry{Hue: hue, Color: colour.HSVToRGB(hue, Saturation, g.value)}
}

func (g *generator) equalSpacing(count int) Palette {
	p := make(Palette, 0, count)
	for i := 1; i <= count; i++ {
		hue := math.Mod(float64(i*360)/float64(count), 360)
		p = append(p, g.entry(hue))
	}
	return p
}
