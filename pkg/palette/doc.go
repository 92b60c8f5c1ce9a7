// Package palette generates sets of perceptually spread colours.
//
// # Methods
//
// Two strategies sample the hue wheel at a fixed pastel saturation (0.65):
//
//   - [MethodEqualSpacing]: count hues at equal angular steps. Deterministic.
//   - [MethodChromaBisection] (default): repeatedly halve the sampling
//     interval (60°, 30°, 20°, 15°, ...) so the first colours chosen are the
//     most separated. From the third cycle on, each cycle's new hues are
//     shuffled so consecutive picks do not come from the same narrow region
//     of the wheel.
//
// The first two bisection cycles contribute twelve hues without any
// randomness, so palettes of up to twelve colours are identical on every run.
//
// # Usage
//
//	p, err := palette.Generate(8, palette.MethodChromaBisection, palette.WithSeed(42))
//	if err != nil {
//	    return err // OUT_OF_RANGE or UNKNOWN_METHOD
//	}
//	for _, e := range p {
//	    fmt.Println(e.Hue, e.Color.Hex())
//	}
//
// # Categorical Colouring
//
// [Mapper] assigns palette colours to item values in first-seen order, which
// is how the renderer colours cells per category.
package palette
