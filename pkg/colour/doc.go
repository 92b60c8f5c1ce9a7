// Package colour converts hue/saturation/value samples to RGB.
//
// # Conversion
//
// [HSVToRGB] implements the classic six-sector HSV model. Every channel is
// floored (not rounded) to an integer in [0,255], so conversions are stable
// across platforms and exactly reproducible in tests:
//
//	rgb := colour.HSVToRGB(120, 0.65, 0.95) // {84 242 84}
//
// Zero saturation yields the achromatic grey for the given value and ignores
// hue entirely.
//
// # Diagnostics
//
// Inputs outside the nominal domain (hue in [0,360], saturation and value in
// [0,1]) are still converted. [HSV.Validate] reports them as an
// INVALID_COLOR_COMPONENT error which callers log as a warning:
//
//	c := colour.HSV{H: 400, S: 0.65, V: 0.95}
//	if err := c.Validate(); err != nil {
//	    logger.Warn("colour component out of range", "err", err)
//	}
//	rgb := c.RGB() // hue wraps to 40
//
// # Output Spaces
//
// [RGB] renders as CSS ([RGB.CSS]) or hex ([RGB.Hex]) for SVG fills, and
// converts to go-colorful ([RGB.Colorful]) for perceptual maths such as
// [Distance] (CIEDE2000).
package colour
