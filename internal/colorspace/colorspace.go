// Package colorspace provides the color representations and conversions
// the analysis pipeline is built on: 8-bit sRGB triples, hex strings,
// HSL for the heuristic filters, and CIE L*a*b* for perceptual distance.
package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

// HSL holds hue in degrees [0,360), saturation and lightness in [0,1].
type HSL struct {
	H, S, L float64
}

// Lab is a CIE L*a*b* coordinate relative to the D65 reference white.
// L is in [0,100]; A and B are unbounded but typically within ±128.
type Lab struct {
	L, A, B float64
}

// FromFloats rounds each channel and clamps it to [0,255].
func FromFloats(r, g, b float64) RGB {
	return RGB{
		R: clampChannel(math.Round(r)),
		G: clampChannel(math.Round(g)),
		B: clampChannel(math.Round(b)),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Hex returns the 6-hex-digit lowercase form without a leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// HexFromFloats rounds and clamps each channel and formats the result as
// a 6-hex-digit string.
func HexFromFloats(r, g, b float64) string {
	return FromFloats(r, g, b).Hex()
}

// ParseHex parses a 6-hex-digit color string, with or without a leading
// '#', case-insensitively. Any other format is rejected; callers are
// expected to skip the offending color rather than abort.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// HSL converts the color using the conventional six-sector hue
// computation. Saturation follows the symmetric formula split on
// lightness 0.5.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxv := math.Max(r, math.Max(g, b))
	minv := math.Min(r, math.Min(g, b))
	l := (maxv + minv) / 2

	if maxv == minv {
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxv - minv
	var s float64
	if l > 0.5 {
		s = d / (2 - maxv - minv)
	} else {
		s = d / (maxv + minv)
	}

	var h float64
	switch maxv {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: h, S: s, L: l}
}

// Lab converts the color via the standard two-stage transform: sRGB
// gamma decoding, linear RGB to CIE XYZ with the sRGB/D65 matrix, then
// the piecewise cube-root transform against the D65 reference white.
func (c RGB) Lab() Lab {
	rl := srgbToLinear(float64(c.R) / 255.0)
	gl := srgbToLinear(float64(c.G) / 255.0)
	bl := srgbToLinear(float64(c.B) / 255.0)

	// D65 reference white: Xn=0.95047, Yn=1.0, Zn=1.08883.
	x := (0.4124564*rl + 0.3575761*gl + 0.1804375*bl) / 0.95047
	y := (0.2126729*rl + 0.7151522*gl + 0.0721750*bl) / 1.0
	z := (0.0193339*rl + 0.1191920*gl + 0.9503041*bl) / 1.08883

	fx := labF(x)
	fy := labF(y)
	fz := labF(z)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// Distance is the CIE76 delta-E between two colors: the Euclidean
// distance of their Lab coordinates.
func Distance(a, b RGB) float64 {
	la := a.Lab()
	lb := b.Lab()
	dl := la.L - lb.L
	da := la.A - lb.A
	db := la.B - lb.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DistanceHex parses both hex strings and returns their delta-E. An
// unparseable input yields +Inf so nearest-match searches sort it last.
func DistanceHex(a, b string) float64 {
	ca, err := ParseHex(a)
	if err != nil {
		return math.Inf(1)
	}
	cb, err := ParseHex(b)
	if err != nil {
		return math.Inf(1)
	}
	return Distance(ca, cb)
}
