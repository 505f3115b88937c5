// Package sampler locates the pupil in a decoded eye photograph and
// gathers the pixels that plausibly belong to the iris annulus, the
// pigmented ring between pupil and sclera.
//
// The localization is deliberately approximate: it assumes a roughly
// centered, front-lit eye where the pupil is the darkest compact region
// near the image center. There is no edge or ellipse fitting. When the
// annulus yields too few usable pixels the sampler falls back to the
// central image rectangle, and as a last resort to a single neutral
// gray sample, so the result is never empty.
package sampler

import (
	"image"
	"math"

	"github.com/MeKo-Tech/iriscolor/internal/colorspace"
)

const (
	// Pupil search disc radius as a fraction of min(width, height).
	pupilSearchFrac = 0.35
	// Iris outer bound as a fraction of min(width, height).
	irisMaxFrac = 0.45
	// Annulus bounds as fractions of the iris outer bound.
	irisInnerFrac = 0.22
	irisOuterFrac = 0.85

	// Coarse grid stride for the pupil scan and the fallback pass.
	scanStride = 2

	minAlpha   = 200
	minSamples = 20
)

// FindPupilCenter scans a disc around the image center on a stride-2
// grid and returns the coordinate with the lowest HSL lightness. Ties
// resolve to the first point in scan order.
func FindPupilCenter(img *image.NRGBA) image.Point {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	cx, cy := w/2, h/2

	radius := pupilSearchFrac * float64(minInt(w, h))
	r := int(radius)
	r2 := radius * radius

	best := image.Pt(cx, cy)
	bestLight := math.Inf(1)

	for dy := -r; dy <= r; dy += scanStride {
		y := cy + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -r; dx <= r; dx += scanStride {
			x := cx + dx
			if x < 0 || x >= w {
				continue
			}
			if float64(dx*dx+dy*dy) > r2 {
				continue
			}
			c, _ := pixelAt(img, x, y)
			if l := c.HSL().L; l < bestLight {
				bestLight = l
				best = image.Pt(x, y)
			}
		}
	}

	return best
}

// Samples returns the pixels treated as iris tissue. The primary pass
// samples the annulus around the detected pupil; if it yields fewer
// than 20 pixels those are discarded and the central rectangle is
// sampled instead. An empty second pass yields one neutral gray sample,
// so the returned slice is never empty.
func Samples(img *image.NRGBA) []colorspace.RGB {
	center := FindPupilCenter(img)

	samples := annulusSamples(img, center)
	if len(samples) >= minSamples {
		return samples
	}

	samples = centerSamples(img)
	if len(samples) > 0 {
		return samples
	}

	return []colorspace.RGB{{R: 128, G: 128, B: 128}}
}

// annulusSamples collects every pixel whose distance from the pupil
// center falls within the iris ring and which passes the opacity,
// lightness, and saturation filters. Lightness bounds exclude pupil
// remnants and sclera glare; the saturation floor drops desaturated
// gray noise.
func annulusSamples(img *image.NRGBA, center image.Point) []colorspace.RGB {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	maxRadius := irisMaxFrac * float64(minInt(w, h))
	inner := irisInnerFrac * maxRadius
	outer := irisOuterFrac * maxRadius
	inner2 := inner * inner
	outer2 := outer * outer

	var samples []colorspace.RGB
	for y := 0; y < h; y++ {
		dy := float64(y - center.Y)
		for x := 0; x < w; x++ {
			dx := float64(x - center.X)
			d2 := dx*dx + dy*dy
			if d2 < inner2 || d2 > outer2 {
				continue
			}

			c, alpha := pixelAt(img, x, y)
			if alpha < minAlpha {
				continue
			}
			hsl := c.HSL()
			if hsl.L <= 0.08 || hsl.L >= 0.88 {
				continue
			}
			if hsl.S < 0.04 {
				continue
			}
			samples = append(samples, c)
		}
	}
	return samples
}

// centerSamples is the fallback pass: the central 50%x50% rectangle on
// a coarse stride with slightly looser lightness and saturation bounds.
// It has no further fallback of its own.
func centerSamples(img *image.NRGBA) []colorspace.RGB {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	x0, x1 := w/4, w*3/4
	y0, y1 := h/4, h*3/4

	var samples []colorspace.RGB
	for y := y0; y < y1; y += scanStride {
		for x := x0; x < x1; x += scanStride {
			c, _ := pixelAt(img, x, y)
			hsl := c.HSL()
			if hsl.L <= 0.06 || hsl.L >= 0.92 {
				continue
			}
			if hsl.S < 0.05 {
				continue
			}
			samples = append(samples, c)
		}
	}
	return samples
}

func pixelAt(img *image.NRGBA, x, y int) (colorspace.RGB, uint8) {
	i := img.PixOffset(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
	return colorspace.RGB{
		R: img.Pix[i],
		G: img.Pix[i+1],
		B: img.Pix[i+2],
	}, img.Pix[i+3]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
