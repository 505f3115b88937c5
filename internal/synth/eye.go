// Package synth renders synthetic eye images: a sclera field, a
// perlin-textured iris annulus of a requested pigment color, and a dark
// pupil disc. The output is deterministic for a given seed and serves
// as demo input and as pipeline test fixtures.
package synth

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/aquilax/go-perlin"
	"github.com/disintegration/gift"

	"github.com/MeKo-Tech/iriscolor/internal/colorspace"
)

// Params describes a rendered eye.
type Params struct {
	Size      int     // square image dimension in pixels
	IrisHex   string  // pigment color of the iris annulus
	Variation float64 // 0..1 pigment variation strength
	Blur      float64 // gaussian sigma softening region edges, 0 disables
	Seed      int64
}

// DefaultParams returns a medium-blue eye at the pipeline's working
// dimension.
func DefaultParams() Params {
	return Params{
		Size:      280,
		IrisHex:   "3a6fb0",
		Variation: 0.35,
		Blur:      1.2,
		Seed:      1337,
	}
}

// Geometry of the rendered eye relative to the image size. The iris
// fits inside the sampler's annulus bounds so synthetic eyes exercise
// the primary sampling path.
const (
	pupilFrac = 0.12
	irisFrac  = 0.38
)

var (
	pupilColor  = colorspace.RGB{R: 18, G: 12, B: 10}
	scleraColor = colorspace.RGB{R: 236, G: 232, B: 226}
)

// Eye renders a centered synthetic eye.
func Eye(p Params) (*image.NRGBA, error) {
	if p.Size <= 0 {
		return nil, fmt.Errorf("size must be positive")
	}
	if p.Variation < 0 || p.Variation > 1 {
		return nil, fmt.Errorf("variation must be within [0,1]")
	}

	iris, err := colorspace.ParseHex(p.IrisHex)
	if err != nil {
		return nil, fmt.Errorf("invalid iris color: %w", err)
	}

	noise := perlin.NewPerlin(2.0, 2.0, 3, p.Seed)

	size := p.Size
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	cx := float64(size) / 2
	cy := float64(size) / 2
	pupilR := pupilFrac * float64(size)
	irisR := irisFrac * float64(size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Hypot(dx, dy)

			var c colorspace.RGB
			switch {
			case d <= pupilR:
				c = pupilColor
			case d <= irisR:
				c = irisPigment(iris, noise, x, y, size, d, pupilR, irisR, p.Variation)
			default:
				c = scleraColor
			}

			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
		}
	}

	if p.Blur > 0 {
		g := gift.New(gift.GaussianBlur(float32(p.Blur)))
		dst := image.NewNRGBA(g.Bounds(img.Bounds()))
		g.Draw(dst, img)
		img = dst
	}

	return img, nil
}

// irisPigment modulates the base pigment with perlin noise and a mild
// limbal darkening toward the outer edge. All channels scale by the
// same factor, so the hue of the requested color is preserved.
func irisPigment(base colorspace.RGB, noise *perlin.Perlin, x, y, size int, d, pupilR, irisR, variation float64) colorspace.RGB {
	u := float64(x) / float64(size) * 6
	v := float64(y) / float64(size) * 6

	n := noise.Noise2D(u, v) // approximately [-1,1]
	factor := 1 + variation*0.25*n

	edge := (d - pupilR) / (irisR - pupilR)
	factor *= 1.05 - 0.25*edge*edge

	return colorspace.FromFloats(
		float64(base.R)*factor,
		float64(base.G)*factor,
		float64(base.B)*factor,
	)
}

// WritePNG encodes the image to path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode image %s: %w", path, err)
	}
	return nil
}

// EncodePNG returns the image as encoded PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
