package sampler

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/MeKo-Tech/iriscolor/internal/colorspace"
)

func fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawDisc fills a disc with a single color.
func drawDisc(img *image.NRGBA, cx, cy int, radius float64, c color.NRGBA) {
	b := img.Bounds()
	r2 := radius * radius
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy <= r2 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func TestFindPupilCenter(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	fill(img, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	// Dark disc with a radial gradient, darkest at (110, 96). The
	// gradient makes the minimum unique so the scan cannot settle on
	// the disc edge.
	const px, py = 110, 96
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			dx := float64(x - px)
			dy := float64(y - py)
			d := math.Sqrt(dx*dx + dy*dy)
			if d > 30 {
				continue
			}
			v := uint8(20 + d*4)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	got := FindPupilCenter(img)

	// The scan runs on a stride-2 grid, so allow one stride of error.
	if abs(got.X-px) > scanStride || abs(got.Y-py) > scanStride {
		t.Errorf("FindPupilCenter = %v, want within %d of (%d, %d)", got, scanStride, px, py)
	}
}

func TestFindPupilCenter_Uniform(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	fill(img, color.NRGBA{R: 120, G: 120, B: 120, A: 255})

	got := FindPupilCenter(img)

	// A uniform image has no darkest point; the scan must still land
	// inside the search disc.
	dx := float64(got.X - 50)
	dy := float64(got.Y - 50)
	if math.Sqrt(dx*dx+dy*dy) > pupilSearchFrac*100+1 {
		t.Errorf("FindPupilCenter on uniform image = %v, outside search disc", got)
	}
}

func TestSamples_Annulus(t *testing.T) {
	// A stylized eye: near-white sclera, a pigmented iris disc, and a
	// dark pupil at the center.
	iris := color.NRGBA{R: 58, G: 111, B: 176, A: 255}
	img := image.NewNRGBA(image.Rect(0, 0, 280, 280))
	fill(img, color.NRGBA{R: 236, G: 232, B: 226, A: 255})
	drawDisc(img, 140, 140, 106, iris)
	drawDisc(img, 140, 140, 34, color.NRGBA{R: 18, G: 12, B: 10, A: 255})

	samples := Samples(img)

	if len(samples) < minSamples {
		t.Fatalf("Expected at least %d annulus samples, got %d", minSamples, len(samples))
	}

	// Sclera is rejected by the lightness ceiling and the pupil by the
	// floor; every surviving sample must be iris pigment.
	want := colorspace.RGB{R: 58, G: 111, B: 176}
	for i, s := range samples {
		if s != want {
			t.Fatalf("Sample %d = %+v, want %+v", i, s, want)
		}
	}
}

func TestSamples_CenterFallback(t *testing.T) {
	// Semi-transparent pixels fail the annulus opacity filter, forcing
	// the central-rectangle fallback, which ignores alpha.
	green := color.NRGBA{R: 100, G: 160, B: 90, A: 100}
	img := image.NewNRGBA(image.Rect(0, 0, 120, 120))
	fill(img, green)

	samples := Samples(img)

	if len(samples) == 0 {
		t.Fatal("Expected fallback samples, got none")
	}

	want := colorspace.RGB{R: 100, G: 160, B: 90}
	for i, s := range samples {
		if s != want {
			t.Fatalf("Sample %d = %+v, want %+v", i, s, want)
		}
	}
}

func TestSamples_TransparentImage(t *testing.T) {
	// Fully transparent: both passes reject everything and the result
	// degrades to a single neutral gray.
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))

	samples := Samples(img)

	if len(samples) != 1 {
		t.Fatalf("Expected exactly 1 sample, got %d", len(samples))
	}
	if want := (colorspace.RGB{R: 128, G: 128, B: 128}); samples[0] != want {
		t.Errorf("Fallback sample = %+v, want %+v", samples[0], want)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
