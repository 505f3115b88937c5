// Package codec decodes encoded image bytes into the working raster the
// sampler operates on: an NRGBA buffer with an explicit alpha channel,
// bounded to a maximum dimension on the long axis.
package codec

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/gift"

	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DecodeError reports input bytes that are not a valid or supported
// image. It is the only user-visible failure of the analysis pipeline.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("failed to decode %s image: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("failed to decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Config returns the native dimensions of the encoded image without
// decoding the full raster.
func Config(data []byte) (width, height int, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, &DecodeError{Format: format, Err: err}
	}
	return cfg.Width, cfg.Height, nil
}

// DecodeResized decodes the image and scales it down so the long axis is
// at most maxDim pixels (maxDim <= 0 disables scaling). The result is
// always a freshly allocated NRGBA raster; smaller images are never
// upscaled.
func DecodeResized(data []byte, maxDim int) (*image.NRGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}

	b := img.Bounds()
	g := gift.New()
	if maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		if b.Dx() >= b.Dy() {
			g.Add(gift.Resize(maxDim, 0, gift.LanczosResampling))
		} else {
			g.Add(gift.Resize(0, maxDim, gift.LanczosResampling))
		}
	}

	dst := image.NewNRGBA(g.Bounds(b))
	g.Draw(dst, img)
	return dst, nil
}
