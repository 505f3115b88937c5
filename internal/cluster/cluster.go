// Package cluster reduces a sampled pixel set to a small number of
// dominant colors with percentage weights, by quantizing on a fixed
// L*a*b* grid. The grid is finer on lightness than on chroma: lightness
// banding separates iris pigmentation better than hue differences do.
package cluster

import (
	"math"
	"sort"

	"github.com/MeKo-Tech/iriscolor/internal/colorspace"
)

// DefaultMaxShades is the bucket cap for the primary pipeline
// configuration.
const DefaultMaxShades = 10

// Dominant is a cluster-representative color and its share of the kept
// samples, in percent.
type Dominant struct {
	Color   colorspace.RGB
	Percent int
}

// Hex returns the representative color as a 6-hex-digit string.
func (d Dominant) Hex() string {
	return d.Color.Hex()
}

type bucketKey struct {
	l, a, b int
}

type bucket struct {
	sumR, sumG, sumB float64
	count            int
}

// Dominants groups samples into Lab-grid buckets and returns up to
// maxShades representative colors ordered by descending weight, ties
// keeping bucket discovery order. Each percentage is rounded
// independently against the kept total, so the sum is close to but not
// forced to exactly 100.
func Dominants(samples []colorspace.RGB, maxShades int) []Dominant {
	if len(samples) == 0 {
		return nil
	}
	if maxShades <= 0 {
		maxShades = DefaultMaxShades
	}

	buckets := make(map[bucketKey]*bucket)
	order := make([]bucketKey, 0, 16)

	for _, s := range samples {
		lab := s.Lab()
		key := bucketKey{
			l: int(math.Floor(lab.L / 4)),
			a: int(math.Floor((lab.A + 128) / 16)),
			b: int(math.Floor((lab.B + 128) / 16)),
		}
		bk, ok := buckets[key]
		if !ok {
			bk = &bucket{}
			buckets[key] = bk
			order = append(order, key)
		}
		bk.sumR += float64(s.R)
		bk.sumG += float64(s.G)
		bk.sumB += float64(s.B)
		bk.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return buckets[order[i]].count > buckets[order[j]].count
	})
	if len(order) > maxShades {
		order = order[:maxShades]
	}

	total := 0
	for _, key := range order {
		total += buckets[key].count
	}

	dominants := make([]Dominant, 0, len(order))
	for _, key := range order {
		bk := buckets[key]
		n := float64(bk.count)
		dominants = append(dominants, Dominant{
			Color:   colorspace.FromFloats(bk.sumR/n, bk.sumG/n, bk.sumB/n),
			Percent: int(math.Round(float64(bk.count) / float64(total) * 100)),
		})
	}
	return dominants
}
