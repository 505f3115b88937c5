// Package classify maps representative colors to general eye-color
// categories via an ordered table of hue bands, with a combined
// brown/green override for hazel eyes.
package classify

import (
	"strings"

	"github.com/MeKo-Tech/iriscolor/internal/cluster"
	"github.com/MeKo-Tech/iriscolor/internal/colorspace"
)

// Category is a general eye-color label.
type Category string

const (
	Blue   Category = "Blue"
	Green  Category = "Green"
	Brown  Category = "Brown"
	Hazel  Category = "Hazel"
	Amber  Category = "Amber"
	Violet Category = "Violet"
	Gray   Category = "Gray"
)

// grayCutoff is the saturation below which a color is unpigmented
// regardless of hue.
const grayCutoff = 0.1

// hazelThreshold is the minimum aggregated percentage each of the brown
// and green shade groups must reach to force the Hazel category.
const hazelThreshold = 15

// representativeLimit caps how many of the heaviest dominant colors are
// considered when picking the representative swatch.
const representativeLimit = 6

// hueBand maps a hue range in degrees to a category, optionally gated
// on saturation. Bands are evaluated in order; the first match wins.
type hueBand struct {
	minHue   float64
	maxHue   float64
	maxIncl  bool // hue range is [min,max] instead of [min,max)
	minSat   float64
	maxSat   float64 // 0 means unbounded
	category Category
}

func (b hueBand) matches(h, s float64) bool {
	if h < b.minHue {
		return false
	}
	if b.maxIncl {
		if h > b.maxHue {
			return false
		}
	} else if h >= b.maxHue {
		return false
	}
	if s < b.minSat {
		return false
	}
	if b.maxSat > 0 && s >= b.maxSat {
		return false
	}
	return true
}

var hueBands = []hueBand{
	{minHue: 260, maxHue: 300, maxIncl: true, category: Violet},
	{minHue: 200, maxHue: 260, category: Blue},
	// Teal reads as green when pigmented, blue when washed out.
	{minHue: 170, maxHue: 200, minSat: 0.15, category: Green},
	{minHue: 170, maxHue: 200, category: Blue},
	{minHue: 80, maxHue: 170, category: Green},
	// Yellow-green band typical of hazel irises.
	{minHue: 50, maxHue: 80, category: Hazel},
	{minHue: 35, maxHue: 50, category: Amber},
	{minHue: 20, maxHue: 35, category: Brown},
	{minHue: 0, maxHue: 20, category: Brown},
	{minHue: 340, maxHue: 360, maxIncl: true, category: Brown},
	// Desaturated slate tones read as blue-gray eyes. The blue and
	// violet bands above already cover [210,270], so this entry is
	// shadowed; it stays so the table lists the full rule set.
	{minHue: 210, maxHue: 270, maxIncl: true, maxSat: 0.25, category: Blue},
}

// Classify returns the category for a single color. Saturation below
// 0.1 is Gray immediately; otherwise the first matching hue band wins,
// and an unmatched hue defaults to Gray.
func Classify(c colorspace.RGB) Category {
	hsl := c.HSL()
	if hsl.S < grayCutoff {
		return Gray
	}
	for _, band := range hueBands {
		if band.matches(hsl.H, hsl.S) {
			return band.category
		}
	}
	return Gray
}

// ShadeWeight is a named shade and its percentage, used to aggregate
// category evidence across the shade breakdown.
type ShadeWeight struct {
	Name    string
	Percent int
}

// Shade names counted as brown or green evidence for the hazel
// override. Matching is by case-insensitive substring.
var brownKeywords = []string{
	"brown", "chocolate", "walnut", "chestnut", "coffee", "mocha",
	"caramel", "cocoa", "mahogany", "umber", "sepia", "bronze",
	"copper", "tan", "amber", "honey", "cognac", "whiskey",
}

var greenKeywords = []string{
	"green", "sage", "olive", "emerald", "moss", "fern", "jade",
	"forest", "mint", "pistachio",
}

// General picks the overall eye-color category and the representative
// color it was judged from. When both brown-named and green-named
// shades each cover at least 15% of the iris, the category is forced to
// Hazel: hazel eyes show both regions without either one dominating.
// Otherwise the most saturated of the heaviest dominants is classified
// directly, since iris pigment is typically more saturated than the
// skin or sclera artifacts that survive filtering.
func General(dominants []cluster.Dominant, shades []ShadeWeight) (Category, colorspace.RGB) {
	rep := representative(dominants)

	brown, green := keywordTotals(shades)
	if brown >= hazelThreshold && green >= hazelThreshold {
		return Hazel, rep
	}
	return Classify(rep), rep
}

func representative(dominants []cluster.Dominant) colorspace.RGB {
	limit := representativeLimit
	if len(dominants) < limit {
		limit = len(dominants)
	}

	best := colorspace.RGB{R: 128, G: 128, B: 128}
	bestSat := -1.0
	for _, d := range dominants[:limit] {
		if s := d.Color.HSL().S; s > bestSat {
			bestSat = s
			best = d.Color
		}
	}
	return best
}

func keywordTotals(shades []ShadeWeight) (brown, green int) {
	for _, shade := range shades {
		name := strings.ToLower(shade.Name)
		if containsAny(name, brownKeywords) {
			brown += shade.Percent
		}
		if containsAny(name, greenKeywords) {
			green += shade.Percent
		}
	}
	return brown, green
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
