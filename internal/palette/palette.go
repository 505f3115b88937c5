// Package palette holds the reference table of named colors and the
// nearest-match search over it. A table is immutable after construction
// and safe for concurrent lookups.
package palette

import (
	"math"
	"sort"
	"strings"

	"github.com/MeKo-Tech/iriscolor/internal/colorspace"
)

// Entry is a single named reference color. Names use underscores as
// word separators in storage; they are reported with spaces.
type Entry struct {
	Name string
	Hex  string
}

// Match is one nearest-reference result.
type Match struct {
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Distance int    `json:"distance"`
}

// Table is an ordered, read-only collection of reference colors with
// their parsed RGB values cached for distance computation.
type Table struct {
	entries []Entry
	rgb     []colorspace.RGB
	valid   []bool
}

// NewTable parses the given entries into a lookup table. Entries with
// malformed hex values are retained for listing but never matched.
func NewTable(entries []Entry) Table {
	t := Table{
		entries: make([]Entry, len(entries)),
		rgb:     make([]colorspace.RGB, len(entries)),
		valid:   make([]bool, len(entries)),
	}
	copy(t.entries, entries)
	for i, e := range entries {
		c, err := colorspace.ParseHex(e.Hex)
		if err != nil {
			continue
		}
		t.rgb[i] = c
		t.valid[i] = true
	}
	return t
}

// Default returns the embedded reference table.
func Default() Table {
	return NewTable(defaultEntries)
}

// Len returns the number of entries, including unmatched invalid ones.
func (t Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the underlying entry list in table order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// DisplayName converts a stored reference name to its reported form.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// FindNearest returns the k reference colors closest to the given hex
// color by CIE76 distance, sorted ascending with ties broken by table
// order. Distances are rounded to the nearest integer. A k larger than
// the table returns the whole table.
func (t Table) FindNearest(hex string, k int) []Match {
	query, err := colorspace.ParseHex(hex)
	queryValid := err == nil

	type scored struct {
		index    int
		distance float64
	}
	candidates := make([]scored, 0, len(t.entries))
	for i := range t.entries {
		if !t.valid[i] {
			continue
		}
		d := math.Inf(1)
		if queryValid {
			d = colorspace.Distance(query, t.rgb[i])
		}
		candidates = append(candidates, scored{index: i, distance: d})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if k < 0 {
		k = 0
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	matches := make([]Match, 0, k)
	for _, c := range candidates[:k] {
		matches = append(matches, Match{
			Name:     DisplayName(t.entries[c.index].Name),
			Hex:      t.entries[c.index].Hex,
			Distance: roundDistance(c.distance),
		})
	}
	return matches
}

func roundDistance(d float64) int {
	if math.IsInf(d, 1) {
		return math.MaxInt32
	}
	return int(math.Round(d))
}
