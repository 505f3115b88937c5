// Package pipeline wires decoding, iris sampling, shade clustering, and
// classification into a single analysis step producing the color report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"

	"log/slog"

	"github.com/MeKo-Tech/iriscolor/internal/classify"
	"github.com/MeKo-Tech/iriscolor/internal/cluster"
	"github.com/MeKo-Tech/iriscolor/internal/codec"
	"github.com/MeKo-Tech/iriscolor/internal/palette"
	"github.com/MeKo-Tech/iriscolor/internal/sampler"
)

// Options configures one analyzer.
type Options struct {
	// MaxDimension bounds the long axis of the working raster.
	MaxDimension int
	// MaxShades caps the number of dominant colors reported.
	MaxShades int
	// MatchesPerShade is the reference-match count per dominant color.
	MatchesPerShade int
	// GeneralMatches is the reference-match count for the general color.
	GeneralMatches int
}

func (o Options) withDefaults() Options {
	if o.MaxDimension <= 0 {
		o.MaxDimension = 280
	}
	if o.MaxShades <= 0 {
		o.MaxShades = cluster.DefaultMaxShades
	}
	if o.MatchesPerShade <= 0 {
		o.MatchesPerShade = 2
	}
	if o.GeneralMatches <= 0 {
		o.GeneralMatches = 5
	}
	return o
}

// GeneralColor is the overall eye-color verdict.
type GeneralColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// NamedShade aggregates the dominant colors sharing one nearest
// reference name.
type NamedShade struct {
	Name    string `json:"name"`
	Hex     string `json:"hex"`
	Percent int    `json:"percent"`
}

// ColorBreakdown is one dominant color with its reference matches.
type ColorBreakdown struct {
	Hex     string          `json:"hex"`
	Percent int             `json:"percent"`
	Nearest string          `json:"nearest"`
	Matches []palette.Match `json:"matches"`
}

// Report is the terminal result of one analysis. It is created once per
// request and not retained.
type Report struct {
	General        GeneralColor     `json:"general"`
	Shades         []NamedShade     `json:"shades"`
	Colors         []ColorBreakdown `json:"colors"`
	GeneralMatches []palette.Match  `json:"generalMatches"`
}

// Analyzer runs analyses against one read-only reference table. It is
// safe for concurrent use; each call owns its own buffers.
type Analyzer struct {
	table  palette.Table
	opts   Options
	logger *slog.Logger
}

// New creates an analyzer over the given reference table.
func New(table palette.Table, opts Options, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		table:  table,
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// Analyze decodes the image bytes and produces the color report.
// Decoding is the only failure path: a successfully decoded image
// always yields a well-formed report, degrading through the sampler's
// fallback chain rather than erroring.
func (a *Analyzer) Analyze(ctx context.Context, data []byte) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	width, height, err := codec.Config(data)
	if err != nil {
		return nil, err
	}
	a.log().Debug("Decoding image", "width", width, "height", height, "max_dimension", a.opts.MaxDimension)

	img, err := codec.DecodeResized(data, a.opts.MaxDimension)
	if err != nil {
		return nil, err
	}

	samples := sampler.Samples(img)
	dominants := cluster.Dominants(samples, a.opts.MaxShades)
	a.log().Debug("Sampled iris region", "samples", len(samples), "dominants", len(dominants))

	shades := a.aggregateShades(dominants)

	weights := make([]classify.ShadeWeight, len(shades))
	for i, s := range shades {
		weights[i] = classify.ShadeWeight{Name: s.Name, Percent: s.Percent}
	}
	category, rep := classify.General(dominants, weights)
	repHex := rep.Hex()

	colors := make([]ColorBreakdown, 0, len(dominants))
	for _, d := range dominants {
		matches := a.table.FindNearest(d.Hex(), a.opts.MatchesPerShade)
		nearest := ""
		if len(matches) > 0 {
			nearest = matches[0].Name
		}
		colors = append(colors, ColorBreakdown{
			Hex:     d.Hex(),
			Percent: d.Percent,
			Nearest: nearest,
			Matches: matches,
		})
	}

	report := &Report{
		General:        GeneralColor{Name: string(category), Hex: repHex},
		Shades:         shades,
		Colors:         colors,
		GeneralMatches: a.table.FindNearest(repHex, a.opts.GeneralMatches),
	}

	a.log().Info("Analysis complete", "general", report.General.Name, "hex", report.General.Hex, "shades", len(report.Shades))
	return report, nil
}

// AnalyzeFile reads and analyzes a single image file.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	report, err := a.Analyze(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", path, err)
	}
	return report, nil
}

// aggregateShades maps each dominant color to its single best reference
// name and sums percentages per distinct name. When several dominants
// share a name, the shade keeps the most recently merged hex. The
// result is ordered by descending percentage.
func (a *Analyzer) aggregateShades(dominants []cluster.Dominant) []NamedShade {
	totals := make(map[string]*NamedShade)
	var order []string

	for _, d := range dominants {
		matches := a.table.FindNearest(d.Hex(), 1)
		if len(matches) == 0 {
			continue
		}
		name := matches[0].Name

		shade, ok := totals[name]
		if !ok {
			shade = &NamedShade{Name: name}
			totals[name] = shade
			order = append(order, name)
		}
		shade.Percent += d.Percent
		shade.Hex = d.Hex()
	}

	shades := make([]NamedShade, 0, len(order))
	for _, name := range order {
		shades = append(shades, *totals[name])
	}
	sort.SliceStable(shades, func(i, j int) bool {
		return shades[i].Percent > shades[j].Percent
	})
	return shades
}

func (a *Analyzer) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return slog.Default()
}
