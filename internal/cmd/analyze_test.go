package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MeKo-Tech/iriscolor/internal/palette"
	"github.com/MeKo-Tech/iriscolor/internal/pipeline"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		General: pipeline.GeneralColor{Name: "Blue", Hex: "3a6fb0"},
		GeneralMatches: []palette.Match{
			{Name: "Ocean Blue", Hex: "4f42b5", Distance: 34},
			{Name: "Steel Blue", Hex: "4682b4", Distance: 41},
		},
		Shades: []pipeline.NamedShade{
			{Name: "Ocean Blue", Hex: "3a6fb0", Percent: 80},
			{Name: "Slate Gray", Hex: "708090", Percent: 20},
		},
		Colors: []pipeline.ColorBreakdown{
			{Hex: "3a6fb0", Percent: 80, Nearest: "Ocean Blue"},
			{Hex: "708090", Percent: 20, Nearest: "Slate Gray"},
		},
	}
}

func TestPrintReport_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, "eye.png", sampleReport(), "text"); err != nil {
		t.Fatalf("printReport() error = %v", err)
	}

	output := buf.String()

	if !strings.HasPrefix(output, "eye.png\n") {
		t.Errorf("output should start with the image path, got %q", output)
	}
	if !strings.Contains(output, "General: Blue (#3a6fb0)") {
		t.Errorf("output missing general color line:\n%s", output)
	}
	// Match names arrive already in display form and must not be
	// transformed again on the way out.
	for _, want := range []string{
		"~ Ocean Blue (#4f42b5, distance 34)",
		"~ Steel Blue (#4682b4, distance 41)",
		" 80%  Ocean Blue (#3a6fb0)",
		" 20%  Slate Gray (#708090)",
		"#3a6fb0 -> Ocean Blue",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Ocean_Blue") {
		t.Errorf("output contains underscored name:\n%s", output)
	}
}

func TestPrintReport_TextOmitsEmptySections(t *testing.T) {
	report := sampleReport()
	report.Shades = nil
	report.Colors = nil

	var buf bytes.Buffer
	if err := printReport(&buf, "eye.png", report, "text"); err != nil {
		t.Fatalf("printReport() error = %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "Shades:") {
		t.Errorf("empty shades should be omitted:\n%s", output)
	}
	if strings.Contains(output, "Dominant colors:") {
		t.Errorf("empty dominant colors should be omitted:\n%s", output)
	}
}

func TestPrintReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, "eye.png", sampleReport(), "json"); err != nil {
		t.Fatalf("printReport() error = %v", err)
	}

	var decoded pipeline.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.General.Name != "Blue" {
		t.Errorf("General.Name = %q, want %q", decoded.General.Name, "Blue")
	}
	if len(decoded.GeneralMatches) != 2 || decoded.GeneralMatches[0].Name != "Ocean Blue" {
		t.Errorf("unexpected general matches: %+v", decoded.GeneralMatches)
	}
}
