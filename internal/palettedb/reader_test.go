package palettedb

import (
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/iriscolor/internal/palette"
)

func TestReader_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	metadata := Metadata{
		Name:        "Test Palette",
		Description: "Round-trip palette",
		Version:     "1.0",
	}

	entries := []palette.Entry{
		{Name: "Ocean_Blue", Hex: "3a6ea5"},
		{Name: "Hazel", Hex: "8e7618"},
		{Name: "Chestnut_Brown", Hex: "6b4423"},
	}

	if err := Write(dbPath, metadata, entries); err != nil {
		t.Fatalf("Failed to write palette: %v", err)
	}

	r, err := OpenReader(dbPath)
	if err != nil {
		t.Fatalf("Failed to open reader: %v", err)
	}
	defer r.Close()

	got, err := r.Entries()
	if err != nil {
		t.Fatalf("Failed to read entries: %v", err)
	}

	if len(got) != len(entries) {
		t.Fatalf("Expected %d entries, got %d", len(entries), len(got))
	}

	// Insertion order must be preserved
	for i, e := range entries {
		if got[i] != e {
			t.Errorf("Entry %d: got %+v, want %+v", i, got[i], e)
		}
	}
}

func TestReader_Metadata(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	expected := Metadata{
		Name:        "Test Palette",
		Description: "Metadata palette",
		Version:     "2.1",
	}

	entries := []palette.Entry{{Name: "Gray", Hex: "808080"}}
	if err := Write(dbPath, expected, entries); err != nil {
		t.Fatalf("Failed to write palette: %v", err)
	}

	r, err := OpenReader(dbPath)
	if err != nil {
		t.Fatalf("Failed to open reader: %v", err)
	}
	defer r.Close()

	got, err := r.Metadata()
	if err != nil {
		t.Fatalf("Failed to read metadata: %v", err)
	}

	if got != expected {
		t.Errorf("Metadata mismatch: got %+v, want %+v", got, expected)
	}
}

func TestReader_MissingFile(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "nope.db"))
	if err == nil {
		t.Fatal("Expected error opening missing database")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	entries := []palette.Entry{
		{Name: "Pure_Red", Hex: "ff0000"},
		{Name: "Pure_Blue", Hex: "0000ff"},
	}
	if err := Write(dbPath, Metadata{Name: "Test"}, entries); err != nil {
		t.Fatalf("Failed to write palette: %v", err)
	}

	table, err := Load(dbPath)
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Expected table of 2, got %d", table.Len())
	}

	matches := table.FindNearest("fe0101", 1)
	if len(matches) != 1 || matches[0].Name != "Pure Red" {
		t.Errorf("Expected nearest Pure Red, got %+v", matches)
	}
}

func TestLoad_EmptyPalette(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "empty.db")

	if err := Write(dbPath, Metadata{Name: "Empty"}, nil); err != nil {
		t.Fatalf("Failed to write palette: %v", err)
	}

	if _, err := Load(dbPath); err == nil {
		t.Fatal("Expected error loading empty palette")
	}
}
