// Package palettedb reads and writes reference-palette database files:
// sqlite databases holding an ordered list of named colors plus a small
// metadata table.
package palettedb

// Metadata describes a palette database.
type Metadata struct {
	Name        string // Human-readable palette identifier
	Description string // Human-readable description
	Version     string // Version string
}

// ToMap converts Metadata to a map for database insertion.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)

	if m.Name != "" {
		result["name"] = m.Name
	}
	if m.Description != "" {
		result["description"] = m.Description
	}
	if m.Version != "" {
		result["version"] = m.Version
	}

	return result
}
