package palettedb

import (
	"database/sql"
	"fmt"

	"github.com/MeKo-Tech/iriscolor/internal/palette"
)

// Reader reads a palette from a sqlite database.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens a palette database for reading.
func OpenReader(path string) (*Reader, error) {
	// Open in read-only mode with immutable flag
	db, err := sql.Open("sqlite", path+"?mode=ro&immutable=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify schema exists
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='colors'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain colors table")
	}

	return &Reader{
		db:   db,
		path: path,
	}, nil
}

// Entries returns all palette entries in stored order.
func (r *Reader) Entries() ([]palette.Entry, error) {
	rows, err := r.db.Query("SELECT name, hex FROM colors ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	var entries []palette.Entry
	for rows.Next() {
		var e palette.Entry
		if err := rows.Scan(&e.Name, &e.Hex); err != nil {
			return nil, fmt.Errorf("failed to scan color row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating colors: %w", err)
	}

	return entries, nil
}

// Metadata reads metadata from the database.
func (r *Reader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	metaMap := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		metaMap[name] = value
	}

	if err := rows.Err(); err != nil {
		return Metadata{}, fmt.Errorf("error iterating metadata: %w", err)
	}

	return Metadata{
		Name:        metaMap["name"],
		Description: metaMap["description"],
		Version:     metaMap["version"],
	}, nil
}

// Close closes the database.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Load opens a palette database, reads all entries, and builds a lookup
// table from them.
func Load(path string) (palette.Table, error) {
	reader, err := OpenReader(path)
	if err != nil {
		return palette.Table{}, err
	}
	defer reader.Close() // nolint:errcheck

	entries, err := reader.Entries()
	if err != nil {
		return palette.Table{}, err
	}
	if len(entries) == 0 {
		return palette.Table{}, fmt.Errorf("palette database %s contains no colors", path)
	}

	return palette.NewTable(entries), nil
}

// Write stores the given entries as a new palette database at path.
func Write(path string, metadata Metadata, entries []palette.Entry) error {
	writer, err := New(path, metadata)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if err := writer.WriteEntry(e); err != nil {
			writer.Close()
			return err
		}
	}

	return writer.Close()
}
