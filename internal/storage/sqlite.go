// Package storage provides SQLite-based history of generated icon files.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for generation history.
type Store struct {
	db *sql.DB
}

// Asset represents one file written by a generation run.
type Asset struct {
	ID        int64
	Style     string
	Size      int
	Path      string
	SHA256    string
	Bytes     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS assets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			style TEXT NOT NULL,
			size INTEGER NOT NULL,
			path TEXT NOT NULL,
			sha256 TEXT NOT NULL,
			bytes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_assets_size ON assets(size);
		CREATE INDEX IF NOT EXISTS idx_assets_created ON assets(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordAsset stores a generated file.
// Returns the ID of the inserted record.
func (s *Store) RecordAsset(a Asset) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO assets (style, size, path, sha256, bytes) VALUES (?, ?, ?, ?, ?)",
		a.Style, a.Size, a.Path, a.SHA256, a.Bytes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record asset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentAssets retrieves the most recently recorded assets, newest first.
func (s *Store) RecentAssets(limit int) ([]Asset, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, style, size, path, sha256, bytes, created_at
		 FROM assets
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query assets: %w", err)
	}
	return scanAssets(rows)
}

// AssetsBySize retrieves the history of one icon size, newest first.
func (s *Store) AssetsBySize(size, limit int) ([]Asset, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, style, size, path, sha256, bytes, created_at
		 FROM assets
		 WHERE size = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query assets: %w", err)
	}
	return scanAssets(rows)
}

func scanAssets(rows *sql.Rows) ([]Asset, error) {
	defer rows.Close()

	var assets []Asset
	for rows.Next() {
		var a Asset
		var createdAt any
		if err := rows.Scan(&a.ID, &a.Style, &a.Size, &a.Path, &a.SHA256, &a.Bytes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return assets, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
