// Package storage provides SQLite-based persistence for played runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-platformer/internal/game"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is a single finished play session on one layout.
type Run struct {
	ID        int64
	Layout    string
	Stats     game.Stats
	CreatedAt time.Time
}

// LayoutTotals contains aggregated statistics for a layout.
type LayoutTotals struct {
	Layout     string
	Runs       int
	Seconds    float64
	Jumps      int
	Landings   int
	HeadBumps  int
	WallHits   int
	Resets     int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			seconds REAL NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			landings INTEGER NOT NULL DEFAULT 0,
			head_bumps INTEGER NOT NULL DEFAULT 0,
			wall_hits INTEGER NOT NULL DEFAULT 0,
			resets INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_layout ON runs(layout);
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

// SaveRun records a finished session for the given layout.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(layout string, st game.Stats) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (layout, frames, seconds, jumps, landings, head_bumps, wall_hits, resets)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		layout, st.Frames, st.Seconds, st.Jumps, st.Landings, st.HeadBumps, st.WallHits, st.Resets,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest runs, newest first.
// An empty layout matches every layout.
func (s *Store) RecentRuns(layout string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, layout, frames, seconds, jumps, landings, head_bumps, wall_hits, resets, created_at
		 FROM runs
		 WHERE ? = '' OR layout = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		layout, layout, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Layout, &r.Stats.Frames, &r.Stats.Seconds,
			&r.Stats.Jumps, &r.Stats.Landings, &r.Stats.HeadBumps, &r.Stats.WallHits,
			&r.Stats.Resets, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// LayoutTotals retrieves aggregated statistics for every layout that has
// been played, keyed by layout name.
func (s *Store) LayoutTotals() (map[string]*LayoutTotals, error) {
	rows, err := s.db.Query(
		`SELECT layout, COUNT(*), SUM(seconds), SUM(jumps), SUM(landings),
		        SUM(head_bumps), SUM(wall_hits), SUM(resets), MAX(created_at)
		 FROM runs
		 GROUP BY layout`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get layout totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]*LayoutTotals)
	for rows.Next() {
		var t LayoutTotals
		var lastPlayed any
		if err := rows.Scan(&t.Layout, &t.Runs, &t.Seconds, &t.Jumps, &t.Landings,
			&t.HeadBumps, &t.WallHits, &t.Resets, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan totals row: %w", err)
		}
		t.LastPlayed = parseTime(lastPlayed)
		totals[t.Layout] = &t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return totals, nil
}

// ClearRuns deletes all runs for the given layout.
func (s *Store) ClearRuns(layout string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE layout = ?", layout)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
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
