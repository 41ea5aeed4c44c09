// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the runs ledger.
type Store struct {
	db *sql.DB
}

// RunRecord is the summary of one headless run of an example.
type RunRecord struct {
	ID        int64
	ExampleID string
	Seed      int64
	TickRate  int
	Ticks     int
	Digest    uint64 // Scene digest after the last tick
	Nodes     int
	Points    int
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Digests are stored as hex text because SQLite integers are signed.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			example_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			digest TEXT NOT NULL,
			nodes INTEGER NOT NULL DEFAULT 0,
			points INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_example_id ON runs(example_id);
		CREATE INDEX IF NOT EXISTS idx_runs_replay ON runs(example_id, seed, tick_rate, ticks);
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

// FormatDigest renders a digest the way it is stored.
func FormatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (example_id, seed, tick_rate, ticks, digest, nodes, points)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ExampleID, r.Seed, r.TickRate, r.Ticks, FormatDigest(r.Digest), r.Nodes, r.Points,
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

const runColumns = `id, example_id, seed, tick_rate, ticks, digest, nodes, points, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(sc rowScanner) (RunRecord, error) {
	var r RunRecord
	var digest string
	var createdAt any
	if err := sc.Scan(&r.ID, &r.ExampleID, &r.Seed, &r.TickRate, &r.Ticks,
		&digest, &r.Nodes, &r.Points, &createdAt); err != nil {
		return r, err
	}

	d, err := strconv.ParseUint(digest, 16, 64)
	if err != nil {
		return r, fmt.Errorf("bad digest %q: %w", digest, err)
	}
	r.Digest = d

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// LatestRun returns the most recent run of an example with the same seed,
// tick rate and tick count, or nil if there is none.
func (s *Store) LatestRun(exampleID string, seed int64, tickRate, ticks int) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE example_id = ? AND seed = ? AND tick_rate = ? AND ticks = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		exampleID, seed, tickRate, ticks,
	)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the latest runs, newest first. An empty exampleID
// matches every example.
func (s *Store) RecentRuns(exampleID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR example_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		exampleID, exampleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all runs for the given example, or every run when
// exampleID is empty.
func (s *Store) ClearRuns(exampleID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR example_id = ?", exampleID, exampleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ExampleStats contains aggregated statistics for an example.
type ExampleStats struct {
	ExampleID  string
	Runs       int
	TotalTicks int64
	MaxPoints  int
	LastRun    time.Time
}

// AllExampleStats retrieves statistics for every example that has been run.
func (s *Store) AllExampleStats() (map[string]*ExampleStats, error) {
	rows, err := s.db.Query(
		`SELECT example_id, COUNT(*), SUM(ticks), MAX(points), MAX(created_at)
		 FROM runs
		 GROUP BY example_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get example stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ExampleStats)
	for rows.Next() {
		var st ExampleStats
		var lastRun any
		if err := rows.Scan(&st.ExampleID, &st.Runs, &st.TotalTicks, &st.MaxPoints, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		switch v := lastRun.(type) {
		case time.Time:
			st.LastRun = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				st.LastRun = parsed
			}
		}

		stats[st.ExampleID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
