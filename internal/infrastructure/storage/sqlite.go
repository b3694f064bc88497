// Package storage keeps the run history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver so the game builds without CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages the SQLite connection for run history
type Store struct {
	db *sql.DB
}

// Run is one finished play-through
type Run struct {
	ID        int64
	Stage     string
	Seconds   int // whole seconds the tower held on
	Seed      int64
	CreatedAt time.Time
}

// Open creates or opens a database at dbPath and runs migrations.
// A leading ~ expands to the home directory.
func Open(dbPath string) (*Store, error) {
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
		_ = db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(stage, seconds DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID
func (s *Store) SaveRun(stage string, seconds int, seed int64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (stage, seconds, seed) VALUES (?, ?, ?)",
		stage, seconds, seed,
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

// TopRuns returns the longest runs, all stages when stage is empty.
// Ties go to the earlier run.
func (s *Store) TopRuns(stage string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, stage, seconds, seed, created_at
		 FROM runs
		 WHERE ? = '' OR stage = ?
		 ORDER BY seconds DESC, id ASC
		 LIMIT ?`,
		stage, stage, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Stage, &r.Seconds, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Best returns the longest run on stage, or 0 when none is stored
func (s *Store) Best(stage string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(seconds) FROM runs WHERE stage = ?", stage).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return int(best.Int64), nil
}
