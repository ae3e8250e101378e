// Package storage persists match runs to SQLite for the history command.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/seoforge/kwmap/internal/models"
)

// Store records match runs and their results in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates a SQLite database at dbPath and initializes the
// schema. Parent directories are created if they do not exist.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		keywords_path TEXT NOT NULL,
		pages_path TEXT NOT NULL,
		total_count INTEGER NOT NULL,
		matched_count INTEGER NOT NULL,
		average_score REAL NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

	CREATE TABLE IF NOT EXISTS run_matches (
		run_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		keyword TEXT NOT NULL,
		matched_url TEXT,
		match_score REAL NOT NULL,
		match_quality TEXT NOT NULL,
		PRIMARY KEY (run_id, position),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveRun records a run and its results in one transaction. The run's ID and
// CreatedAt are assigned here.
func (s *Store) SaveRun(ctx context.Context, run *models.MatchRun, results []models.MatchResult) error {
	run.ID = uuid.NewString()
	run.CreatedAt = time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, keywords_path, pages_path, total_count, matched_count, average_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.KeywordsPath, run.PagesPath, run.TotalCount, run.MatchedCount, run.AverageScore, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_matches (run_id, position, keyword, matched_url, match_score, match_quality)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare match insert: %w", err)
	}
	defer stmt.Close()

	for i := range results {
		r := &results[i]
		if _, err := stmt.ExecContext(ctx, run.ID, i, r.Keyword, r.URL, r.Score, string(r.Quality)); err != nil {
			return fmt.Errorf("failed to insert match for %q: %w", r.Keyword, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns recorded runs, newest first, at most limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*models.MatchRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, keywords_path, pages_path, total_count, matched_count, average_score, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.MatchRun
	for rows.Next() {
		var run models.MatchRun
		if err := rows.Scan(&run.ID, &run.KeywordsPath, &run.PagesPath,
			&run.TotalCount, &run.MatchedCount, &run.AverageScore, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// GetRunResults returns the results of a run in their original order.
func (s *Store) GetRunResults(ctx context.Context, runID string) ([]models.MatchResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT keyword, matched_url, match_score, match_quality
		 FROM run_matches WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.MatchResult
	for rows.Next() {
		var r models.MatchResult
		var quality string
		if err := rows.Scan(&r.Keyword, &r.URL, &r.Score, &quality); err != nil {
			return nil, err
		}
		r.Quality = models.Quality(quality)
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
