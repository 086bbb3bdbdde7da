// Package history persists pipeline run results in a local SQLite database.
// Every run records the repository, the derived tag, the release reference,
// and per-job results so past releases can be inspected with `relact history`.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type Run struct {
	ID         int64
	Repository string
	Tag        string
	Ref        string
	Status     string
	StartedAt  time.Time
	FinishedAt time.Time
	Jobs       []*JobRecord
}

type JobRecord struct {
	Name     string
	Status   string
	Duration time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    repository TEXT NOT NULL,
    tag TEXT NOT NULL,
    ref TEXT NOT NULL,
    status TEXT NOT NULL,
    started_at INTEGER NOT NULL,
    finished_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_jobs (
    run_id INTEGER NOT NULL REFERENCES runs (id),
    name TEXT NOT NULL,
    status TEXT NOT NULL,
    duration_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_repository ON runs (repository);
`

type Store struct {
	db *sql.DB
}

// New opens the SQLite database at dsn and creates the schema if it does
// not exist. Use ":memory:" for an ephemeral store.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open a history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create the history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close() //nolint:wrapcheck
}

// DefaultPath returns the default history database path and ensures its
// parent directory exists.
func DefaultPath(dataDir string) (string, error) {
	if dataDir == "" {
		dataDir = os.Getenv("XDG_DATA_HOME")
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get the home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(dataDir, "relact", "relact.db")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create the data directory: %w", err)
	}
	return p, nil
}

func (s *Store) RecordRun(ctx context.Context, run *Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin a transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck
	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (repository, tag, ref, status, started_at, finished_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.Repository, run.Tag, run.Ref, run.Status, run.StartedAt.UnixMilli(), run.FinishedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert a run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get the run id: %w", err)
	}
	for _, job := range run.Jobs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_jobs (run_id, name, status, duration_ms) VALUES (?, ?, ?, ?)`,
			runID, job.Name, job.Status, job.Duration.Milliseconds()); err != nil {
			return fmt.Errorf("insert a job result: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit a transaction: %w", err)
	}
	run.ID = runID
	return nil
}

func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, repository, tag, ref, status, started_at, finished_at FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()
	runs := []*Run{}
	for rows.Next() {
		run := &Run{}
		var startedAt, finishedAt int64
		if err := rows.Scan(&run.ID, &run.Repository, &run.Tag, &run.Ref, &run.Status, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scan a run: %w", err)
		}
		run.StartedAt = time.UnixMilli(startedAt)
		run.FinishedAt = time.UnixMilli(finishedAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	for _, run := range runs {
		jobs, err := s.listJobs(ctx, run.ID)
		if err != nil {
			return nil, err
		}
		run.Jobs = jobs
	}
	return runs, nil
}

func (s *Store) listJobs(ctx context.Context, runID int64) ([]*JobRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, status, duration_ms FROM run_jobs WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query job results: %w", err)
	}
	defer rows.Close()
	jobs := []*JobRecord{}
	for rows.Next() {
		job := &JobRecord{}
		var durationMS int64
		if err := rows.Scan(&job.Name, &job.Status, &durationMS); err != nil {
			return nil, fmt.Errorf("scan a job result: %w", err)
		}
		job.Duration = time.Duration(durationMS) * time.Millisecond
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job results: %w", err)
	}
	return jobs, nil
}
