package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"clipstitch/internal/config"
)

// Store manages merge history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if !cfg.History.Enabled {
		return nil, errors.New("history is disabled in configuration")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.History.Path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	row := s.db.QueryRowContext(ctx, `SELECT version FROM schema_info LIMIT 1`)
	var version int
	err := row.Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_info (version) VALUES (?)`, schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("history database schema version %d is not supported (want %d); remove %s to start fresh", version, schemaVersion, s.path)
	}
	return nil
}

// StartRun inserts a new run row and returns it.
func (s *Store) StartRun(ctx context.Context, path string) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Path:      path,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, path, started_at) VALUES (?, ?, ?)`,
		run.ID,
		run.Path,
		run.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// FinishRun stamps the run's end time and group count.
func (s *Store) FinishRun(ctx context.Context, run *Run) error {
	if run == nil {
		return errors.New("run is nil")
	}
	run.FinishedAt = time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE runs SET finished_at = ?, group_count = ? WHERE id = ?`,
		run.FinishedAt.Format(time.RFC3339Nano),
		run.GroupCount,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// RecordGroup persists the outcome of one merge group.
func (s *Store) RecordGroup(ctx context.Context, rec *GroupRecord) error {
	if rec == nil {
		return errors.New("group record is nil")
	}
	rec.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO run_groups (run_id, group_key, clip_count, command, output, status, error_message, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.GroupKey,
		rec.ClipCount,
		rec.Command,
		rec.Output,
		string(rec.Status),
		rec.ErrorMessage,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert group record: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, path, started_at, finished_at, group_count FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			run        Run
			startedAt  string
			finishedAt sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Path, &startedAt, &finishedAt, &run.GroupCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if finishedAt.Valid && finishedAt.String != "" {
			if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt.String); err != nil {
				return nil, fmt.Errorf("parse finished_at: %w", err)
			}
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// GroupsForRun returns the group records of one run in insertion order.
func (s *Store) GroupsForRun(ctx context.Context, runID string) ([]*GroupRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT run_id, group_key, clip_count, command, output, status, error_message, created_at
         FROM run_groups WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query group records: %w", err)
	}
	defer rows.Close()

	var records []*GroupRecord
	for rows.Next() {
		var (
			rec       GroupRecord
			status    string
			createdAt string
		)
		if err := rows.Scan(&rec.RunID, &rec.GroupKey, &rec.ClipCount, &rec.Command, &rec.Output, &status, &rec.ErrorMessage, &createdAt); err != nil {
			return nil, fmt.Errorf("scan group record: %w", err)
		}
		rec.Status = GroupStatus(status)
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
