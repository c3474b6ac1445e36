package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"revguide/internal/modules/workflow/domain"
	workflowout "revguide/internal/modules/workflow/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteActivityStore projects the run's activity into a SQLite database.
// The default DSN is :memory:, so nothing outlives the process.
type SQLiteActivityStore struct {
	db *sql.DB
}

func NewSQLiteActivityStore(dsn string) (workflowout.ActivityProjector, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// An in-memory database exists per connection; a single connection keeps
	// it shared across all calls.
	db.SetMaxOpenConns(1)
	store := &SQLiteActivityStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteActivityStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS activities (
  id TEXT PRIMARY KEY,
  at TEXT NOT NULL,
  kind TEXT NOT NULL,
  detail TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create activities table: %w", err)
	}
	return nil
}

func (s *SQLiteActivityStore) Record(ctx context.Context, entry domain.Activity) error {
	const stmt = `INSERT INTO activities (id, at, kind, detail) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.At.Format(time.RFC3339Nano),
		entry.Kind,
		entry.Detail,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (s *SQLiteActivityStore) List(ctx context.Context) ([]domain.Activity, error) {
	const query = `SELECT id, at, kind, detail FROM activities ORDER BY at, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.Activity
	for rows.Next() {
		var entry domain.Activity
		var at string
		if err := rows.Scan(&entry.ID, &at, &entry.Kind, &entry.Detail); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parse activity time: %w", err)
		}
		entry.At = parsed
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return entries, nil
}
