package storage

import (
	"database/sql"
	"fmt"
	"time"

	"hoursync/timelog"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	group_name TEXT NOT NULL,
	start_datetime TEXT NOT NULL,
	duration_seconds INTEGER NOT NULL CHECK(duration_seconds >= 0),
	note TEXT NOT NULL,
	source_format TEXT NOT NULL DEFAULT '',
	source_file TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(group_name, start_datetime, duration_seconds, note, source_file)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertEntries inserts entries transactionally, ignoring rows already
// present per the UNIQUE constraint, and returns the inserted count.
func (s *SQLiteStore) InsertEntries(entries []timelog.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	const insertStmt = `
INSERT OR IGNORE INTO entries (
	group_name,
	start_datetime,
	duration_seconds,
	note,
	source_format,
	source_file
) VALUES (?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, entry := range entries {
		res, err := stmt.Exec(
			entry.Group,
			entry.Start.Format(time.RFC3339),
			entry.DurationSeconds,
			entry.Note,
			entry.SourceFormat,
			entry.SourceFile,
		)
		if err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert entry: %w", err)
		}

		rows, err := res.RowsAffected()
		if err == nil && rows > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

func (s *SQLiteStore) ListEntries() ([]timelog.Entry, error) {
	const query = `
SELECT
	id,
	group_name,
	start_datetime,
	duration_seconds,
	note,
	source_format,
	source_file
FROM entries
ORDER BY start_datetime, id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]timelog.Entry, 0, 256)
	for rows.Next() {
		var (
			entry    timelog.Entry
			startRaw string
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.Group,
			&startRaw,
			&entry.DurationSeconds,
			&entry.Note,
			&entry.SourceFormat,
			&entry.SourceFile,
		); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}

		start, err := time.Parse(time.RFC3339, startRaw)
		if err != nil {
			return nil, fmt.Errorf("parse stored start datetime %q: %w", startRaw, err)
		}
		entry.Start = start
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry rows: %w", err)
	}

	return entries, nil
}

func (s *SQLiteStore) DeleteAllEntries() (int, error) {
	res, err := s.db.Exec(`DELETE FROM entries;`)
	if err != nil {
		return 0, fmt.Errorf("delete entries: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted row count: %w", err)
	}
	return int(deleted), nil
}
