package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists history entries and the AI response cache in one
// sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dir/selact.db with
// WAL journaling and runs the schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("history: create dir: %w", err)
	}

	path := filepath.Join(dir, "selact.db")
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS entries (
  id          TEXT NOT NULL PRIMARY KEY,
  shortcut    TEXT NOT NULL,
  datetime    INTEGER NOT NULL,
  clipboard   TEXT NOT NULL,
  selection   TEXT NOT NULL,
  case_label  TEXT NOT NULL DEFAULT '',
  action_type TEXT NOT NULL DEFAULT '',
  action_label TEXT NOT NULL DEFAULT '',
  result      TEXT NOT NULL DEFAULT '',
  is_error    INTEGER NOT NULL DEFAULT 0,
  provider    TEXT NOT NULL DEFAULT '',
  model       TEXT NOT NULL DEFAULT '',
  response    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS entries_datetime ON entries(datetime);

CREATE TABLE IF NOT EXISTS ai_cache (
  prompt     TEXT NOT NULL PRIMARY KEY,
  response   TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS ai_cache_updated_at ON ai_cache(updated_at);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("history: migrate: %w", err)
	}
	return nil
}

// Append inserts an entry and prunes the table down to max rows,
// dropping the oldest.
func (s *Store) Append(e Entry, max int) error {
	_, err := s.db.Exec(`
INSERT INTO entries
  (id, shortcut, datetime, clipboard, selection, case_label, action_type, action_label, result, is_error, provider, model, response)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Shortcut, e.Datetime.UnixMilli(), e.Clipboard, e.Selection,
		e.CaseLabel, e.ActionType, e.ActionLabel, e.Result, boolToInt(e.IsError),
		e.Provider, e.Model, e.Response)
	if err != nil {
		return fmt.Errorf("history: append: %w", err)
	}

	if max > 0 {
		_, err = s.db.Exec(`
DELETE FROM entries WHERE id NOT IN (
  SELECT id FROM entries ORDER BY datetime DESC, id LIMIT ?
)`, max)
		if err != nil {
			return fmt.Errorf("history: prune: %w", err)
		}
	}
	return nil
}

// Annotate stores a streamed response on an existing entry.
func (s *Store) Annotate(id, response string) error {
	_, err := s.db.Exec(`UPDATE entries SET response = ? WHERE id = ?`, response, id)
	if err != nil {
		return fmt.Errorf("history: annotate: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
SELECT id, shortcut, datetime, clipboard, selection, case_label, action_type, action_label, result, is_error, provider, model, response
FROM entries ORDER BY datetime DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ms int64
		var isErr int
		if err := rows.Scan(&e.ID, &e.Shortcut, &ms, &e.Clipboard, &e.Selection,
			&e.CaseLabel, &e.ActionType, &e.ActionLabel, &e.Result, &isErr,
			&e.Provider, &e.Model, &e.Response); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.Datetime = time.UnixMilli(ms)
		e.IsError = isErr != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

// CacheGet returns the cached AI response for a prompt, if present.
func (s *Store) CacheGet(prompt string) (string, bool, error) {
	var response string
	err := s.db.QueryRow(`SELECT response FROM ai_cache WHERE prompt = ?`, prompt).Scan(&response)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("history: cache get: %w", err)
	}
	return response, true, nil
}

// CacheSet upserts the cached AI response for a prompt, refreshing
// updated_at on conflict.
func (s *Store) CacheSet(prompt, response string) error {
	now := time.Now().Unix()
	_, err := s.db.Exec(`
INSERT INTO ai_cache (prompt, response, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(prompt)
DO UPDATE SET response = excluded.response, updated_at = excluded.updated_at`,
		prompt, response, now, now)
	if err != nil {
		return fmt.Errorf("history: cache set: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
