package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS memories (
	kind       TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (kind, user_id, key)
);
`

// SQLite is a Store backed by a SQLite database, so memories survive across
// sessions.
type SQLite struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the memory database and applies the schema.
func OpenSQLite(dsn string) (*SQLite, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("memory: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("memory: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("memory: apply schema: %w", err)
	}
	return &SQLite{conn: conn}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}

// Search returns all records in the namespace, sorted by key.
func (s *SQLite) Search(ctx context.Context, ns Namespace) ([]Record, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT key, value, updated_at
		FROM memories
		WHERE kind = ? AND user_id = ?
		ORDER BY key
	`, ns.Kind, ns.UserID)
	if err != nil {
		return nil, fmt.Errorf("memory: search: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var raw string
		if err := rows.Scan(&r.Key, &raw, &r.UpdatedAt); err != nil {
			return nil, err
		}
		r.Value = json.RawMessage(raw)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Get returns the record under key, or nil when absent.
func (s *SQLite) Get(ctx context.Context, ns Namespace, key string) (*Record, error) {
	var r Record
	var raw string
	err := s.conn.QueryRowContext(ctx, `
		SELECT key, value, updated_at
		FROM memories
		WHERE kind = ? AND user_id = ? AND key = ?
	`, ns.Kind, ns.UserID, key).Scan(&r.Key, &raw, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("memory: get: %w", err)
	}
	r.Value = json.RawMessage(raw)
	return &r, nil
}

// Put stores value under key, overwriting any previous record.
func (s *SQLite) Put(ctx context.Context, ns Namespace, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory: marshal value: %w", err)
	}
	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO memories (kind, user_id, key, value, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(kind, user_id, key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at
	`, ns.Kind, ns.UserID, key, string(raw), time.Now())
	if err != nil {
		return fmt.Errorf("memory: put: %w", err)
	}
	return nil
}

var _ Store = (*SQLite)(nil)
