package agent

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Checkpointer persists conversation state across turns, keyed by thread id.
// The core never prunes threads.
type Checkpointer interface {
	// Load returns the thread's messages, or nil for a new thread.
	Load(ctx context.Context, threadID string) ([]Message, error)
	// Save replaces the thread's messages.
	Save(ctx context.Context, threadID string, messages []Message) error
}

// InMemCheckpointer keeps conversation state in process memory.
type InMemCheckpointer struct {
	mu      sync.RWMutex
	threads map[string][]Message
}

// NewInMemCheckpointer creates an empty in-memory checkpointer.
func NewInMemCheckpointer() *InMemCheckpointer {
	return &InMemCheckpointer{threads: make(map[string][]Message)}
}

// Load returns the thread's messages, or nil for a new thread.
func (c *InMemCheckpointer) Load(_ context.Context, threadID string) ([]Message, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	msgs := c.threads[threadID]
	return append([]Message(nil), msgs...), nil
}

// Save replaces the thread's messages.
func (c *InMemCheckpointer) Save(_ context.Context, threadID string, messages []Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threads[threadID] = append([]Message(nil), messages...)
	return nil
}

var _ Checkpointer = (*InMemCheckpointer)(nil)

const checkpointSchemaSQL = `
CREATE TABLE IF NOT EXISTS threads (
	thread_id  TEXT PRIMARY KEY,
	messages   TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteCheckpointer persists conversation state in SQLite so threads
// survive restarts.
type SQLiteCheckpointer struct {
	conn *sql.DB
}

// OpenSQLiteCheckpointer opens (or creates) the checkpoint database.
func OpenSQLiteCheckpointer(dsn string) (*SQLiteCheckpointer, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("checkpoint: ping: %w", err)
	}
	if _, err := conn.Exec(checkpointSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("checkpoint: apply schema: %w", err)
	}
	return &SQLiteCheckpointer{conn: conn}, nil
}

// Close closes the underlying database connection.
func (c *SQLiteCheckpointer) Close() error {
	return c.conn.Close()
}

// Load returns the thread's messages, or nil for a new thread.
func (c *SQLiteCheckpointer) Load(ctx context.Context, threadID string) ([]Message, error) {
	var raw string
	err := c.conn.QueryRowContext(ctx,
		`SELECT messages FROM threads WHERE thread_id = ?`, threadID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checkpoint: load: %w", err)
	}
	var msgs []Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil, fmt.Errorf("checkpoint: decode thread %s: %w", threadID, err)
	}
	return msgs, nil
}

// Save replaces the thread's messages.
func (c *SQLiteCheckpointer) Save(ctx context.Context, threadID string, messages []Message) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("checkpoint: encode thread %s: %w", threadID, err)
	}
	_, err = c.conn.ExecContext(ctx, `
		INSERT INTO threads (thread_id, messages, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(thread_id) DO UPDATE SET
			messages   = excluded.messages,
			updated_at = excluded.updated_at
	`, threadID, string(raw), time.Now())
	if err != nil {
		return fmt.Errorf("checkpoint: save: %w", err)
	}
	return nil
}

var _ Checkpointer = (*SQLiteCheckpointer)(nil)
