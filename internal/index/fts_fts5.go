//go:build sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS note_chunks USING fts5(
			path UNINDEXED,
			name UNINDEXED,
			body,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

// ftsUpsert replaces the search chunks for one note. Long bodies are indexed
// as multiple overlapping chunks so a hit reports the chunk text, not the
// whole note.
func ftsUpsert(tx *sql.Tx, path, name, body string) error {
	_, _ = tx.Exec(`DELETE FROM note_chunks WHERE path = ?`, path)
	for _, chunk := range splitChunks(body) {
		if _, err := tx.Exec(`INSERT INTO note_chunks (path, name, body) VALUES (?, ?, ?)`,
			path, name, chunk); err != nil {
			return fmt.Errorf("index: upsert fts chunk: %w", err)
		}
	}
	return nil
}

func ftsDelete(tx *sql.Tx, path string) {
	_, _ = tx.Exec(`DELETE FROM note_chunks WHERE path = ?`, path)
}

// Search performs an FTS5 full-text search over note chunks.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := db.conn.Query(`
		SELECT name,
		       path,
		       snippet(note_chunks, 2, '<b>', '</b>', '...', 64)
		FROM note_chunks
		WHERE note_chunks MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Name, &r.Path, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
