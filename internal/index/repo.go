package index

import (
	"fmt"
	"time"
)

// NoteRow represents a row in the notes table.
type NoteRow struct {
	Path      string // vault-relative file path
	Name      string // display name (base filename without .md)
	Checksum  string
	UpdatedAt time.Time
}

// SearchResult represents one full-text search hit.
type SearchResult struct {
	Name    string
	Path    string
	Snippet string
}

// GraphNode is a node in the link graph.
type GraphNode struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// GraphLink is a directed edge between two notes, identified by display name.
type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// UpsertNote inserts or replaces a note, its search chunks, and its outgoing
// links within one transaction.
func (db *DB) UpsertNote(n NoteRow, body string, links []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	_, err = tx.Exec(`
		INSERT INTO notes (path, name, checksum, body, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name       = excluded.name,
			checksum   = excluded.checksum,
			body       = excluded.body,
			updated_at = excluded.updated_at
	`, n.Path, n.Name, n.Checksum, body, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert note: %w", err)
	}

	// FTS upsert (no-op when FTS5 tag is absent).
	if err := ftsUpsert(tx, n.Path, n.Name, body); err != nil {
		return err
	}

	// Replace links: delete old then bulk insert. Link targets are stored
	// name-resolved (alias and section suffixes stripped).
	_, _ = tx.Exec(`DELETE FROM links WHERE source = ?`, n.Path)
	if len(links) > 0 {
		stmt, err := tx.Prepare(`INSERT OR IGNORE INTO links (source, target) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("index: prepare link insert: %w", err)
		}
		defer stmt.Close()
		for _, target := range links {
			if _, err := stmt.Exec(n.Path, target); err != nil {
				return fmt.Errorf("index: insert link: %w", err)
			}
		}
	}

	return tx.Commit()
}

// DeleteNote removes a note, its search chunks, and its outgoing links.
func (db *DB) DeleteNote(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, path)
	_, _ = tx.Exec(`DELETE FROM links WHERE source = ?`, path)
	_, _ = tx.Exec(`DELETE FROM notes WHERE path = ?`, path)

	return tx.Commit()
}

// PathsByName returns every indexed file path whose display name equals name.
// The match is case-sensitive; more than one result means the vault violates
// the unique-name invariant for that name.
func (db *DB) PathsByName(name string) ([]string, error) {
	rows, err := db.conn.Query(`SELECT path FROM notes WHERE name = ? ORDER BY path`, name)
	if err != nil {
		return nil, fmt.Errorf("index: paths by name: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AllChecksums returns path → checksum for every indexed note.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

// ListNotes returns paginated note rows sorted by display name.
func (db *DB) ListNotes(limit, offset int) ([]NoteRow, int, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count notes: %w", err)
	}

	rows, err := db.conn.Query(`
		SELECT path, name, checksum, updated_at
		FROM notes
		ORDER BY name
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list notes: %w", err)
	}
	defer rows.Close()

	var out []NoteRow
	for rows.Next() {
		var n NoteRow
		if err := rows.Scan(&n.Path, &n.Name, &n.Checksum, &n.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, rows.Err()
}

// Backlinks returns the display names of all notes that link to target.
func (db *DB) Backlinks(target string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT n.name
		FROM links l JOIN notes n ON n.path = l.source
		WHERE l.target = ?
		ORDER BY n.name
	`, target)
	if err != nil {
		return nil, fmt.Errorf("index: backlinks: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Graph returns every note as a node plus every stored link edge, with edge
// endpoints expressed as display names.
func (db *DB) Graph() ([]GraphNode, []GraphLink, error) {
	nodeRows, err := db.conn.Query(`SELECT name, path FROM notes ORDER BY name`)
	if err != nil {
		return nil, nil, fmt.Errorf("index: graph nodes: %w", err)
	}
	defer nodeRows.Close()

	var nodes []GraphNode
	for nodeRows.Next() {
		var n GraphNode
		if err := nodeRows.Scan(&n.Name, &n.Path); err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, n)
	}
	if err := nodeRows.Err(); err != nil {
		return nil, nil, err
	}

	linkRows, err := db.conn.Query(`
		SELECT n.name, l.target
		FROM links l JOIN notes n ON n.path = l.source
		ORDER BY n.name, l.target
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("index: graph links: %w", err)
	}
	defer linkRows.Close()

	var links []GraphLink
	for linkRows.Next() {
		var l GraphLink
		if err := linkRows.Scan(&l.Source, &l.Target); err != nil {
			return nil, nil, err
		}
		links = append(links, l)
	}
	return nodes, links, linkRows.Err()
}
