package index

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/ansuz/internal/checksum"
	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/storage"
)

// DisplayName derives a note's display name from its vault-relative path:
// the base filename without the .md extension.
func DisplayName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".md")
}

// Sync walks the vault and brings the index up to date:
//   - new/changed files are parsed and upserted
//   - files removed from disk are deleted from the index
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		if checksums[m.Path] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if err := IndexFile(db, m.Path, data); err != nil {
			logger.Warn("sync: index failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", m.Path))
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteNote(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// IndexFile extracts links from data and upserts the note. Link targets are
// stored with alias and section suffixes stripped so the links table holds
// plain display names.
func IndexFile(db NoteIndex, path string, data []byte) error {
	body := string(data)

	var targets []string
	seen := make(map[string]struct{})
	for _, raw := range parser.ExtractLinks(body) {
		name := parser.ParseRef(raw).Name
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		targets = append(targets, name)
	}

	row := NoteRow{
		Path:      path,
		Name:      DisplayName(path),
		Checksum:  checksum.Sum(data),
		UpdatedAt: time.Now(),
	}
	return db.UpsertNote(row, body, targets)
}
