package api

import (
	"context"
	"fmt"
	"time"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/checksum"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vault"
)

// ChatRunner processes one user turn on a conversation thread.
// *agent.Agent satisfies it.
type ChatRunner interface {
	Run(ctx context.Context, threadID, userText string) (string, error)
}

// Service coordinates storage, index, and vault operations for the API layer.
type Service struct {
	store storage.Provider
	db    index.NoteIndex
	lib   *vault.Library
}

// NewService creates a new API service.
func NewService(store storage.Provider, db index.NoteIndex, lib *vault.Library) *Service {
	return &Service{store: store, db: db, lib: lib}
}

// GetNote resolves a display name to its vault file and enriches the note
// with backlinks. An ambiguous name is an error; the caller decides how to
// present the collision.
func (s *Service) GetNote(name string) (*NoteDetail, error) {
	paths, err := s.db.PathsByName(name)
	if err != nil {
		return nil, err
	}
	switch len(paths) {
	case 0:
		return nil, fmt.Errorf("note %q: %w", name, apperr.ErrNotFound)
	case 1:
	default:
		return nil, fmt.Errorf("note %q: %w", name, apperr.ErrAmbiguousName)
	}

	data, err := s.store.Read(paths[0])
	if err != nil {
		return nil, err
	}
	bl, err := s.db.Backlinks(name)
	if err != nil {
		return nil, err
	}
	if bl == nil {
		bl = []string{}
	}
	return &NoteDetail{
		Name:      name,
		Path:      paths[0],
		Content:   string(data),
		Checksum:  checksum.Sum(data),
		Backlinks: bl,
		UpdatedAt: time.Now(),
	}, nil
}

// CreateNote writes a new note through the vault and returns its detail view.
func (s *Service) CreateNote(name, content string) (*NoteDetail, error) {
	if err := s.lib.Create(name, content); err != nil {
		return nil, err
	}
	return s.GetNote(name)
}

// Expand returns the note's text plus its linked notes to the given depth.
func (s *Service) Expand(ctx context.Context, name string, depth int) (string, error) {
	return s.lib.Expand(ctx, name, depth)
}

// ListNotes returns paginated notes sorted by display name.
func (s *Service) ListNotes(limit, offset int) ([]NoteListItem, int, error) {
	rows, total, err := s.db.ListNotes(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items := make([]NoteListItem, len(rows))
	for i, r := range rows {
		items[i] = NoteListItem{
			Name:      r.Name,
			Path:      r.Path,
			Checksum:  r.Checksum,
			UpdatedAt: r.UpdatedAt,
		}
	}
	return items, total, nil
}

// Search delegates to the index.
func (s *Service) Search(query string, limit int) ([]SearchResult, error) {
	rows, err := s.db.Search(query, limit)
	if err != nil {
		return nil, err
	}
	results := make([]SearchResult, len(rows))
	for i, r := range rows {
		results[i] = SearchResult{Name: r.Name, Path: r.Path, Snippet: r.Snippet}
	}
	return results, nil
}

// Graph delegates to the index.
func (s *Service) Graph() ([]index.GraphNode, []index.GraphLink, error) {
	return s.db.Graph()
}
