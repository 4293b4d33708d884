// Package vault implements the note repository and the link-graph context
// expander over a Markdown vault.
package vault

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/storage"
)

// MaxDepth is the upper bound for depth-bounded graph expansion. Callers
// needing more must use TraverseAll.
const MaxDepth = 3

// Library resolves note references, loads and creates notes, and expands the
// link graph. It owns the display-name → file-path mapping through the index.
type Library struct {
	store  storage.Provider
	db     index.NoteIndex
	logger *slog.Logger
}

// New creates a Library over the given storage provider and note index.
func New(store storage.Provider, db index.NoteIndex, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{store: store, db: db, logger: logger}
}

// emptyNote is the placeholder text for a linked note that does not exist.
// Traversal over partial graphs renders this instead of failing.
func emptyNote(name string) string {
	return fmt.Sprintf("Note '%s' is empty.", name)
}

// Load resolves a note reference and returns its text prefixed with a
// normalized note-name header. The reference may carry a section anchor
// ("name#section") and an alias ("name|alias"); the alias is discarded.
//
// fromLink distinguishes the reference's origin: a missing note referenced
// directly by the user is apperr.ErrNotFound, while a missing note reached
// through a traversed link degrades to an empty-note placeholder. An
// ambiguous name is an error regardless of origin.
func (l *Library) Load(ref string, fromLink bool) (string, error) {
	r := parser.ParseRef(ref)

	paths, err := l.db.PathsByName(r.Name)
	if err != nil {
		return "", fmt.Errorf("vault: resolve %q: %w", r.Name, err)
	}
	switch {
	case len(paths) == 0 && fromLink:
		return emptyNote(r.Name), nil
	case len(paths) == 0:
		return "", fmt.Errorf("note %q: %w", r.Name, apperr.ErrNotFound)
	case len(paths) > 1:
		return "", fmt.Errorf("note %q (%d files): %w", r.Name, len(paths), apperr.ErrAmbiguousName)
	}

	data, err := l.store.Read(paths[0])
	if err != nil {
		return "", fmt.Errorf("vault: read %s: %w", paths[0], err)
	}
	content := string(data)

	if r.Section != "" {
		section, ok := parser.ExtractSection(content, r.Section)
		if ok {
			return "\nNOTE NAME: " + r.Name + " SECTION:" + r.Section + "\n\n" + section, nil
		}
		// Anchor miss is not an error: fall back to the full note.
		l.logger.Warn("section not found, using full note",
			slog.String("note", r.Name),
			slog.String("section", r.Section))
	}

	return "\nNOTE NAME: " + r.Name + "\n\n" + content, nil
}

// Create writes a new root-level note file and indexes it. The name must not
// already resolve to any vault file.
func (l *Library) Create(name, text string) error {
	name = parser.StripExtension(name)

	paths, err := l.db.PathsByName(name)
	if err != nil {
		return fmt.Errorf("vault: resolve %q: %w", name, err)
	}
	if len(paths) > 0 {
		return fmt.Errorf("note %q: %w", name, apperr.ErrAlreadyExists)
	}

	rel := name + ".md"
	if err := l.store.Write(rel, []byte(text)); err != nil {
		return fmt.Errorf("vault: create %q: %w", name, err)
	}
	if err := index.IndexFile(l.db, rel, []byte(text)); err != nil {
		// Keep file and index consistent: a write that cannot be indexed
		// is rolled back.
		_ = l.store.Delete(rel)
		return fmt.Errorf("vault: index %q: %w", name, err)
	}
	return nil
}

// Expand returns the root note's text followed by the text of every note
// reachable within depth link-expansion rounds.
//
// The traversal is deliberately not a visited-set BFS: round zero collects
// the root's links, and each later round re-derives links from only the
// previous round's frontier before folding them into the cumulative set.
// Notes reachable by multiple paths are deduplicated once at the end. This
// matches the established expansion semantics; do not replace it with a
// global graph walk.
func (l *Library) Expand(_ context.Context, name string, depth int) (string, error) {
	name = parser.StripExtension(name)

	text, err := l.Load(name, false)
	if err != nil {
		return "", err
	}
	if depth == 0 {
		return text, nil
	}
	if depth < 0 || depth > MaxDepth {
		return "", fmt.Errorf("depth %d out of range [0,%d], use TraverseAll for unbounded traversal: %w",
			depth, MaxDepth, apperr.ErrInvalidDepth)
	}

	links := parser.ExtractLinks(text)
	all := append([]string(nil), links...)

	for round := 1; round < depth; round++ {
		all = append([]string(nil), links...)

		// Loads within a round are independent and read-only; run them
		// concurrently but fold results in frontier order.
		found := make([][]string, len(links))
		var g errgroup.Group
		for i, link := range links {
			g.Go(func() error {
				linked, loadErr := l.Load(link, true)
				if loadErr != nil {
					return loadErr
				}
				found[i] = parser.ExtractLinks(linked)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}
		for _, f := range found {
			all = append(all, f...)
		}

		links = append([]string(nil), all...)
	}

	for _, link := range dedup(all) {
		linked, err := l.Load(link, true)
		if err != nil {
			return "", err
		}
		text += "\n\n" + linked
	}
	return text, nil
}

// TraverseAll follows links transitively with an explicit visited set until
// no new notes are discovered, returning the reachable link targets in
// first-seen order. Unlike Expand it never revisits a note, so it is safe on
// arbitrarily deep and cyclic graphs.
func (l *Library) TraverseAll(links []string) ([]string, error) {
	visited := make(map[string]struct{})
	seen := make(map[string]struct{})
	var out []string

	queue := append([]string(nil), links...)
	for len(queue) > 0 {
		link := queue[0]
		queue = queue[1:]

		if _, dup := seen[link]; !dup {
			seen[link] = struct{}{}
			out = append(out, link)
		}
		if _, done := visited[link]; done {
			continue
		}
		visited[link] = struct{}{}

		text, err := l.Load(link, true)
		if err != nil {
			return nil, err
		}
		queue = append(queue, parser.ExtractLinks(text)...)
	}
	return out, nil
}

// SearchHit is one keyword-search result: a note's display name and the
// matching chunk of its text.
type SearchHit struct {
	Name string
	Text string
}

// Search returns up to k best-matching note chunks for the query.
func (l *Library) Search(_ context.Context, keywords string, k int) ([]SearchHit, error) {
	results, err := l.db.Search(keywords, k)
	if err != nil {
		return nil, fmt.Errorf("vault: search: %w", err)
	}
	hits := make([]SearchHit, len(results))
	for i, r := range results {
		hits[i] = SearchHit{Name: r.Name, Text: r.Snippet}
	}
	return hits, nil
}

// dedup removes duplicates preserving first-seen order.
func dedup(links []string) []string {
	seen := make(map[string]struct{}, len(links))
	var out []string
	for _, l := range links {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
