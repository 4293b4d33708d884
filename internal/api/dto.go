package api

import (
	"time"

	"github.com/starford/ansuz/internal/index"
)

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// NoteDetail is the response payload for a single note.
type NoteDetail struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Content   string    `json:"content"`
	Checksum  string    `json:"checksum"`
	Backlinks []string  `json:"backlinks"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListItem is a lightweight item in a list response.
type NoteListItem struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListResponse wraps paginated note listings.
type NoteListResponse struct {
	Notes []NoteListItem `json:"notes"`
	Total int            `json:"total"`
}

// ExpandResponse wraps a depth-bounded note expansion.
type ExpandResponse struct {
	Name    string `json:"name"`
	Depth   int    `json:"depth"`
	Content string `json:"content"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Snippet string `json:"snippet"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// GraphResponse wraps the knowledge graph.
type GraphResponse struct {
	Nodes []index.GraphNode `json:"nodes"`
	Links []index.GraphLink `json:"links"`
}

// ChatRequest is the request body for one assistant turn.
type ChatRequest struct {
	ThreadID string `json:"thread_id"`
	Message  string `json:"message"`
}

// ChatResponse carries the assistant's final reply for the turn.
type ChatResponse struct {
	ThreadID string `json:"thread_id"`
	Reply    string `json:"reply"`
}
