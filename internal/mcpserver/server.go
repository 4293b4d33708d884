// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Ansuz tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/vault"
)

// Server wraps the MCP server with Ansuz tools.
type Server struct {
	mcp *server.MCPServer
	lib *vault.Library
	db  index.NoteIndex
}

// New creates a new MCP server with all Ansuz tools registered.
func New(lib *vault.Library, db index.NoteIndex) *Server {
	s := &Server{lib: lib, db: db}

	s.mcp = server.NewMCPServer(
		"Ansuz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Full-text search through note names and content."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read a note by name, optionally following [[wikilinks]] "+
			"to include linked notes up to the given depth (0-3)."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Display name of the note (no .md extension needed)")),
		mcp.WithNumber("depth", mcp.Description("How many link-expansion rounds to follow (default 0)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new Markdown note with the given name. "+
			"Content should follow the canonical note format ([[wikilinks]] between notes); "+
			"read the ansuz://note-format resource first."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Display name for the new note")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Markdown content of the note")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all notes by display name."),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("get_backlinks",
		mcp.WithDescription("Find all notes that link to the named note."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Display name of the note to find backlinks for")),
	), s.getBacklinks)

	// Resource: note format contract.
	s.mcp.AddResource(
		mcp.NewResource("ansuz://note-format", "Note Format Contract",
			mcp.WithResourceDescription("Canonical Markdown note format that all notes should follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readNoteFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	depth := req.GetInt("depth", 0)

	content, err := s.lib.Expand(ctx, name, depth)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("note not found: %s", name)), nil
		case errors.Is(err, apperr.ErrAmbiguousName):
			return mcp.NewToolResultError(fmt.Sprintf("ambiguous note name: %s", name)), nil
		case errors.Is(err, apperr.ErrInvalidDepth):
			return mcp.NewToolResultError(fmt.Sprintf("depth must be between 0 and %d", vault.MaxDepth)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.lib.Create(name, content); err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			return mcp.NewToolResultError(fmt.Sprintf("note already exists: %s", name)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", name)), nil
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rows, _, err := s.db.ListNotes(0, 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var names []string
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) getBacklinks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bl, err := s.db.Backlinks(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(bl) == 0 {
		return mcp.NewToolResultText("no backlinks found"), nil
	}
	return mcp.NewToolResultText(strings.Join(bl, "\n")), nil
}

func (s *Server) readNoteFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "ansuz://note-format",
			MIMEType: "text/markdown",
			Text:     NoteFormatContract,
		},
	}, nil
}
