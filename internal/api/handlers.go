package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/ansuz/internal/apperr"
)

// Handler holds API route handlers.
type Handler struct {
	svc    *Service
	runner ChatRunner // nil when the assistant is not configured
}

// NewHandler creates a new Handler. runner may be nil; the chat endpoint
// then reports the assistant as unavailable.
func NewHandler(svc *Service, runner ChatRunner) *Handler {
	return &Handler{svc: svc, runner: runner}
}

// noteName extracts the display name from the URL parameter. Encoded
// characters from API clients (e.g. Trip%20Plan) are decoded.
func noteName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListNotes handles GET /notes.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	items, total, err := h.svc.ListNotes(limit, offset)
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Notes: items, Total: total})
}

// GetNote handles GET /notes/{name}.
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	name := noteName(r)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("name is required"))
		return
	}
	note, err := h.svc.GetNote(name)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		case errors.Is(err, apperr.ErrAmbiguousName):
			writeJSON(w, http.StatusConflict, errorBody("ambiguous note name"))
		default:
			slog.Error("get note failed", slog.String("name", name), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// CreateNote handles POST /notes.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Name == "" || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("name and content are required"))
		return
	}
	note, err := h.svc.CreateNote(req.Name, req.Content)
	if err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			writeJSON(w, http.StatusConflict, errorBody("note already exists"))
		} else {
			slog.Error("create note failed", slog.String("name", req.Name), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// ExpandNote handles GET /notes/{name}/expand.
func (h *Handler) ExpandNote(w http.ResponseWriter, r *http.Request) {
	name := noteName(r)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("name is required"))
		return
	}
	depth := 0
	if raw := r.URL.Query().Get("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("depth must be an integer"))
			return
		}
		depth = d
	}

	content, err := h.svc.Expand(r.Context(), name, depth)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		case errors.Is(err, apperr.ErrAmbiguousName):
			writeJSON(w, http.StatusConflict, errorBody("ambiguous note name"))
		case errors.Is(err, apperr.ErrInvalidDepth):
			writeJSON(w, http.StatusBadRequest, errorBody("depth must be between 0 and 3"))
		default:
			slog.Error("expand note failed", slog.String("name", name), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, ExpandResponse{Name: name, Depth: depth, Content: content})
}

// Search handles GET /search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.Search(q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// Graph handles GET /graph.
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	nodes, links, err := h.svc.Graph()
	if err != nil {
		slog.Error("graph failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, GraphResponse{Nodes: nodes, Links: links})
}

// Chat handles POST /chat: one assistant turn on a conversation thread.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.runner == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody("assistant is not configured"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.ThreadID == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("thread_id and message are required"))
		return
	}

	reply, err := h.runner.Run(r.Context(), req.ThreadID, req.Message)
	if err != nil {
		var re *apperr.RoutingError
		if errors.As(err, &re) {
			slog.Error("chat routing failed", slog.String("thread", req.ThreadID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusBadGateway, errorBody("assistant produced an unroutable tool call"))
			return
		}
		slog.Error("chat turn failed", slog.String("thread", req.ThreadID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, ChatResponse{ThreadID: req.ThreadID, Reply: reply})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
