package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/memory"
)

// Agent wires the model capability, the note library, and the memory store
// into the conversational loop. It owns no conversation state itself; state
// lives in the Checkpointer.
type Agent struct {
	model       ChatModel
	lib         NoteLibrary
	store       memory.Store
	checkpoints Checkpointer
	logger      *slog.Logger
	userID      string
	role        string
}

// Options configures optional Agent behavior.
type Options struct {
	Role   string // assistant persona; DefaultRole when empty
	Logger *slog.Logger
}

// New creates an Agent for one user.
func New(model ChatModel, lib NoteLibrary, store memory.Store, checkpoints Checkpointer, userID string, opts Options) *Agent {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{
		model:       model,
		lib:         lib,
		store:       store,
		checkpoints: checkpoints,
		logger:      logger,
		userID:      userID,
		role:        opts.Role,
	}
}

func (a *Agent) profileNS() memory.Namespace {
	return memory.Namespace{Kind: memory.KindProfile, UserID: a.userID}
}

func (a *Agent) instructionsNS() memory.Namespace {
	return memory.Namespace{Kind: memory.KindInstructions, UserID: a.userID}
}

// assistantTurn loads memory snapshots into the system prompt and invokes
// the model with the full tool set.
func (a *Agent) assistantTurn(ctx context.Context, msgs []Message) (*Message, error) {
	profile := ""
	if records, err := a.store.Search(ctx, a.profileNS()); err == nil && len(records) > 0 {
		profile = string(records[0].Value)
	}

	instructions := ""
	if rec, err := a.store.Get(ctx, a.instructionsNS(), memory.InstructionsKey); err == nil && rec != nil {
		var ins memory.Instructions
		if decErr := rec.Decode(&ins); decErr == nil {
			instructions = ins.Memory
		}
	}

	system := SystemMessage(systemPrompt(a.role, profile, instructions))
	resp, err := a.model.Chat(ctx, append([]Message{system}, msgs...), AssistantTools())
	if err != nil {
		return nil, fmt.Errorf("agent: assistant turn: %w", err)
	}
	return resp, nil
}

// profileTool is the extraction tool bound for profile updates. The model
// may call it several times in one extraction pass: once per fragment, with
// record_id set to patch an existing record.
func profileTool(existing []memory.Record) ToolSpec {
	desc := "This is the profile of the user you are chatting with."
	if len(existing) > 0 {
		var parts []string
		for _, r := range existing {
			parts = append(parts, fmt.Sprintf("%s: %s", r.Key, string(r.Value)))
		}
		desc += " Existing records (pass record_id to update one):\n" + strings.Join(parts, "\n")
	}
	return ToolSpec{
		Name:        "Profile",
		Description: desc,
		Schema: obj(map[string]any{
			"record_id":   map[string]any{"type": "string", "description": "Id of an existing record to update"},
			"name":        map[string]any{"type": "string", "description": "The user's name"},
			"location":    map[string]any{"type": "string", "description": "The user's location"},
			"job":         map[string]any{"type": "string", "description": "The user's job"},
			"connections": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Personal connections of the user"},
			"interests":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Interests that the user has"},
		}),
	}
}

// updateProfile reflects on the conversation and stores extracted profile
// fragments. Each fragment is put independently under its own record id; no
// transactional atomicity is assumed across puts.
func (a *Agent) updateProfile(ctx context.Context, msgs []Message, call *ToolCall) (Message, error) {
	ns := a.profileNS()
	existing, err := a.store.Search(ctx, ns)
	if err != nil {
		return Message{}, fmt.Errorf("agent: load profile records: %w", err)
	}

	extraction := append([]Message{SystemMessage(extractionPrompt(time.Now()))}, msgs[:len(msgs)-1]...)
	resp, err := a.model.Chat(ctx, extraction, []ToolSpec{profileTool(existing)})
	if err != nil {
		return Message{}, fmt.Errorf("agent: profile extraction: %w", err)
	}

	known := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		known[r.Key] = struct{}{}
	}

	for i := range resp.ToolCalls {
		tc := &resp.ToolCalls[i]
		if tc.Name != "Profile" {
			continue
		}
		var fragment struct {
			RecordID string `json:"record_id"`
			memory.Profile
		}
		if err := decodeArgs(tc, &fragment); err != nil {
			a.logger.Warn("profile fragment dropped", slog.String("error", err.Error()))
			continue
		}
		key := fragment.RecordID
		if _, ok := known[key]; !ok {
			key = uuid.NewString()
		}
		if err := a.store.Put(ctx, ns, key, fragment.Profile); err != nil {
			return Message{}, fmt.Errorf("agent: store profile fragment: %w", err)
		}
	}

	return ToolMessage(call.ID, "updated profile"), nil
}

// updateInstructions rewrites the single instructions record from the
// conversation. The record is overwritten, never merged.
func (a *Agent) updateInstructions(ctx context.Context, msgs []Message, call *ToolCall) (Message, error) {
	ns := a.instructionsNS()

	current := ""
	if rec, err := a.store.Get(ctx, ns, memory.InstructionsKey); err == nil && rec != nil {
		var ins memory.Instructions
		if decErr := rec.Decode(&ins); decErr == nil {
			current = ins.Memory
		}
	}

	rewrite := append([]Message{SystemMessage(instructionsPrompt(current))}, msgs[:len(msgs)-1]...)
	rewrite = append(rewrite, UserMessage(instructionsRequest))

	resp, err := a.model.Chat(ctx, rewrite, nil)
	if err != nil {
		return Message{}, fmt.Errorf("agent: instructions rewrite: %w", err)
	}
	if err := a.store.Put(ctx, ns, memory.InstructionsKey, memory.Instructions{Memory: resp.Content}); err != nil {
		return Message{}, fmt.Errorf("agent: store instructions: %w", err)
	}

	return ToolMessage(call.ID, "updated instructions"), nil
}

// createNote writes a new note from the tool payload. A name collision comes
// back as the tool result so the model can tell the user.
func (a *Agent) createNote(_ context.Context, call *ToolCall) (Message, error) {
	var args CreateNoteArgs
	if err := decodeArgs(call, &args); err != nil {
		return Message{}, &apperr.RoutingError{Tool: call.Name}
	}

	if err := a.lib.Create(args.NoteName, args.NoteText); err != nil {
		if apperr.Recoverable(err) {
			return ToolMessage(call.ID, err.Error()), nil
		}
		return Message{}, err
	}
	return ToolMessage(call.ID, fmt.Sprintf("Note: %s has been created.", args.NoteName)), nil
}

// readNotes expands the named note's link graph to the requested depth.
// Recoverable vault errors are narrated back as the tool result.
func (a *Agent) readNotes(ctx context.Context, call *ToolCall) (Message, error) {
	args := ReadNoteArgs{Depth: DefaultReadDepth}
	if err := decodeArgs(call, &args); err != nil {
		return Message{}, &apperr.RoutingError{Tool: call.Name}
	}

	content, err := a.lib.Expand(ctx, args.NoteName, args.Depth)
	if err != nil {
		if apperr.Recoverable(err) {
			return ToolMessage(call.ID, err.Error()), nil
		}
		return Message{}, err
	}
	return ToolMessage(call.ID, content), nil
}

// searchNotes runs the keyword search and formats the best-matching chunks.
func (a *Agent) searchNotes(ctx context.Context, call *ToolCall) (Message, error) {
	args := SearchNotesArgs{K: DefaultSearchK}
	if err := decodeArgs(call, &args); err != nil {
		return Message{}, &apperr.RoutingError{Tool: call.Name}
	}
	if args.K <= 0 {
		args.K = DefaultSearchK
	}

	hits, err := a.lib.Search(ctx, args.Keywords, args.K)
	if err != nil {
		return Message{}, fmt.Errorf("agent: search notes: %w", err)
	}

	parts := make([]string, len(hits))
	for i, h := range hits {
		parts[i] = fmt.Sprintf("NOTENAME: %s\n %s", h.Name, h.Text)
	}
	return ToolMessage(call.ID, strings.Join(parts, "\n---------------")), nil
}
