package agent

import (
	"encoding/json"
	"fmt"
)

// Tool names as declared to the model.
const (
	ToolUpdateMemory = "UpdateMemory"
	ToolCreateNote   = "CreateNote"
	ToolReadNote     = "ReadNote"
	ToolSearchNotes  = "SearchNotes"
)

// Defaults for optional tool arguments.
const (
	DefaultReadDepth = 0
	DefaultSearchK   = 5
)

// ToolSpec declares one tool to the model capability.
type ToolSpec struct {
	Name        string
	Description string
	Schema      map[string]any // JSON schema for the argument bag
}

// UpdateMemoryArgs selects which long-term memory to update.
type UpdateMemoryArgs struct {
	UpdateType string `json:"update_type"` // "user" or "instructions"
}

// CreateNoteArgs names a new note and its content.
type CreateNoteArgs struct {
	NoteName string `json:"note_name"`
	NoteText string `json:"note_text"`
}

// ReadNoteArgs names a note to read with a link-expansion depth.
type ReadNoteArgs struct {
	NoteName string `json:"note_name"`
	Depth    int    `json:"depth"`
}

// SearchNotesArgs carries a keyword query and result count.
type SearchNotesArgs struct {
	Keywords string `json:"keywords"`
	K        int    `json:"k"`
}

func obj(props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// AssistantTools is the tool set bound on every assistant turn.
func AssistantTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        ToolUpdateMemory,
			Description: "Update either the user profile or the note-creation instructions.",
			Schema: obj(map[string]any{
				"update_type": map[string]any{
					"type":        "string",
					"enum":        []string{"user", "instructions"},
					"description": "Type of update - user for profile, instructions for custom instructions",
				},
			}, "update_type"),
		},
		{
			Name:        ToolCreateNote,
			Description: "Creates a note in the library.",
			Schema: obj(map[string]any{
				"note_name": map[string]any{"type": "string", "description": "The name of the note to be created"},
				"note_text": map[string]any{"type": "string", "description": "The content of the note to be created"},
			}, "note_name", "note_text"),
		},
		{
			Name:        ToolReadNote,
			Description: "Read a note and its linked notes.",
			Schema: obj(map[string]any{
				"note_name": map[string]any{"type": "string", "description": "The name of the note to read"},
				"depth":     map[string]any{"type": "integer", "description": "The depth of linked notes to read"},
			}, "note_name"),
		},
		{
			Name:        ToolSearchNotes,
			Description: "Search notes in the vector store based on keywords.",
			Schema: obj(map[string]any{
				"keywords": map[string]any{"type": "string", "description": "The keywords to search for"},
				"k":        map[string]any{"type": "integer", "description": "The number of results to return"},
			}, "keywords"),
		},
	}
}

// decodeArgs unmarshals a tool call's argument bag into v.
func decodeArgs(call *ToolCall, v any) error {
	if len(call.Args) == 0 {
		return fmt.Errorf("tool %s: empty argument bag", call.Name)
	}
	if err := json.Unmarshal(call.Args, v); err != nil {
		return fmt.Errorf("tool %s: decode args: %w", call.Name, err)
	}
	return nil
}
