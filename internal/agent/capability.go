package agent

import (
	"context"

	"github.com/starford/ansuz/internal/vault"
)

// ChatModel is the opaque language-model capability: given a conversation
// and a declared tool set, it returns either a natural-language reply or an
// assistant message carrying tool calls. Implementations live in
// internal/llm; tests inject fakes.
type ChatModel interface {
	Chat(ctx context.Context, messages []Message, tools []ToolSpec) (*Message, error)
}

// NoteLibrary is the vault capability the handlers depend on.
// *vault.Library satisfies it.
type NoteLibrary interface {
	Expand(ctx context.Context, name string, depth int) (string, error)
	Create(name, text string) error
	Search(ctx context.Context, keywords string, k int) ([]vault.SearchHit, error)
}

var _ NoteLibrary = (*vault.Library)(nil)
