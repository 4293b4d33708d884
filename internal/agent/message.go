// Package agent implements the conversational loop: assistant turns, the
// tool-routing state machine, and the handlers behind each tool.
package agent

import "encoding/json"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is one structured tool invocation produced by the model: a named
// operation plus a JSON argument bag.
type ToolCall struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// Message is one entry in a conversation thread.
//
// An assistant message may carry tool calls; the routing state machine only
// ever inspects the first one (one side-effecting operation per turn). A tool
// message answers a call via ToolCallID.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// ToolMessage builds the tool-result message answering callID.
func ToolMessage(callID, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: callID}
}

// PendingCall returns the message's first tool call, or nil when the message
// carries none (a terminal assistant reply).
func (m *Message) PendingCall() *ToolCall {
	if len(m.ToolCalls) == 0 {
		return nil
	}
	return &m.ToolCalls[0]
}
