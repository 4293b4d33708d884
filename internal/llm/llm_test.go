package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starford/ansuz/internal/agent"
)

func TestNewUnknownProvider(t *testing.T) {
	if _, err := New(Config{Provider: "quantum"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestAnthropicChatMapping(t *testing.T) {
	var got anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") != anthropicVersion {
			t.Errorf("anthropic-version = %q", r.Header.Get("anthropic-version"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(anthropicResponse{
			Content: []anthropicContentBlock{
				{Type: "text", Text: "Reading it now."},
				{Type: "tool_use", ID: "tu-1", Name: "ReadNote", Input: map[string]any{"note_name": "Trip"}},
			},
			StopReason: "tool_use",
		})
	}))
	defer srv.Close()

	c := NewAnthropic(Config{APIKey: "secret", Model: "claude-sonnet-4-5", BaseURL: srv.URL})
	resp, err := c.Chat(context.Background(), []agent.Message{
		agent.SystemMessage("You are helpful."),
		agent.UserMessage("read Trip"),
		{Role: agent.RoleAssistant, ToolCalls: []agent.ToolCall{
			{ID: "prev", Name: "SearchNotes", Args: json.RawMessage(`{"keywords":"trip"}`)},
		}},
		agent.ToolMessage("prev", "NOTENAME: Trip"),
	}, agent.AssistantTools())
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	// System message is hoisted out of the message list.
	if got.System != "You are helpful." {
		t.Fatalf("system = %q", got.System)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(got.Messages))
	}
	// Tool result rides on a user-role message.
	last := got.Messages[2]
	if last.Role != "user" || last.Content[0].Type != "tool_result" || last.Content[0].ToolUseID != "prev" {
		t.Fatalf("tool result mapping = %#v", last)
	}
	if len(got.Tools) != len(agent.AssistantTools()) {
		t.Fatalf("tools = %d", len(got.Tools))
	}

	if resp.Content != "Reading it now." {
		t.Fatalf("content = %q", resp.Content)
	}
	call := resp.PendingCall()
	if call == nil || call.Name != "ReadNote" {
		t.Fatalf("tool call = %#v", call)
	}
	var args agent.ReadNoteArgs
	if err := json.Unmarshal(call.Args, &args); err != nil || args.NoteName != "Trip" {
		t.Fatalf("args = %s (%v)", call.Args, err)
	}
}

func TestAnthropicChatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	c := NewAnthropic(Config{APIKey: "bad", BaseURL: srv.URL})
	if _, err := c.Chat(context.Background(), []agent.Message{agent.UserMessage("hi")}, nil); err == nil {
		t.Fatal("expected error from 401 response")
	}
}

func TestOpenAIChatMapping(t *testing.T) {
	var got openAIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		var tc openAIToolCall
		tc.ID = "tc-1"
		tc.Type = "function"
		tc.Function.Name = "SearchNotes"
		tc.Function.Arguments = `{"keywords":"travel","k":2}`
		json.NewEncoder(w).Encode(openAIResponse{
			Choices: []struct {
				Message openAIMessage `json:"message"`
			}{{Message: openAIMessage{Role: "assistant", ToolCalls: []openAIToolCall{tc}}}},
		})
	}))
	defer srv.Close()

	c := NewOpenAI(Config{APIKey: "secret", Model: "gpt-4o", BaseURL: srv.URL})
	resp, err := c.Chat(context.Background(), []agent.Message{
		agent.SystemMessage("You are helpful."),
		agent.UserMessage("find travel notes"),
	}, agent.AssistantTools())
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	// Chat-completions keeps system messages inline.
	if got.Messages[0].Role != "system" {
		t.Fatalf("head role = %q", got.Messages[0].Role)
	}
	if got.Tools[0].Type != "function" {
		t.Fatalf("tool type = %q", got.Tools[0].Type)
	}

	call := resp.PendingCall()
	if call == nil || call.Name != "SearchNotes" {
		t.Fatalf("tool call = %#v", call)
	}
	var args agent.SearchNotesArgs
	if err := json.Unmarshal(call.Args, &args); err != nil || args.K != 2 {
		t.Fatalf("args = %s (%v)", call.Args, err)
	}
}

func TestOpenAIChatEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAI(Config{APIKey: "k", BaseURL: srv.URL})
	if _, err := c.Chat(context.Background(), []agent.Message{agent.UserMessage("hi")}, nil); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
