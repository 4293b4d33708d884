package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/starford/ansuz/internal/agent"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion        = "2023-06-01"
	defaultMaxTokens        = 4096
)

// Anthropic talks to the Messages API directly.
type Anthropic struct {
	apiKey     string
	model      string
	baseURL    string
	maxTokens  int
	httpClient *http.Client
}

// NewAnthropic creates a Messages API client.
func NewAnthropic(cfg Config) *Anthropic {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	return &Anthropic{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    baseURL,
		maxTokens:  maxTokens,
		httpClient: newHTTPClient(cfg.Timeout),
	}
}

type anthropicContentBlock struct {
	Type string `json:"type"`

	// type == "text"
	Text string `json:"text,omitempty"`

	// type == "tool_use"
	ID    string         `json:"id,omitempty"`
	Name  string         `json:"name,omitempty"`
	Input map[string]any `json:"input,omitempty"`

	// type == "tool_result"
	ToolUseID string `json:"tool_use_id,omitempty"`
	Content   string `json:"content,omitempty"`
}

type anthropicMessage struct {
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

type anthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Tools     []anthropicTool    `json:"tools,omitempty"`
}

type anthropicResponse struct {
	Content    []anthropicContentBlock `json:"content"`
	StopReason string                  `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat sends the conversation and declared tools, and maps the reply back
// into the conversation model. System messages are hoisted into the
// top-level system field; tool results become tool_result content blocks on
// user-role messages, as the Messages API requires.
func (c *Anthropic) Chat(ctx context.Context, messages []agent.Message, tools []agent.ToolSpec) (*agent.Message, error) {
	req := anthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
	}

	for _, m := range messages {
		switch m.Role {
		case agent.RoleSystem:
			if req.System != "" {
				req.System += "\n\n"
			}
			req.System += m.Content

		case agent.RoleAssistant:
			var blocks []anthropicContentBlock
			if m.Content != "" {
				blocks = append(blocks, anthropicContentBlock{Type: "text", Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				input := map[string]any{}
				if len(tc.Args) > 0 {
					if err := json.Unmarshal(tc.Args, &input); err != nil {
						return nil, fmt.Errorf("llm: anthropic: encode tool call %s: %w", tc.Name, err)
					}
				}
				blocks = append(blocks, anthropicContentBlock{
					Type:  "tool_use",
					ID:    tc.ID,
					Name:  tc.Name,
					Input: input,
				})
			}
			req.Messages = append(req.Messages, anthropicMessage{Role: "assistant", Content: blocks})

		case agent.RoleTool:
			req.Messages = append(req.Messages, anthropicMessage{
				Role: "user",
				Content: []anthropicContentBlock{{
					Type:      "tool_result",
					ToolUseID: m.ToolCallID,
					Content:   m.Content,
				}},
			})

		default:
			req.Messages = append(req.Messages, anthropicMessage{
				Role:    "user",
				Content: []anthropicContentBlock{{Type: "text", Text: m.Content}},
			})
		}
	}

	for _, t := range tools {
		req.Tools = append(req.Tools, anthropicTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.Schema,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("llm: anthropic: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm: anthropic: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llm: anthropic: request: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("llm: anthropic: read response: %w", err)
	}

	var resp anthropicResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("llm: anthropic: decode response (status %d): %w", httpResp.StatusCode, err)
	}
	if httpResp.StatusCode != http.StatusOK {
		if resp.Error != nil {
			return nil, fmt.Errorf("llm: anthropic: %s: %s", resp.Error.Type, resp.Error.Message)
		}
		return nil, fmt.Errorf("llm: anthropic: status %d: %s", httpResp.StatusCode, raw)
	}

	out := &agent.Message{Role: agent.RoleAssistant}
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			if out.Content != "" {
				out.Content += "\n"
			}
			out.Content += block.Text
		case "tool_use":
			args, err := json.Marshal(block.Input)
			if err != nil {
				return nil, fmt.Errorf("llm: anthropic: decode tool input: %w", err)
			}
			out.ToolCalls = append(out.ToolCalls, agent.ToolCall{
				ID:   block.ID,
				Name: block.Name,
				Args: args,
			})
		}
	}
	return out, nil
}

var _ agent.ChatModel = (*Anthropic)(nil)
