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

const defaultOpenAIBaseURL = "https://api.openai.com/v1/chat/completions"

// OpenAI talks to an OpenAI-compatible chat-completions endpoint. Point
// BaseURL at openrouter.ai or a local server for alternative backends.
type OpenAI struct {
	apiKey     string
	model      string
	baseURL    string
	maxTokens  int
	httpClient *http.Client
}

// NewOpenAI creates a chat-completions client.
func NewOpenAI(cfg Config) *OpenAI {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAI{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    baseURL,
		maxTokens:  cfg.MaxTokens,
		httpClient: newHTTPClient(cfg.Timeout),
	}
}

type openAIFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type openAITool struct {
	Type     string         `json:"type"`
	Function openAIFunction `json:"function"`
}

type openAIToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type openAIMessage struct {
	Role       string           `json:"role"`
	Content    string           `json:"content"`
	ToolCalls  []openAIToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	Tools     []openAITool    `json:"tools,omitempty"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Chat sends the conversation and declared tools to the chat-completions
// endpoint and maps the first choice back into the conversation model.
func (c *OpenAI) Chat(ctx context.Context, messages []agent.Message, tools []agent.ToolSpec) (*agent.Message, error) {
	req := openAIRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
	}

	for _, m := range messages {
		out := openAIMessage{Role: m.Role, Content: m.Content, ToolCallID: m.ToolCallID}
		for _, tc := range m.ToolCalls {
			var call openAIToolCall
			call.ID = tc.ID
			call.Type = "function"
			call.Function.Name = tc.Name
			call.Function.Arguments = string(tc.Args)
			out.ToolCalls = append(out.ToolCalls, call)
		}
		req.Messages = append(req.Messages, out)
	}

	for _, t := range tools {
		req.Tools = append(req.Tools, openAITool{
			Type: "function",
			Function: openAIFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Schema,
			},
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("llm: openai: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm: openai: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llm: openai: request: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("llm: openai: read response: %w", err)
	}

	var resp openAIResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("llm: openai: decode response (status %d): %w", httpResp.StatusCode, err)
	}
	if httpResp.StatusCode != http.StatusOK {
		if resp.Error != nil {
			return nil, fmt.Errorf("llm: openai: %s: %s", resp.Error.Type, resp.Error.Message)
		}
		return nil, fmt.Errorf("llm: openai: status %d: %s", httpResp.StatusCode, raw)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("llm: openai: empty choices")
	}

	choice := resp.Choices[0].Message
	out := &agent.Message{Role: agent.RoleAssistant, Content: choice.Content}
	for _, tc := range choice.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, agent.ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: json.RawMessage(tc.Function.Arguments),
		})
	}
	return out, nil
}

var _ agent.ChatModel = (*OpenAI)(nil)
