// Package llm provides language-model capabilities over raw HTTP. Two
// providers are supported: the Anthropic Messages API and OpenAI-compatible
// chat-completions endpoints (including OpenRouter).
package llm

import (
	"fmt"
	"net/http"
	"time"

	"github.com/starford/ansuz/internal/agent"
)

// Provider names accepted by New.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// DefaultTimeout bounds a single model request.
const DefaultTimeout = 120 * time.Second

// Config selects and configures a provider.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string // provider default when empty
	MaxTokens int
	Timeout   time.Duration
}

// New builds the ChatModel for the configured provider.
func New(cfg Config) (agent.ChatModel, error) {
	switch cfg.Provider {
	case ProviderAnthropic:
		return NewAnthropic(cfg), nil
	case ProviderOpenAI:
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
