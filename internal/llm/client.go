// Package llm provides a thin client for chat-completion providers. Exactly
// one upstream call is made per request; failures are never retried.
package llm

import (
	"context"
	"fmt"
)

// Role tags a chat message.
type Role string

// Chat message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the ordered conversation sent upstream.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options control sampling for a single completion. Callers that need
// reproducible output set Temperature to 0 and supply Stop sequences to
// truncate trailing commentary.
type Options struct {
	Temperature float64
	MaxTokens   int
	Stop        []string
	// ForceJSON requests a JSON-object response where the provider supports
	// constrained output.
	ForceJSON bool
}

// Provider selects the upstream chat-completion API.
type Provider string

// Supported providers.
const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// Config holds provider selection and credentials. Built once at startup and
// treated as immutable.
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	// BaseURL overrides the OpenAI-compatible API base. Ignored by Gemini.
	BaseURL string
}

// Client performs one synchronous chat-completion request and returns the
// trimmed text of the first choice.
type Client interface {
	Chat(ctx context.Context, messages []Message, opts Options) (string, error)
}

// New creates a client for the configured provider.
func New(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, &ConfigError{Message: fmt.Sprintf("unsupported LLM provider %q", cfg.Provider)}
	}
}
