package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	cfg    Config
	client *genai.Client
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigError{Message: "API key is missing"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{cfg: cfg, client: client}, nil
}

// Chat sends the conversation as a single Gemini turn. System messages map to
// the model's system instruction; the remaining messages become content parts.
func (c *GeminiClient) Chat(ctx context.Context, messages []Message, opts Options) (string, error) {
	if c.cfg.Model == "" {
		return "", &ConfigError{Message: "model is missing"}
	}

	model := c.client.GenerativeModel(c.cfg.Model)
	model.SetTemperature(float32(opts.Temperature))
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	if len(opts.Stop) > 0 {
		model.StopSequences = opts.Stop
	}
	if opts.ForceJSON {
		model.ResponseMIMEType = "application/json"
	}

	var systemParts []genai.Part
	var contentParts []genai.Part
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			systemParts = append(systemParts, genai.Text(msg.Content))
			continue
		}
		contentParts = append(contentParts, genai.Text(msg.Content))
	}
	if len(systemParts) > 0 {
		model.SystemInstruction = &genai.Content{Parts: systemParts}
	}
	if len(contentParts) == 0 {
		return "", &ConfigError{Message: "no user content to send"}
	}

	resp, err := model.GenerateContent(ctx, contentParts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &EmptyResponseError{Provider: ProviderGemini}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &EmptyResponseError{Provider: ProviderGemini}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	joined := strings.TrimSpace(strings.Join(parts, ""))
	if joined == "" {
		return "", &EmptyResponseError{Provider: ProviderGemini}
	}

	return joined, nil
}
