// Package config provides environment-backed configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/biisimvar/profile-wizard/internal/llm"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultPort           = 8080
	DefaultModel          = "llama-3.1-8b-instant"
	DefaultBioSentenceCap = 4
	DefaultMinSalary      = 22104
	DefaultMaxSalary      = 100000
)

// Config holds everything the service needs at startup. Values come from
// the environment once; nothing re-reads os.Getenv afterwards.
type Config struct {
	// Server
	Port int

	// LLM provider selection
	Provider      llm.Provider
	Model         string
	OpenAIAPIKey  string
	GeminiAPIKey  string
	OpenAIBaseURL string

	// Bio rewriting
	BioSentenceCap int

	// Wizard salary guardrails (TL, net monthly)
	MinSalary int
	MaxSalary int
}

// FromEnv builds a Config from the process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           DefaultPort,
		Provider:       llm.Provider(strings.ToLower(os.Getenv("LLM_PROVIDER"))),
		Model:          envOr("LLM_MODEL", DefaultModel),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		OpenAIBaseURL:  envOr("OPENAI_BASE_URL", llm.DefaultOpenAIBaseURL),
		BioSentenceCap: DefaultBioSentenceCap,
		MinSalary:      DefaultMinSalary,
		MaxSalary:      DefaultMaxSalary,
	}

	if cfg.Provider == "" {
		cfg.Provider = llm.ProviderOpenAI
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.BioSentenceCap, err = envInt("BIO_SENTENCE_CAP", cfg.BioSentenceCap); err != nil {
		return nil, err
	}
	if cfg.MinSalary, err = envInt("MIN_SALARY", cfg.MinSalary); err != nil {
		return nil, err
	}
	if cfg.MaxSalary, err = envInt("MAX_SALARY", cfg.MaxSalary); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.Provider {
	case llm.ProviderOpenAI, llm.ProviderGemini:
	default:
		return fmt.Errorf("config error: unsupported LLM_PROVIDER %q (openai|gemini)", c.Provider)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT %d out of range", c.Port)
	}
	if c.BioSentenceCap < 1 {
		return fmt.Errorf("config error: BIO_SENTENCE_CAP must be at least 1")
	}
	if c.MinSalary < 0 || c.MaxSalary <= c.MinSalary {
		return fmt.Errorf("config error: salary bounds %d..%d are invalid", c.MinSalary, c.MaxSalary)
	}
	return nil
}

// APIKey returns the key for the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == llm.ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// LLMConfig converts the service configuration into a client configuration.
func (c *Config) LLMConfig() llm.Config {
	return llm.Config{
		Provider: c.Provider,
		Model:    c.Model,
		APIKey:   c.APIKey(),
		BaseURL:  c.OpenAIBaseURL,
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s must be an integer: %w", key, err)
	}
	return n, nil
}
