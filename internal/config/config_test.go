package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biisimvar/profile-wizard/internal/llm"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("BIO_SENTENCE_CAP", "")
	t.Setenv("MIN_SALARY", "")
	t.Setenv("MAX_SALARY", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, llm.DefaultOpenAIBaseURL, cfg.OpenAIBaseURL)
	assert.Equal(t, DefaultBioSentenceCap, cfg.BioSentenceCap)
	assert.Equal(t, DefaultMinSalary, cfg.MinSalary)
	assert.Equal(t, DefaultMaxSalary, cfg.MaxSalary)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "GEMINI")
	t.Setenv("LLM_MODEL", "gemini-1.5-flash")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("PORT", "9090")
	t.Setenv("BIO_SENTENCE_CAP", "6")
	t.Setenv("MIN_SALARY", "")
	t.Setenv("MAX_SALARY", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 6, cfg.BioSentenceCap)
	assert.Equal(t, "g-key", cfg.APIKey())
}

func TestFromEnv_InvalidProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "mistral")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_PROVIDER")
}

func TestFromEnv_BadInt(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("PORT", "eighty")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestValidate_SalaryBounds(t *testing.T) {
	cfg := &Config{
		Provider:       llm.ProviderOpenAI,
		Port:           8080,
		BioSentenceCap: 4,
		MinSalary:      50000,
		MaxSalary:      40000,
	}
	assert.Error(t, cfg.Validate())
}

func TestLLMConfig(t *testing.T) {
	cfg := &Config{
		Provider:      llm.ProviderOpenAI,
		Model:         "llama-3.1-8b-instant",
		OpenAIAPIKey:  "o-key",
		OpenAIBaseURL: "https://example.test/v1",
	}

	lc := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderOpenAI, lc.Provider)
	assert.Equal(t, "o-key", lc.APIKey)
	assert.Equal(t, "https://example.test/v1", lc.BaseURL)
}
