package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCredential(t *testing.T) {
	assert.NoError(t, CheckCredential("GEMINI_API_KEY", "real-key"))

	for _, bad := range []string{"", "PASTE-YOUR-KEY-HERE", "PASTE_ME"} {
		err := CheckCredential("GEMINI_API_KEY", bad)
		require.Error(t, err, "value %q", bad)

		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "GEMINI_API_KEY", cfgErr.Name)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, 2, cfg.SearchResults)
	assert.Equal(t, "file", cfg.CacheBackend)
	assert.Equal(t, ".search_cache", cfg.CacheDir)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "qwen")
	t.Setenv("SEARCH_RESULTS", "5")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "qwen", cfg.LLMProvider)
	assert.Equal(t, 5, cfg.SearchResults)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.Debug)
}

func TestValidateLLMPerProvider(t *testing.T) {
	cfg := &Config{LLMProvider: "gemini", GeminiAPIKey: "key"}
	assert.NoError(t, cfg.ValidateLLM())

	cfg = &Config{LLMProvider: "qwen", DashScopeAPIKey: ""}
	assert.Error(t, cfg.ValidateLLM())

	cfg = &Config{LLMProvider: "qwen", DashScopeAPIKey: "sk-x", GeminiAPIKey: ""}
	assert.NoError(t, cfg.ValidateLLM())
}

func TestValidateSearch(t *testing.T) {
	cfg := &Config{SearchAPIKey: "k", SearchCX: "cx"}
	assert.NoError(t, cfg.ValidateSearch())

	cfg = &Config{SearchAPIKey: "k"}
	assert.Error(t, cfg.ValidateSearch())

	cfg = &Config{SearchCX: "cx"}
	assert.Error(t, cfg.ValidateSearch())
}
