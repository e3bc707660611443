// Package config provides configuration management for Stratosphere.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	// LLM provider settings
	LLMProvider       string // "gemini" (default) or "qwen"
	GeminiAPIKey      string
	GeminiModel       string
	DashScopeAPIKey   string
	DashScopeEndpoint string
	QwenModel         string

	// Google Custom Search settings
	SearchAPIKey  string
	SearchCX      string
	SearchResults int

	// Cache settings
	CacheBackend string // "file" (default), "memory" or "mongo"
	CacheDir     string
	CacheTTL     time.Duration
	MongoURI     string
	MongoDB      string

	// Server settings
	HTTPAddr string
	Debug    bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		// LLM provider
		LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", ""),
		DashScopeAPIKey:   getEnv("DASHSCOPE_API_KEY", ""),
		DashScopeEndpoint: getEnv("DASHSCOPE_ENDPOINT", ""),
		QwenModel:         getEnv("QWEN_MODEL", ""),

		// Custom Search
		SearchAPIKey:  getEnv("GOOGLE_API_KEY", ""),
		SearchCX:      getEnv("GOOGLE_CX", ""),
		SearchResults: getEnvInt("SEARCH_RESULTS", 2),

		// Cache
		CacheBackend: getEnv("CACHE_BACKEND", "file"),
		CacheDir:     getEnv("CACHE_DIR", ".search_cache"),
		CacheTTL:     getEnvDuration("CACHE_TTL", time.Hour),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "stratosphere"),

		// Server
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Debug:    getEnvBool("DEBUG", false),
	}

	return cfg, nil
}

// Validate logs what the current configuration disables. Missing credentials
// are not fatal to the process, only to the component that needs them.
func (c *Config) Validate() error {
	if err := c.ValidateLLM(); err != nil {
		log.Warn().Err(err).Msg("LLM credentials missing, analysis will be unavailable")
	}
	if err := c.ValidateSearch(); err != nil {
		log.Warn().Err(err).Msg("Search credentials missing, reports will fall back to general knowledge")
	}
	return nil
}

// ValidateLLM checks the credentials of the selected LLM provider.
func (c *Config) ValidateLLM() error {
	if c.LLMProvider == "qwen" {
		return CheckCredential("DASHSCOPE_API_KEY", c.DashScopeAPIKey)
	}
	return CheckCredential("GEMINI_API_KEY", c.GeminiAPIKey)
}

// ValidateSearch checks the Custom Search credentials.
func (c *Config) ValidateSearch() error {
	if err := CheckCredential("GOOGLE_API_KEY", c.SearchAPIKey); err != nil {
		return err
	}
	return CheckCredential("GOOGLE_CX", c.SearchCX)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
