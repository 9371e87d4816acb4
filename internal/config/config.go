// Package config loads the service configuration from the environment.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// ProviderOpenAI is the only supported model provider
const ProviderOpenAI = "openai"

// Config holds all runtime configuration for the backend
type Config struct {
	// Port the HTTP server listens on
	Port string
	// ModelProvider selects the chat-completion backend
	ModelProvider string
	// OpenAIAPIKey authenticates against the OpenAI API
	OpenAIAPIKey string
	// OpenAIModel names the completion model
	OpenAIModel string
	// SyllabiIndexURL locates the course index document, empty when unset
	SyllabiIndexURL string
	// CacheTTL bounds the age of cached remote documents
	CacheTTL time.Duration
	// AllowedOrigins is the CORS allow-list (scheme+host, no path)
	AllowedOrigins []string
	// LogLevel sets the logrus level by name
	LogLevel string
}

// Load reads configuration from environment variables, applying defaults.
// Call godotenv.Load beforehand so a local .env file is honored.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("MODEL_PROVIDER", ProviderOpenAI)
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("SYLLABI_CACHE_TTL_MS", 900000)
	v.SetDefault("ALLOWED_ORIGIN_1", "http://localhost:5173")
	v.SetDefault("ALLOWED_ORIGIN_2", "http://localhost:4173")
	v.SetDefault("LOG_LEVEL", "info")

	var origins []string
	for _, key := range []string{"ALLOWED_ORIGIN_1", "ALLOWED_ORIGIN_2"} {
		if origin := v.GetString(key); origin != "" {
			origins = append(origins, origin)
		}
	}

	return &Config{
		Port:            v.GetString("PORT"),
		ModelProvider:   v.GetString("MODEL_PROVIDER"),
		OpenAIAPIKey:    v.GetString("OPENAI_API_KEY"),
		OpenAIModel:     v.GetString("OPENAI_MODEL"),
		SyllabiIndexURL: v.GetString("SYLLABI_INDEX_URL"),
		CacheTTL:        time.Duration(v.GetInt64("SYLLABI_CACHE_TTL_MS")) * time.Millisecond,
		AllowedOrigins:  origins,
		LogLevel:        v.GetString("LOG_LEVEL"),
	}
}
