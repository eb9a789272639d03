package config

import (
	"fmt"
	"os"
)

// Defaults applied when the matching environment variable is unset.
const (
	DefaultOpenRouterModel = "mistralai/ministral-8b"
	DefaultHTTPAddr        = ":8080"
	DefaultMetricsDBPath   = "data/metrics.db"

	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// Config holds the configuration for the application.
type Config struct {
	// Generation endpoint
	Provider         string
	OpenRouterAPIKey string
	OpenRouterModel  string
	GeminiAPIKey     string

	// Persistence gateway (Supabase)
	SupabaseURL        string
	SupabaseServiceKey string

	// Server
	HTTPAddr      string
	MetricsDBPath string
}

// NewFromEnv creates a new Config object from environment variables.
// The generation API key is intentionally not required here: a missing
// key surfaces as an auth error on the first generation call, so the
// snapshot and export surfaces keep working without one.
func NewFromEnv() (*Config, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL environment variable not set")
	}

	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	if supabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY environment variable not set")
	}

	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = ProviderOpenRouter
	}
	if provider != ProviderOpenRouter && provider != ProviderGemini {
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}

	model := os.Getenv("OPENROUTER_MODEL")
	if model == "" {
		model = DefaultOpenRouterModel
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = DefaultHTTPAddr
	}

	dbPath := os.Getenv("METRICS_DB_PATH")
	if dbPath == "" {
		dbPath = DefaultMetricsDBPath
	}

	return &Config{
		Provider:           provider,
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:    model,
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		SupabaseURL:        supabaseURL,
		SupabaseServiceKey: supabaseKey,
		HTTPAddr:           addr,
		MetricsDBPath:      dbPath,
	}, nil
}
