package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderVertex     = "vertex"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend; see the Provider* constants.
	Provider string

	Gemini     GeminiConfig
	Vertex     VertexConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// GeminiConfig configures the Gemini Developer API.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// VertexConfig configures Gemini models served from Vertex AI. Credentials
// come from Application Default Credentials.
type VertexConfig struct {
	Project  string
	Location string // Default: "us-central1"
	Model    string // Default: "gemini-flash"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Any OpenAI-compatible endpoint.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-001"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default backend.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Vertex: VertexConfig{
			Location: "us-central1",
			Model:    "gemini-flash",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-001",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// ConfigFromEnv builds a Config from MORSELY_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Provider, "MORSELY_LLM_PROVIDER")

	setFromEnv(&cfg.Gemini.APIKey, "MORSELY_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "MORSELY_GEMINI_MODEL")

	setFromEnv(&cfg.Vertex.Project, "MORSELY_VERTEX_PROJECT")
	setFromEnv(&cfg.Vertex.Location, "MORSELY_VERTEX_LOCATION")
	setFromEnv(&cfg.Vertex.Model, "MORSELY_VERTEX_MODEL")

	setFromEnv(&cfg.Anthropic.APIKey, "MORSELY_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "MORSELY_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "MORSELY_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "MORSELY_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "MORSELY_OPENAI_BASE_URL")

	setFromEnv(&cfg.OpenRouter.APIKey, "MORSELY_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "MORSELY_OPENROUTER_MODEL")

	if v := os.Getenv("MORSELY_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' standard environment variables in
// priority order (Gemini, Vertex AI, OpenAI, Anthropic, OpenRouter) and
// returns a Config for the first one found. Returns (Config{}, false) if
// none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if p := os.Getenv("GOOGLE_CLOUD_PROJECT"); p != "" {
		cfg.Provider = ProviderVertex
		cfg.Vertex.Project = p
		setFromEnv(&cfg.Vertex.Location, "GOOGLE_CLOUD_LOCATION")
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has what it needs to connect.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("MORSELY_GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderVertex:
		if c.Vertex.Project == "" {
			return fmt.Errorf("MORSELY_VERTEX_PROJECT is required for the vertex provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("MORSELY_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("MORSELY_OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("MORSELY_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
