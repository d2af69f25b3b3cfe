package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/morsely/internal/store"
)

// ErrNotConfigured is returned by NewProviderFromEnv when no provider is
// selected and no vendor credentials are present.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider creates a Provider from configuration, wrapped with retry and
// event logging. A nil eventRepo disables event persistence.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log zerolog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderVertex:
		base, err = NewVertexProvider(ctx, cfg.Vertex)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	log = log.With().Str("component", "llm").Str("provider", cfg.Provider).Logger()

	// caller → timeout → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo, log)
	return WithTimeout(WithRetry(logged, cfg.Retry, log), cfg.Timeout), nil
}

// timeoutProvider bounds each Generate call, retries included.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p so every Generate call gets at most d. A
// non-positive d returns p unchanged.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: d}
}

func (p *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.inner.Generate(ctx, req)
}

func (p *timeoutProvider) ModelID() string {
	return p.inner.ModelID()
}

// ResolveConfig returns the configuration selected by MORSELY_LLM_PROVIDER,
// or the first provider found by DiscoverConfig when that is unset.
func ResolveConfig() (Config, bool) {
	if os.Getenv("MORSELY_LLM_PROVIDER") != "" {
		return ConfigFromEnv(), true
	}
	return DiscoverConfig()
}

// NewProviderFromEnv builds a provider from the environment. It returns
// ErrNotConfigured when nothing is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, log zerolog.Logger) (Provider, Config, error) {
	cfg, ok := ResolveConfig()
	if !ok {
		return nil, Config{}, ErrNotConfigured
	}
	p, err := NewProvider(ctx, cfg, eventRepo, log)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
