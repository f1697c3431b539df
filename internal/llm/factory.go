package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/smartanki/smartanki/internal/logger"
	"github.com/smartanki/smartanki/internal/store"
)

// NewProvider builds the vendor client named by cfg and stacks the
// decorators around it: retry on the outside, then request logging, so
// every attempt is recorded.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, events, log), cfg.Retry, cfg.Timeout), nil
}

// NewProviderFromEnv resolves the environment and builds a provider. It
// returns nil, nil when no vendor is configured so AI features can be
// switched off; a named but misconfigured provider is an error.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, log *logger.Logger) (Provider, error) {
	cfg, ok := ResolveConfig()
	if !ok {
		if os.Getenv("SMARTANKI_LLM_PROVIDER") != "" {
			return nil, cfg.Validate()
		}
		return nil, nil
	}
	return NewProvider(ctx, cfg, events, log)
}
