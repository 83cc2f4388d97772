package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → timeout → retry → logging → base
	logged := WithLogging(base, log)
	retried := WithRetry(logged, cfg.Retry)

	return withTimeout(retried, cfg.Timeout), nil
}

// timeoutProvider bounds each Generate call, retries included.
type timeoutProvider struct {
	inner Provider
	d     time.Duration
}

func withTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, d: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string { return t.inner.ModelID() }
