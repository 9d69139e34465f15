package extract

import (
	"context"
	"fmt"

	"github.com/dmejia/credeval/internal/logger"
	"github.com/dmejia/credeval/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and audit middleware.
func NewProvider(ctx context.Context, cfg Config, audit store.AuditRepo, log logger.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown extraction provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller, then retry, then audit, then base.
	audited := WithAudit(base, audit, log)
	retried := WithRetry(audited, cfg.Retry)

	return retried, nil
}
