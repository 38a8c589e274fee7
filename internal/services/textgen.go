package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/config"
)

type GenerationOptions struct {
	Temperature     float32
	MaxOutputTokens int
}

// TextGenerator is the text-generation collaborator: a prompt in, free-form text out.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

// Embedder turns text into a vector for similarity search.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// NewTextGenerator builds the provider named in cfg and wraps it with retries.
func NewTextGenerator(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) (TextGenerator, error) {
	var (
		gen TextGenerator
		err error
	)

	switch cfg.Provider {
	case "", "gemini":
		gen, err = NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.Model)
	case "openai":
		gen, err = NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model)
	case "anthropic":
		gen, err = NewAnthropicService(cfg.AnthropicAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithRetry(gen, cfg.RetryMaxAttempts, cfg.RetryDelay, log), nil
}

type retryGenerator struct {
	inner       TextGenerator
	maxAttempts int
	delay       time.Duration
	log         *zap.Logger
}

// WithRetry retries failed generations with a doubling delay.
// Context cancellation stops retrying immediately.
func WithRetry(inner TextGenerator, maxAttempts int, delay time.Duration, log *zap.Logger) TextGenerator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &retryGenerator{inner: inner, maxAttempts: maxAttempts, delay: delay, log: log}
}

// GenerateText implements TextGenerator.
func (r *retryGenerator) GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	var lastErr error
	wait := r.delay

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		text, err := r.inner.GenerateText(ctx, prompt, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		if attempt == r.maxAttempts {
			break
		}

		r.log.Warn("⚠️ Text generation attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		case <-time.After(wait):
		}
		wait *= 2
	}

	return "", fmt.Errorf("failed after %d attempts: %w", r.maxAttempts, lastErr)
}
