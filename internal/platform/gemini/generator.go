// Package gemini implements the generation.Generator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/empowerhub/empowerhub-api/internal/config"
	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/generation"
)

// promptFormat instructs the model to produce a structured learning path.
// The topic and level are interpolated in that order.
const promptFormat = "You are an expert educational consultant. " +
	"Create a comprehensive learning path for '%s' at %s level. " +
	"Include specific steps, timeline, resources, and milestones."

// Generator implements generation.Generator using the Gemini API.
type Generator struct {
	logger *slog.Logger
	client *genai.Client
	model  string

	maxRetries int
	retryDelay time.Duration
}

// Ensure Generator implements the generation.Generator interface
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed learning path generator.
// Returns generation.ErrInvalidConfig if the API key or model name is
// missing or the client cannot be constructed.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 2
	}

	retryDelay := time.Duration(cfg.RetryDelaySeconds) * time.Second
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}

	return &Generator{
		logger:     logger.With(slog.String("component", "gemini_generator")),
		client:     client,
		model:      cfg.ModelName,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}, nil
}

// GeneratePath implements generation.Generator. It retries transient API
// failures with a linear backoff before giving up.
func (g *Generator) GeneratePath(
	ctx context.Context,
	topic string,
	level domain.LearningLevel,
) (string, error) {
	if topic == "" {
		return "", generation.ErrEmptyTopic
	}

	prompt := fmt.Sprintf(promptFormat, topic, level)

	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, ctx.Err())
			case <-time.After(g.retryDelay * time.Duration(attempt)):
			}
		}

		g.logger.DebugContext(ctx, "calling Gemini API",
			slog.String("topic", topic),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", g.maxRetries+1))

		resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			lastErr = err
			g.logger.WarnContext(ctx, "Gemini API call failed",
				slog.String("error", err.Error()),
				slog.Int("attempt", attempt+1))
			continue
		}

		text := resp.Text()
		if text == "" {
			// An empty candidate will not improve on retry
			return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
		}

		g.logger.DebugContext(ctx, "Gemini API call successful",
			slog.String("topic", topic),
			slog.Int("path_length", len(text)))
		return text, nil
	}

	return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, lastErr)
}
