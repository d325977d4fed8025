package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/timmy/moodmeme/internal/domain"
	"github.com/timmy/moodmeme/internal/logger"
	"github.com/timmy/moodmeme/internal/prompts"
)

// ClassifierService labels text through an OpenAI-compatible chat completion API.
type ClassifierService struct {
	client   *openai.Client
	model    string
	provider string
}

// ClassifierConfig holds configuration for the classifier service.
type ClassifierConfig struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

// NewClassifierService creates a new classifier service.
// Parameters:
//   - cfg: provider, model, credentials and endpoint of the completion API.
//
// Returns:
//   - *ClassifierService: initialized classifier.
func NewClassifierService(cfg *ClassifierConfig) *ClassifierService {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &ClassifierService{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
	}
}

// GetModel returns the model name being used.
func (s *ClassifierService) GetModel() string {
	return s.model
}

// Classify returns the model's label for text.
// The trimmed reply is returned as-is, even when it is not a known label.
// Any failure is logged and yields Neutral.
func (s *ClassifierService) Classify(ctx context.Context, text string) domain.Sentiment {
	ctx = logger.SetComponent(ctx, "classifier")
	ctx = logger.WithField(ctx, logger.FieldProvider, s.provider)

	start := time.Now()
	label, err := s.complete(ctx, prompts.BuildSentimentClassificationPrompt(text))
	if err != nil {
		logger.With(logger.Fields{
			"error": err.Error(),
		}).Error(ctx, "Sentiment classification failed, using %s", domain.SentimentNeutral)
		return domain.SentimentNeutral
	}

	entry := logger.With(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).WithSentiment(label)

	sentiment := domain.Sentiment(label)
	if !sentiment.IsKnown() {
		entry.Warn(ctx, "Model returned an unrecognized label, meme will be rendered as %s: model=%s", domain.SentimentNeutral, s.model)
		return sentiment
	}

	entry.Info(ctx, "Sentiment classified: model=%s", s.model)
	return sentiment
}

func (s *ClassifierService) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("completion API error (HTTP %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
