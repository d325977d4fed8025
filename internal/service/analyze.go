//go:generate go run go.uber.org/mock/mockgen -source=analyze.go -destination=../mocks/mock_analyze.go -package=mocks
package service

import (
	"context"
	"errors"
	"time"

	"github.com/timmy/moodmeme/internal/domain"
	"github.com/timmy/moodmeme/internal/logger"
)

// ErrEmptyText is returned when there is no text to analyze.
var ErrEmptyText = errors.New("no text provided")

// SentimentClassifier assigns a label to free text. It never fails; errors
// degrade to a default label.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) domain.Sentiment
}

// SentimentCorrector adjusts a classifier label using the original text.
type SentimentCorrector interface {
	Correct(label domain.Sentiment, text string) domain.Sentiment
}

// MemeGenerator renders a meme for a label and returns its image URL.
// It never fails; errors degrade to a fallback image.
type MemeGenerator interface {
	Generate(ctx context.Context, label domain.Sentiment) string
}

// AnalyzeService runs classify, correct and generate for one piece of text.
type AnalyzeService struct {
	classifier SentimentClassifier
	corrector  SentimentCorrector
	generator  MemeGenerator
}

// NewAnalyzeService creates a new analyze service.
// Parameters:
//   - classifier: LLM-backed sentiment classifier.
//   - corrector: keyword override pass.
//   - generator: meme renderer.
//
// Returns:
//   - *AnalyzeService: initialized pipeline.
func NewAnalyzeService(
	classifier SentimentClassifier,
	corrector SentimentCorrector,
	generator MemeGenerator,
) *AnalyzeService {
	return &AnalyzeService{
		classifier: classifier,
		corrector:  corrector,
		generator:  generator,
	}
}

// Analyze classifies text and fetches a matching meme.
// The stages run strictly in sequence. The only error is ErrEmptyText,
// returned before any outbound call.
func (s *AnalyzeService) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	start := time.Now()

	classified := s.classifier.Classify(ctx, text)
	corrected := s.corrector.Correct(classified, text)
	if corrected != classified {
		logger.CtxInfo(ctx, "Sentiment corrected by keywords: from=%s, to=%s", classified, corrected)
	}

	memeURL := s.generator.Generate(ctx, corrected)

	logger.With(logger.Fields{
		logger.FieldSentiment:  string(corrected),
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info(ctx, "Analysis completed")

	return &domain.AnalysisResult{
		Sentiment: corrected,
		MemeURL:   memeURL,
	}, nil
}
