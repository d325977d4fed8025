package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/timmy/moodmeme/internal/domain"
	"github.com/timmy/moodmeme/internal/logger"
)

const defaultImgflipEndpoint = "https://api.imgflip.com/caption_image"

// ImgflipService renders captioned memes through the Imgflip caption_image API.
type ImgflipService struct {
	client      *resty.Client
	endpoint    string
	username    string
	password    string
	fallbackURL string
	pick        func(n int) int
}

// ImgflipConfig holds configuration for the Imgflip service.
type ImgflipConfig struct {
	Username    string
	Password    string
	Endpoint    string
	FallbackURL string
	Timeout     time.Duration
}

// NewImgflipService creates a new Imgflip service.
// Parameters:
//   - cfg: account credentials, endpoint and fallback image.
//
// Returns:
//   - *ImgflipService: initialized meme generator.
func NewImgflipService(cfg *ImgflipConfig) *ImgflipService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetTimeout(timeout)

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultImgflipEndpoint
	}
	fallbackURL := cfg.FallbackURL
	if fallbackURL == "" {
		fallbackURL = FallbackMemeURL
	}

	return &ImgflipService{
		client:      client,
		endpoint:    endpoint,
		username:    cfg.Username,
		password:    cfg.Password,
		fallbackURL: fallbackURL,
		pick:        rand.Intn,
	}
}

type captionImageResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL     string `json:"url"`
		PageURL string `json:"page_url"`
	} `json:"data"`
	ErrorMessage string `json:"error_message"`
}

// errCaptionRejected marks a well-formed reply with success=false.
var errCaptionRejected = errors.New("imgflip rejected caption request")

// Generate returns an image URL for a meme matching label.
// Unknown labels are rendered as Neutral. Failures are logged and yield the fallback URL.
func (s *ImgflipService) Generate(ctx context.Context, label domain.Sentiment) string {
	if !label.IsKnown() {
		logger.CtxWarn(ctx, "Unknown sentiment %q, rendering as %s", label, domain.SentimentNeutral)
		label = domain.SentimentNeutral
	}

	templates := TemplateIDs(label)
	templateID := templates[s.pick(len(templates))]
	top, bottom, _ := CaptionPair(label)

	ctx = logger.SetComponent(ctx, "meme_generator")
	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldProvider:   "imgflip",
		logger.FieldSentiment:  string(label),
		logger.FieldTemplateID: templateID,
	})

	start := time.Now()
	url, err := s.caption(ctx, templateID, top, bottom)
	if err != nil {
		logger.With(logger.Fields{
			"error": err.Error(),
		}).Error(ctx, "Meme generation failed, using fallback image")
		return s.fallbackURL
	}

	logger.With(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info(ctx, "Meme generated: url=%s", url)

	return url
}

func (s *ImgflipService) caption(ctx context.Context, templateID, top, bottom string) (string, error) {
	var result captionImageResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"template_id": templateID,
			"username":    s.username,
			"password":    s.password,
			"text0":       top,
			"text1":       bottom,
		}).
		ForceContentType("application/json").
		SetResult(&result).
		Post(s.endpoint)
	if err != nil {
		return "", fmt.Errorf("failed to call caption API: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", fmt.Errorf("caption API returned HTTP %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	if !result.Success {
		msg := result.ErrorMessage
		if msg == "" {
			msg = "Unknown error"
		}
		return "", fmt.Errorf("%w: %s", errCaptionRejected, msg)
	}

	if result.Data.URL == "" {
		return "", errors.New("caption API reported success without an image URL")
	}

	return result.Data.URL, nil
}
