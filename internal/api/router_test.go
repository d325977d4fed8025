package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/moodmeme/internal/config"
	"github.com/timmy/moodmeme/internal/domain"
	"github.com/timmy/moodmeme/internal/logger"
	"github.com/timmy/moodmeme/internal/mocks"
	"github.com/timmy/moodmeme/internal/service"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Mode: "test",
			CORS: config.CORSConfig{AllowAllOrigins: true},
		},
	}
}

func testLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "error", Output: io.Discard, ServiceName: "moodmeme-test"})
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockSentimentClassifier, *mocks.MockMemeGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	classifier := mocks.NewMockSentimentClassifier(ctrl)
	generator := mocks.NewMockMemeGenerator(ctrl)

	svc := service.NewAnalyzeService(classifier, service.NewKeywordCorrector(), generator)
	return SetupRouter(svc, testConfig(), testLogger()), classifier, generator
}

func postAnalyze(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyze_Success(t *testing.T) {
	router, classifier, generator := newTestRouter(t)

	gomock.InOrder(
		classifier.EXPECT().Classify(gomock.Any(), "I feel gross today").Return(domain.SentimentHappy),
		generator.EXPECT().Generate(gomock.Any(), domain.SentimentDisgusted).Return("https://i.imgflip.com/abc.jpg"),
	)

	w := postAnalyze(router, `{"text":"I feel gross today"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sentiment":"Disgusted","meme_url":"https://i.imgflip.com/abc.jpg"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAnalyze_MissingText(t *testing.T) {
	bodies := map[string]string{
		"empty text":   `{"text":""}`,
		"missing text": `{}`,
		"empty body":   ``,
		"invalid json": `{"text":`,
		"wrong type":   `{"text":42}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			// Mocks carry no expectations, so any upstream call fails the test.
			router, _, _ := newTestRouter(t)

			w := postAnalyze(router, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"No text provided"}`, w.Body.String())
		})
	}
}

func TestAnalyze_UpstreamFallbacksStillReturnOK(t *testing.T) {
	router, classifier, generator := newTestRouter(t)

	classifier.EXPECT().Classify(gomock.Any(), "nothing to see").Return(domain.SentimentNeutral)
	generator.EXPECT().Generate(gomock.Any(), domain.SentimentNeutral).Return(service.FallbackMemeURL)

	w := postAnalyze(router, `{"text":"nothing to see"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sentiment":"Neutral","meme_url":"`+service.FallbackMemeURL+`"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "error")
}

func TestIndexPage(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/analyze")
}

func TestHealth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
