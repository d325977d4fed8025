package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/moodmeme/internal/service"
)

// AnalyzeHandler handles sentiment analysis requests.
type AnalyzeHandler struct {
	analyzeService *service.AnalyzeService
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// NewAnalyzeHandler creates a new analyze handler.
// Parameters:
//   - analyzeService: classify/correct/generate pipeline.
//
// Returns:
//   - *AnalyzeHandler: initialized handler.
func NewAnalyzeHandler(analyzeService *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeService: analyzeService,
	}
}

// Analyze handles POST /analyze.
// A missing, empty or unreadable text yields 400 without calling any upstream API.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No text provided",
		})
		return
	}

	// Analyze only fails with ErrEmptyText.
	result, err := h.analyzeService.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No text provided",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
