package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/moodmeme/web"
)

// PageHandler serves the embedded front end.
type PageHandler struct {
	index []byte
}

// NewPageHandler creates a page handler for the built-in index page.
func NewPageHandler() *PageHandler {
	return &PageHandler{index: web.IndexHTML}
}

// Index handles GET /.
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.index)
}
