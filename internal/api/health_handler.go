package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/tweetproxy/internal/models"
	"github.com/spacesedan/tweetproxy/internal/sentiment"
)

type HealthHandler struct {
	analyzer *sentiment.Analyzer
}

func NewHealthHandler(analyzer *sentiment.Analyzer) *HealthHandler {
	return &HealthHandler{analyzer: analyzer}
}

// Health always reports ok; model_loaded distinguishes degraded mode
// (sentiment stubs) from fully ready.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:      "ok",
		ModelLoaded: h.analyzer.Loaded(),
	})
}
