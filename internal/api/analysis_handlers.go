package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/tweetproxy/internal/analysis"
	"github.com/spacesedan/tweetproxy/internal/models"
	"github.com/spacesedan/tweetproxy/internal/sentiment"
)

type SentimentHandler struct {
	analyzer *sentiment.Analyzer
}

func NewSentimentHandler(analyzer *sentiment.Analyzer) *SentimentHandler {
	return &SentimentHandler{analyzer: analyzer}
}

func (h *SentimentHandler) AnalyzeSentiment(c *gin.Context) {
	var req models.SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("[Sentiment] Analyzing tweets", slog.Int("count", len(req.Tweets)))
	c.JSON(http.StatusOK, h.analyzer.ScoreBatch(req.Tweets))
}

// AnalysisHandler serves the LLM endpoints. Failures never escape as a
// non-200: every error lands in the payload's error field.
type AnalysisHandler struct{}

func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

func (h *AnalysisHandler) AnalyzeTweetsAI(c *gin.Context) {
	var req models.AIAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysisText, contextText, err := analysis.AnalyzeTweets(c.Request.Context(), req.Tweets, req.Concise)
	if err != nil {
		slog.Error("[Analysis] AI analysis failed", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, models.AIAnalysisResponse{
			Error:    err.Error(),
			Analysis: "",
		})
		return
	}

	c.JSON(http.StatusOK, models.AIAnalysisResponse{
		Analysis: analysisText,
		Context:  contextText,
	})
}

func (h *AnalysisHandler) ChatAboutTweets(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := analysis.ChatAboutTweets(c.Request.Context(), req.Tweets, req.ChatHistory, req.UserMessage)
	if err != nil {
		slog.Error("[Analysis] Chat failed", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, models.ChatResponse{
			Error:    err.Error(),
			Response: "",
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: response})
}
