package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/spacesedan/tweetproxy/internal/clients"
	"github.com/spacesedan/tweetproxy/internal/sentiment"
)

// NewRouter builds the gin engine with all relay routes. CORS is wide open
// on purpose: this is a development posture for a frontend-facing relay.
func NewRouter(analyzer *sentiment.Analyzer) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	twitterH := NewTwitterHandler(clients.GetTwitterClient(), clients.TWITTER_API_BASE)
	sentimentH := NewSentimentHandler(analyzer)
	analysisH := NewAnalysisHandler()
	healthH := NewHealthHandler(analyzer)

	r.GET("/users/by/username/:username", twitterH.GetUserByUsername)
	r.GET("/users/:id/tweets", twitterH.GetUserTweets)
	r.GET("/tweets/:id/liking_users", twitterH.GetLikingUsers)
	r.GET("/check-token", twitterH.CheckToken)
	r.POST("/analyze/sentiment", sentimentH.AnalyzeSentiment)
	r.POST("/analyze/tweets/ai", analysisH.AnalyzeTweetsAI)
	r.POST("/analyze/tweets/chat", analysisH.ChatAboutTweets)
	r.GET("/health", healthH.Health)

	return r
}
