package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/tweetproxy/internal/auth"
	"github.com/spacesedan/tweetproxy/internal/clients"
	"github.com/spacesedan/tweetproxy/internal/models"
)

// TwitterHandler relays requests to the upstream API and returns the result
// unmodified. The base URL is injected so tests can point it at a fake
// upstream.
type TwitterHandler struct {
	client  *clients.TwitterClient
	baseURL string
}

func NewTwitterHandler(client *clients.TwitterClient, baseURL string) *TwitterHandler {
	return &TwitterHandler{
		client:  client,
		baseURL: baseURL,
	}
}

func (h *TwitterHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	slog.Info("[Relay] Looking up user", slog.String("username", username))

	params := url.Values{}
	setJoined(params, "user.fields", c.QueryArray("user_fields"))
	setJoined(params, "expansions", c.QueryArray("expansions"))
	setJoined(params, "tweet.fields", c.QueryArray("tweet_fields"))

	h.relay(c, fmt.Sprintf("%s/users/by/username/%s", h.baseURL, username), params)
}

func (h *TwitterHandler) GetUserTweets(c *gin.Context) {
	id := c.Param("id")
	slog.Info("[Relay] Fetching tweets for user", slog.String("id", id))

	params := url.Values{}
	setScalar(params, "since_id", c.Query("since_id"))
	setScalar(params, "until_id", c.Query("until_id"))
	params.Set("max_results", c.DefaultQuery("max_results", "10"))
	setScalar(params, "pagination_token", c.Query("pagination_token"))
	setJoined(params, "exclude", c.QueryArray("exclude"))
	setScalar(params, "start_time", c.Query("start_time"))
	setScalar(params, "end_time", c.Query("end_time"))
	setJoined(params, "tweet.fields", c.QueryArray("tweet_fields"))
	setJoined(params, "expansions", c.QueryArray("expansions"))
	setJoined(params, "media.fields", c.QueryArray("media_fields"))
	setJoined(params, "poll.fields", c.QueryArray("poll_fields"))
	setJoined(params, "user.fields", c.QueryArray("user_fields"))
	setJoined(params, "place.fields", c.QueryArray("place_fields"))

	h.relay(c, fmt.Sprintf("%s/users/%s/tweets", h.baseURL, id), params)
}

func (h *TwitterHandler) GetLikingUsers(c *gin.Context) {
	id := c.Param("id")
	slog.Info("[Relay] Fetching liking users for tweet", slog.String("id", id))

	params := url.Values{}
	setScalar(params, "max_results", c.Query("max_results"))
	setScalar(params, "pagination_token", c.Query("pagination_token"))
	setJoined(params, "user.fields", c.QueryArray("user_fields"))
	setJoined(params, "expansions", c.QueryArray("expansions"))
	setJoined(params, "tweet.fields", c.QueryArray("tweet_fields"))

	h.relay(c, fmt.Sprintf("%s/tweets/%s/liking_users", h.baseURL, id), params)
}

// CheckToken verifies the resolved bearer token against the upstream API.
// The outcome rides in the Status field; the HTTP status is always 200.
func (h *TwitterHandler) CheckToken(c *gin.Context) {
	token := auth.ResolveToken(auth.BearerFromRequest(c))
	if token == "" {
		c.JSON(http.StatusOK, models.TokenCheckResponse{
			Status:  "error",
			Message: "No bearer token supplied and TWITTER_BEARER_TOKEN is not set",
		})
		return
	}

	result, err := h.client.Execute(h.baseURL+"/users/me", bearerHeaders(token), nil)
	if err != nil {
		c.JSON(http.StatusOK, models.TokenCheckResponse{
			Status:  "error",
			Message: "Upstream request failed",
			Error:   err.Error(),
		})
		return
	}

	if errs, ok := result["errors"]; ok {
		c.JSON(http.StatusOK, models.TokenCheckResponse{
			Status:  "error",
			Message: "Token rejected by upstream",
			Error:   errs,
		})
		return
	}

	c.JSON(http.StatusOK, models.TokenCheckResponse{
		Status:  "ok",
		Message: "Token accepted by upstream",
		Data:    result,
	})
}

// relay resolves the bearer token, executes the upstream GET, and passes the
// result through verbatim. Only transport-level failures change the status
// code (502); upstream error payloads ride through as-is.
func (h *TwitterHandler) relay(c *gin.Context, upstreamURL string, params url.Values) {
	token := auth.ResolveToken(auth.BearerFromRequest(c))

	result, err := h.client.Execute(upstreamURL, bearerHeaders(token), params)
	if err != nil {
		slog.Error("[Relay] Upstream request failed",
			slog.String("url", upstreamURL),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func bearerHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func setScalar(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

// setJoined comma-joins repeated query params the way the upstream expects.
func setJoined(params url.Values, key string, values []string) {
	if len(values) > 0 {
		params.Set(key, strings.Join(values, ","))
	}
}
