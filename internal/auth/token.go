package auth

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// PLACEHOLDER_TOKEN is what the frontend sends when it has no real token and
// wants the relay's default credentials used instead.
const PLACEHOLDER_TOKEN = "dummy-token"

// ResolveToken picks the bearer token for an upstream call: a caller-supplied
// token is used verbatim unless it is empty or the placeholder, in which case
// the process-wide default applies. No well-formedness checks; the upstream
// API rejects bad tokens with its own error payload.
func ResolveToken(callerToken string) string {
	if callerToken != "" && callerToken != PLACEHOLDER_TOKEN {
		return callerToken
	}
	return os.Getenv("TWITTER_BEARER_TOKEN")
}

// BearerFromRequest extracts the bearer token from the Authorization header,
// returning "" when the header is absent or not a Bearer scheme.
func BearerFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return token
}
