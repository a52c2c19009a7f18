package auth_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tweetproxy/internal/auth"
)

func TestResolveToken_CallerTokenUsedVerbatim(t *testing.T) {
	t.Setenv("TWITTER_BEARER_TOKEN", "default-token")

	assert.Equal(t, "abc", auth.ResolveToken("abc"))
}

func TestResolveToken_EmptyFallsBackToDefault(t *testing.T) {
	t.Setenv("TWITTER_BEARER_TOKEN", "default-token")

	assert.Equal(t, "default-token", auth.ResolveToken(""))
}

func TestResolveToken_PlaceholderFallsBackToDefault(t *testing.T) {
	t.Setenv("TWITTER_BEARER_TOKEN", "default-token")

	assert.Equal(t, "default-token", auth.ResolveToken("dummy-token"))
}

func TestResolveToken_NoDefaultConfigured(t *testing.T) {
	t.Setenv("TWITTER_BEARER_TOKEN", "")

	assert.Equal(t, "", auth.ResolveToken("dummy-token"))
}

func TestBearerFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer xyz", "xyz"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.want, auth.BearerFromRequest(c))
		})
	}
}
