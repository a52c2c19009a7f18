package clients

import (
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxRetries = 3

var (
	anthropicClientInstance *AnthropicClient
	anthropicOnce           sync.Once

	ErrAnthropicNotConfigured = errors.New("[AnthropicClient] ANTHROPIC_API_KEY is not set")
)

type AnthropicClient struct {
	Client anthropic.Client
}

// GetAnthropicClient returns the shared Anthropic client, or
// ErrAnthropicNotConfigured when the API key is absent. The SDK handles
// backoff on 429/5xx internally.
func GetAnthropicClient() (*AnthropicClient, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, ErrAnthropicNotConfigured
	}
	anthropicOnce.Do(func() {
		anthropicClientInstance = &AnthropicClient{
			Client: anthropic.NewClient(
				option.WithAPIKey(apiKey),
				option.WithMaxRetries(anthropicMaxRetries),
			),
		}
		slog.Info("[AnthropicClient] Anthropic client initialized")
	})
	return anthropicClientInstance, nil
}
