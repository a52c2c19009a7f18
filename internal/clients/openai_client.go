package clients

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once

	ErrOpenAINotConfigured = errors.New("[OpenAIClient] OPENAI_API_KEY is not set")
)

type OpenAIClient struct {
	Client *openai.Client
}

// GetOpenAIClient returns the shared OpenAI client, or
// ErrOpenAINotConfigured when the API key is absent. Handlers turn that into
// a structured error payload rather than crashing.
func GetOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrOpenAINotConfigured
	}
	openAIOnce.Do(func() {
		config := openai.DefaultConfig(apiKey)
		config.HTTPClient = &http.Client{
			Timeout: openAIRequestTimeout,
		}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClientWithConfig(config),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance, nil
}
