package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

var (
	twitterClientInstance *TwitterClient
	twitterClientOnce     sync.Once
)

// TwitterClient issues GET requests against the Twitter v2 API and absorbs
// rate limiting. The sleep func is swappable so tests can observe backoff
// waits without real delays.
type TwitterClient struct {
	Client *http.Client
	sleep  func(time.Duration)
}

func GetTwitterClient() *TwitterClient {
	twitterClientOnce.Do(func() {
		twitterClientInstance = NewTwitterClient(&http.Client{})
	})
	return twitterClientInstance
}

func NewTwitterClient(httpClient *http.Client) *TwitterClient {
	return &TwitterClient{
		Client: httpClient,
		sleep:  time.Sleep,
	}
}

// WithSleep overrides the backoff wait. Test hook.
func (tc *TwitterClient) WithSleep(sleep func(time.Duration)) *TwitterClient {
	tc.sleep = sleep
	return tc
}

// Execute performs a GET against the upstream API with retry-on-rate-limit.
// Each 429 response consumes one attempt and one blocking wait (retry-after
// header, default 60s); after MAX_RETRIES rate-limited attempts a synthesized
// exhausted-retries payload is returned as a normal result. Any non-429
// response with a parseable JSON body is returned verbatim, errors included.
// Only transport-level failures surface as a Go error.
func (tc *TwitterClient) Execute(rawURL string, headers map[string]string, params url.Values) (map[string]any, error) {
	reqURL := rawURL
	if len(params) > 0 {
		reqURL = rawURL + "?" + params.Encode()
	}

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		req, err := http.NewRequest(http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("[TwitterClient] failed to build request: %w", err)
		}
		req.Header.Set("User-Agent", USER_AGENT)
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := tc.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("[TwitterClient] upstream request failed: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			wait := retryAfter(resp.Header)
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			slog.Warn("[TwitterClient] Rate limited, waiting before retry",
				slog.Duration("retry_after", wait),
				slog.Int("attempt", attempt+1))
			tc.sleep(wait)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("[TwitterClient] failed to read response: %w", err)
		}

		var result map[string]any
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("[TwitterClient] upstream returned status %d with unparseable body: %w",
				resp.StatusCode, err)
		}

		// Upstream 4xx/5xx with a JSON body is a valid, if erroneous,
		// result and passes through unmodified.
		return result, nil
	}

	slog.Error("[TwitterClient] Max retries exceeded due to rate limits")
	return RateLimitExhausted(), nil
}

// RateLimitExhausted is the payload returned once the retry budget is spent.
func RateLimitExhausted() map[string]any {
	return map[string]any{
		"errors": []any{
			map[string]any{"detail": "Maximum retries exceeded due to rate limits"},
		},
	}
}

func retryAfter(h http.Header) time.Duration {
	raw := h.Get("retry-after")
	if raw == "" {
		return DEFAULT_RETRY_AFTER
	}
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return DEFAULT_RETRY_AFTER
	}
	return time.Duration(secs) * time.Second
}
