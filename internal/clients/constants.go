package clients

import "time"

const (
	TWITTER_API_BASE    = "https://api.twitter.com/2"
	MAX_RETRIES         = 3
	DEFAULT_RETRY_AFTER = 60 * time.Second
	USER_AGENT          = "tweetproxy-client/1.0 (+https://github.com/spacesedan/tweetproxy)"
)
