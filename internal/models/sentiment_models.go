package models

type SentimentScores struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
}

type SentimentResult struct {
	Text       string          `json:"text"`
	Scores     SentimentScores `json:"scores"`
	Sentiment  string          `json:"sentiment"`
	Confidence float64         `json:"confidence"`
}

// OverallSentiment carries per-component averages across a batch. The three
// averages are independent means and need not sum to 1.
type OverallSentiment struct {
	Sentiment string          `json:"sentiment"`
	Scores    SentimentScores `json:"scores"`
}

type SentimentBatchResult struct {
	Overall    OverallSentiment  `json:"overall"`
	Individual []SentimentResult `json:"individual"`
}

type SentimentRequest struct {
	Tweets []string `json:"tweets"`
}
