package sentiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tweetproxy/internal/models"
	"github.com/spacesedan/tweetproxy/internal/sentiment"
)

func loadedAnalyzer() *sentiment.Analyzer {
	a := sentiment.NewAnalyzer()
	a.LoadModel()
	return a
}

func TestScore_NotLoadedReturnsStub(t *testing.T) {
	a := sentiment.NewAnalyzer()

	for _, text := range []string{"anything", "I love this", ""} {
		res := a.Score(text)
		assert.Equal(t, sentiment.LabelNeutral, res.Sentiment)
		assert.Equal(t, models.SentimentScores{Neutral: 1}, res.Scores)
		assert.Equal(t, 1.0, res.Confidence)
		assert.Equal(t, text, res.Text)
	}
}

func TestScore_Positive(t *testing.T) {
	a := loadedAnalyzer()

	res := a.Score("I love this, it is wonderful")
	assert.Equal(t, sentiment.LabelPositive, res.Sentiment)
	assert.Greater(t, res.Confidence, 0.05)
}

func TestScore_Negative(t *testing.T) {
	a := loadedAnalyzer()

	res := a.Score("I hate this, it is terrible")
	assert.Equal(t, sentiment.LabelNegative, res.Sentiment)
	assert.Greater(t, res.Confidence, 0.05)
}

func TestScore_Neutral(t *testing.T) {
	a := loadedAnalyzer()

	res := a.Score("The meeting is scheduled for noon")
	assert.Equal(t, sentiment.LabelNeutral, res.Sentiment)
}

func TestScore_StripsLinks(t *testing.T) {
	a := loadedAnalyzer()

	bare := a.Score("I love this")
	linked := a.Score("I love this https://example.com/post?id=1")
	assert.Equal(t, bare.Sentiment, linked.Sentiment)
}

func TestScoreBatch_OrderAndOverall(t *testing.T) {
	a := loadedAnalyzer()

	res := a.ScoreBatch([]string{"I love this", "I hate this"})
	require.Len(t, res.Individual, 2)
	assert.Equal(t, "I love this", res.Individual[0].Text)
	assert.Equal(t, "I hate this", res.Individual[1].Text)

	// Overall label matches whichever averaged component is largest.
	var avg models.SentimentScores
	for _, r := range res.Individual {
		avg.Negative += r.Scores.Negative / 2
		avg.Neutral += r.Scores.Neutral / 2
		avg.Positive += r.Scores.Positive / 2
	}
	assert.InDelta(t, avg.Negative, res.Overall.Scores.Negative, 1e-9)
	assert.InDelta(t, avg.Neutral, res.Overall.Scores.Neutral, 1e-9)
	assert.InDelta(t, avg.Positive, res.Overall.Scores.Positive, 1e-9)

	want := sentiment.LabelNegative
	best := avg.Negative
	if avg.Neutral > best {
		want, best = sentiment.LabelNeutral, avg.Neutral
	}
	if avg.Positive > best {
		want = sentiment.LabelPositive
	}
	assert.Equal(t, want, res.Overall.Sentiment)
}

func TestScoreBatch_EmptyInput(t *testing.T) {
	a := loadedAnalyzer()

	res := a.ScoreBatch(nil)
	assert.Empty(t, res.Individual)
	assert.Equal(t, sentiment.LabelNeutral, res.Overall.Sentiment)
	assert.Equal(t, models.SentimentScores{Neutral: 1}, res.Overall.Scores)
}

func TestScoreBatch_NotLoaded(t *testing.T) {
	a := sentiment.NewAnalyzer()

	res := a.ScoreBatch([]string{"first", "second"})
	require.Len(t, res.Individual, 2)
	for _, r := range res.Individual {
		assert.Equal(t, sentiment.LabelNeutral, r.Sentiment)
		assert.Equal(t, models.SentimentScores{Neutral: 1}, r.Scores)
	}
	assert.Equal(t, sentiment.LabelNeutral, res.Overall.Sentiment)
}

func TestLoaded_FlagPublishedOnce(t *testing.T) {
	a := sentiment.NewAnalyzer()
	assert.False(t, a.Loaded())

	a.LoadModel()
	assert.True(t, a.Loaded())
}
