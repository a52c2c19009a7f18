package sentiment

import (
	"log/slog"
	"math"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/tweetproxy/internal/models"
)

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05

	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Analyzer wraps the VADER lexicon model behind a one-way loaded flag. The
// flag transitions NotLoaded -> Loaded exactly once, published by LoadModel
// and read by every request path; until then Score serves a fixed neutral
// stub (degraded mode, not an error).
type Analyzer struct {
	loaded   atomic.Bool
	analyzer *govader.SentimentIntensityAnalyzer
}

var defaultAnalyzer = &Analyzer{}

// Default returns the process-wide analyzer instance.
func Default() *Analyzer { return defaultAnalyzer }

func NewAnalyzer() *Analyzer { return &Analyzer{} }

// LoadModel builds the lexicon model and publishes the loaded flag. Run it
// in a goroutine at process start; a load failure is logged and the process
// keeps serving stubs indefinitely.
func (a *Analyzer) LoadModel() {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("[Sentiment] Model load failed, serving neutral stubs",
				slog.Any("panic", r))
		}
	}()

	slog.Info("[Sentiment] Loading sentiment analysis model...")
	a.analyzer = govader.NewSentimentIntensityAnalyzer()
	a.loaded.Store(true)
	slog.Info("[Sentiment] Sentiment analysis model loaded successfully")
}

func (a *Analyzer) Loaded() bool { return a.loaded.Load() }

// Score computes polarity for a single text. Compound >= 0.05 is positive,
// <= -0.05 negative, otherwise neutral; confidence is |compound|.
func (a *Analyzer) Score(text string) models.SentimentResult {
	if !a.loaded.Load() {
		return neutralStub(text)
	}

	scores := a.analyzer.PolarityScores(plainText(text))

	label := LabelNeutral
	switch {
	case scores.Compound >= positiveThreshold:
		label = LabelPositive
	case scores.Compound <= negativeThreshold:
		label = LabelNegative
	}

	return models.SentimentResult{
		Text: text,
		Scores: models.SentimentScores{
			Negative: scores.Negative,
			Neutral:  scores.Neutral,
			Positive: scores.Positive,
		},
		Sentiment:  label,
		Confidence: math.Abs(scores.Compound),
	}
}

// ScoreBatch scores each text in input order and averages the three score
// components independently across the batch; the overall label is whichever
// averaged component is largest. Empty input yields the neutral default.
func (a *Analyzer) ScoreBatch(texts []string) models.SentimentBatchResult {
	individual := make([]models.SentimentResult, 0, len(texts))
	for _, text := range texts {
		individual = append(individual, a.Score(text))
	}

	overall := models.OverallSentiment{
		Sentiment: LabelNeutral,
		Scores:    models.SentimentScores{Neutral: 1},
	}
	if len(individual) > 0 {
		var sum models.SentimentScores
		for _, r := range individual {
			sum.Negative += r.Scores.Negative
			sum.Neutral += r.Scores.Neutral
			sum.Positive += r.Scores.Positive
		}
		n := float64(len(individual))
		avg := models.SentimentScores{
			Negative: sum.Negative / n,
			Neutral:  sum.Neutral / n,
			Positive: sum.Positive / n,
		}
		overall = models.OverallSentiment{
			Sentiment: dominantLabel(avg),
			Scores:    avg,
		}
	}

	return models.SentimentBatchResult{
		Overall:    overall,
		Individual: individual,
	}
}

func neutralStub(text string) models.SentimentResult {
	return models.SentimentResult{
		Text:       text,
		Scores:     models.SentimentScores{Neutral: 1},
		Sentiment:  LabelNeutral,
		Confidence: 1,
	}
}

// dominantLabel breaks ties in negative, neutral, positive order.
func dominantLabel(s models.SentimentScores) string {
	label, best := LabelNegative, s.Negative
	if s.Neutral > best {
		label, best = LabelNeutral, s.Neutral
	}
	if s.Positive > best {
		label = LabelPositive
	}
	return label
}

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func removeLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// plainText renders markdown to text and strips links so the lexicon only
// sees words it can score.
func plainText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	flattened := strings.Join(strings.Fields(string(output)), " ")

	return removeLinks(flattened)
}
