package domain

import "github.com/samber/lo"

// Sentiment is an emotion label assigned to a piece of text.
// Values outside AllSentiments may appear when they come straight from the
// classifier; consumers decide how to treat them.
type Sentiment string

const (
	SentimentHappy     Sentiment = "Happy"
	SentimentSad       Sentiment = "Sad"
	SentimentAngry     Sentiment = "Angry"
	SentimentDisgusted Sentiment = "Disgusted"
	SentimentSurprised Sentiment = "Surprised"
	SentimentFearful   Sentiment = "Fearful"
	SentimentNeutral   Sentiment = "Neutral"
)

// AllSentiments lists every known label in prompt order.
var AllSentiments = []Sentiment{
	SentimentHappy,
	SentimentSad,
	SentimentAngry,
	SentimentDisgusted,
	SentimentSurprised,
	SentimentFearful,
	SentimentNeutral,
}

// IsKnown reports whether s is one of AllSentiments.
func (s Sentiment) IsKnown() bool {
	return lo.Contains(AllSentiments, s)
}

// String returns the label text.
func (s Sentiment) String() string {
	return string(s)
}
