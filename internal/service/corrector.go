package service

import (
	"strings"

	"github.com/samber/lo"
	"github.com/timmy/moodmeme/internal/domain"
)

// keywordRule overrides the classifier when any of its keywords occurs in the text.
type keywordRule struct {
	Sentiment domain.Sentiment
	Keywords  []string
}

// keywordRules are checked in order; the first match wins.
var keywordRules = []keywordRule{
	{Sentiment: domain.SentimentDisgusted, Keywords: []string{"gross", "ew", "yuck", "disgusting", "nasty"}},
	{Sentiment: domain.SentimentHappy, Keywords: []string{"amazing", "joy", "happy", "excited", "great"}},
	{Sentiment: domain.SentimentSad, Keywords: []string{"sad", "down", "unhappy", "depressed", "lonely"}},
	{Sentiment: domain.SentimentAngry, Keywords: []string{"angry", "furious", "rage", "irritated", "mad"}},
}

// KeywordCorrector adjusts classifier labels using fixed keyword lists.
// Surprised, Fearful and Neutral have no rules and are only ever kept, never produced.
type KeywordCorrector struct {
	rules []keywordRule
}

// NewKeywordCorrector creates a corrector over the built-in keyword rules.
func NewKeywordCorrector() *KeywordCorrector {
	return &KeywordCorrector{rules: keywordRules}
}

// Correct returns the sentiment of the first rule matching text.
// Matching is a case-insensitive substring check, so "ew" also matches "new".
// Parameters:
//   - label: sentiment from the classifier, possibly not a known label.
//   - text: raw user input.
//
// Returns:
//   - domain.Sentiment: the overriding label, or label unchanged when no rule matches.
func (c *KeywordCorrector) Correct(label domain.Sentiment, text string) domain.Sentiment {
	lowered := strings.ToLower(text)

	for _, rule := range c.rules {
		matched := lo.SomeBy(rule.Keywords, func(keyword string) bool {
			return strings.Contains(lowered, keyword)
		})
		if matched {
			// A rule that agrees with the classifier still ends the scan, so
			// Correct(Happy, "happy but lonely") stays Happy rather than
			// falling through to Sad.
			return rule.Sentiment
		}
	}

	return label
}
