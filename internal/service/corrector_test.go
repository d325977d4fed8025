package service

import (
	"testing"

	"github.com/timmy/moodmeme/internal/domain"
)

func TestKeywordCorrector_Correct(t *testing.T) {
	corrector := NewKeywordCorrector()

	tests := []struct {
		name     string
		label    domain.Sentiment
		text     string
		expected domain.Sentiment
	}{
		{
			name:     "disgust keyword overrides happy",
			label:    domain.SentimentHappy,
			text:     "I feel gross today",
			expected: domain.SentimentDisgusted,
		},
		{
			name:     "no keyword keeps neutral",
			label:    domain.SentimentNeutral,
			text:     "just an ordinary day",
			expected: domain.SentimentNeutral,
		},
		{
			name:     "disgust beats happy",
			label:    domain.SentimentSurprised,
			text:     "That was gross but the view was amazing",
			expected: domain.SentimentDisgusted,
		},
		{
			name:     "disgust beats happy when already disgusted",
			label:    domain.SentimentDisgusted,
			text:     "That was gross but the view was amazing",
			expected: domain.SentimentDisgusted,
		},
		{
			name:     "happy beats sad",
			label:    domain.SentimentNeutral,
			text:     "happy to be sad",
			expected: domain.SentimentHappy,
		},
		{
			name:     "sad beats angry",
			label:    domain.SentimentAngry,
			text:     "so lonely and furious",
			expected: domain.SentimentSad,
		},
		{
			name:     "angry keyword",
			label:    domain.SentimentFearful,
			text:     "I am IRRITATED",
			expected: domain.SentimentAngry,
		},
		{
			name:     "matching the current label keeps it",
			label:    domain.SentimentSad,
			text:     "feeling depressed",
			expected: domain.SentimentSad,
		},
		{
			name:     "agreeing rule stops the scan before sad",
			label:    domain.SentimentHappy,
			text:     "happy but lonely",
			expected: domain.SentimentHappy,
		},
		{
			name:     "same text from another label becomes happy",
			label:    domain.SentimentSad,
			text:     "happy but lonely",
			expected: domain.SentimentHappy,
		},
		{
			name:     "substring match inside a longer word",
			label:    domain.SentimentNeutral,
			text:     "brand new shoes",
			expected: domain.SentimentDisgusted,
		},
		{
			name:     "surprised without keywords is kept",
			label:    domain.SentimentSurprised,
			text:     "wow what a plot twist",
			expected: domain.SentimentSurprised,
		},
		{
			name:     "unknown label without keywords is kept",
			label:    domain.Sentiment("Confused"),
			text:     "hmm",
			expected: domain.Sentiment("Confused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := corrector.Correct(tt.label, tt.text)
			if got != tt.expected {
				t.Errorf("Correct(%q, %q) = %q, want %q", tt.label, tt.text, got, tt.expected)
			}
		})
	}
}

func TestKeywordCorrector_PriorityForAnyLabel(t *testing.T) {
	corrector := NewKeywordCorrector()
	text := "this is gross and amazing"

	labels := append([]domain.Sentiment{"Confused", ""}, domain.AllSentiments...)
	for _, label := range labels {
		if got := corrector.Correct(label, text); got != domain.SentimentDisgusted {
			t.Errorf("Correct(%q) = %q, want %q", label, got, domain.SentimentDisgusted)
		}
	}
}

func TestKeywordCorrector_Idempotent(t *testing.T) {
	corrector := NewKeywordCorrector()
	texts := []string{
		"just an ordinary day",
		"I feel gross today",
		"so lonely and furious",
		"gross but amazing",
		"",
	}

	for _, text := range texts {
		for _, label := range domain.AllSentiments {
			once := corrector.Correct(label, text)
			twice := corrector.Correct(once, text)
			if once != twice {
				t.Errorf("Correct not idempotent for (%q, %q): %q then %q", label, text, once, twice)
			}
		}
	}
}
