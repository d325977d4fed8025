package prompts

import "fmt"

// ============================================================================
// Sentiment Classification Prompt
// ============================================================================

// SentimentClassificationPrompt asks the model for exactly one emotion label.
// The single %s verb receives the user text verbatim.
const SentimentClassificationPrompt = `Analyze the sentiment of the following text: "%s". ` +
	`Classify it as one of the following emotions: Happy, Sad, Angry, Disgusted, Surprised, Fearful, or Neutral. ` +
	`Look for emotional cues, keywords, and the tone of the message. ` +
	`For example, words like 'amazing' or 'joyful' indicate happiness, 'gross' or 'ew' indicate disgust, ` +
	`'angry' or 'furious' indicate anger, and so on. ` +
	`Respond with only the emotion name.`

// BuildSentimentClassificationPrompt embeds text into SentimentClassificationPrompt.
// Parameters:
//   - text: raw user input, inserted without escaping.
//
// Returns:
//   - string: prompt to send as the single user message.
func BuildSentimentClassificationPrompt(text string) string {
	return fmt.Sprintf(SentimentClassificationPrompt, text)
}
