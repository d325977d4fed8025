package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSentimentClassificationPrompt(t *testing.T) {
	prompt := BuildSentimentClassificationPrompt(`I said "hi" 100% sure`)

	assert.True(t, strings.HasPrefix(prompt, `Analyze the sentiment of the following text: "I said "hi" 100% sure".`))
	assert.Contains(t, prompt, "Happy, Sad, Angry, Disgusted, Surprised, Fearful, or Neutral")
	assert.True(t, strings.HasSuffix(prompt, "Respond with only the emotion name."))
	assert.NotContains(t, prompt, "%!")
}
