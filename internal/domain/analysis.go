package domain

// AnalysisResult is the outcome of one analyze request.
// It is built per request and never stored.
type AnalysisResult struct {
	Sentiment Sentiment `json:"sentiment"`
	MemeURL   string    `json:"meme_url"`
}
