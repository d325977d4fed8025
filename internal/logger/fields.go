package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// ============================================
// Tracing Fields (Context level)
// Propagated through the analyze pipeline
// ============================================

const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldComponent is the pipeline stage or module name
	FieldComponent = "component"

	// FieldProvider is the upstream API provider (groq, imgflip)
	FieldProvider = "provider"
)

// ============================================
// Result Fields (Entry level)
// ============================================

const (
	// FieldSentiment is a sentiment label
	FieldSentiment = "sentiment"

	// FieldTemplateID is the meme template identifier
	FieldTemplateID = "template_id"

	// FieldDurationMs is the execution duration in milliseconds
	FieldDurationMs = "duration_ms"

	// FieldSize is the data size in bytes
	FieldSize = "size"

	// FieldStatus is the operation or HTTP status
	FieldStatus = "status"
)
