package llm

import "context"

// TokenUsage tracks the tokens consumed by a request.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Model            string
}

// ContentResponse contains the generated text and metadata like token usage.
type ContentResponse struct {
	Content string
	Usage   TokenUsage
}

// TextGenerator generates a JSON-formatted completion from a system/user
// instruction pair. Implementations make a single attempt per call;
// retry policy belongs to the caller.
type TextGenerator interface {
	GenerateContent(ctx context.Context, system, user string, temperature float64) (ContentResponse, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
