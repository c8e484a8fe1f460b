package studio

import "context"

// ChatProvider defines the interface for text generation providers.
type ChatProvider interface {
	// GenerateText sends a conversation and returns a complete response.
	// An empty candidate list from the backend is a terminal blocked
	// failure, not a transport error.
	GenerateText(ctx context.Context, messages []Message, opts ...Option) (*ChatResponse, error)
}

// ChatResponse represents a complete response from a chat provider.
type ChatResponse struct {
	// Text is the concatenated plain text of the first candidate. It is
	// what the copy action copies and what the renderer parses as markdown.
	Text string `json:"text"`
	// FinishReason reports why generation stopped, when available.
	FinishReason string `json:"finishReason,omitempty"`
}
