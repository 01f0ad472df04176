// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// ChatService provides synchronous chat completions. This is the single
// pluggable model interface the core consumes; exactly one implementation
// (OpenAI-compatible HTTP) is in scope.
type ChatService interface {
	// Chat sends an ordered list of messages and returns the full text of
	// one model completion. Blocking; no internal retry or backoff.
	Chat(ctx context.Context, messages []ChatMessage) (string, error)

	// ModelName returns the name of the chat model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}
