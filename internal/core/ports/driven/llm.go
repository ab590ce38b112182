package driven

import "context"

// LLMService is the language-understanding backend used for keyword
// extraction. This is an optional service - when nil, keyword extraction
// degrades to the deterministic frequency-based fallback.
//
// Implementations may include:
//   - Ollama (local models)
//   - OpenAI (GPT-4o family)
type LLMService interface {
	// Chat sends a conversation to the backend and returns the reply text.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	// Used for health checks, never on the extraction path.
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

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
