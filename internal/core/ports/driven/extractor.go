package driven

import "context"

// TextExtractor is one strategy of the text-extraction cascade.
// Strategies are attempted in priority order until one yields non-empty
// content; the filename-derived fallback never fails.
type TextExtractor interface {
	// Name identifies the strategy in logs.
	Name() string

	// SupportedExtensions returns the lower-case file extensions this
	// extractor handles (including the dot). Empty slice means all files.
	SupportedExtensions() []string

	// Priority returns the selection priority (higher = preferred).
	// Native-layer extractors should return 90-100.
	// Secondary tooling should return 50-89.
	// The terminal filename fallback returns 1-9.
	Priority() int

	// Extract returns the raw text content of the file at path.
	// Returns domain.ErrNoExtractableText when the strategy ran but
	// produced nothing, so the cascade can fall through.
	Extract(ctx context.Context, path string) (string, error)
}
