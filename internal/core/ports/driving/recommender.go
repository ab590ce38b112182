package driving

import (
	"context"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

// RecommenderService answers "given this text, which catalog items match?".
type RecommenderService interface {
	// Recommend derives keywords from the user text and matches them
	// against the corpus selected by target. Empty or blank input yields
	// an empty set; no error is returned for "nothing matched".
	Recommend(ctx context.Context, userText string, target domain.Target) (domain.RecommendationSet, error)

	// TestConnection probes the language-understanding backend.
	// False means recommendations will use the deterministic fallback.
	TestConnection(ctx context.Context) bool
}

// KeywordService turns free text into a bounded ordered keyword set.
type KeywordService interface {
	// Extract never fails: backend errors trigger the deterministic
	// fallback, and the worst case is an empty slice.
	Extract(ctx context.Context, text string) []string

	// TestConnection sends a fixed probe through the primary path and
	// reports whether a well-formed reply came back.
	TestConnection(ctx context.Context) bool
}
