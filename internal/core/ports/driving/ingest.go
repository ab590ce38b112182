package driving

import (
	"context"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

// IngestService turns uploaded documents into searchable catalog entries.
type IngestService interface {
	// Ingest processes a single document and reports success. Failures
	// are logged and absorbed; no error escapes to the caller.
	Ingest(ctx context.Context, path string) bool

	// IngestAll processes each path independently, strictly in input
	// order. One failure never aborts the batch; the result maps each
	// filename to its outcome.
	IngestAll(ctx context.Context, paths []string) map[string]bool

	// Statistics summarizes the analysis state of the persisted corpus.
	Statistics(ctx context.Context) (domain.Statistics, error)
}
