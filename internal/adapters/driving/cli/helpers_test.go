package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theatilgan/courserec-cli/internal/adapters/driven/storage/memory"
	"github.com/theatilgan/courserec-cli/internal/core/services"
	"github.com/theatilgan/courserec-cli/internal/extractors/plaintext"
)

// setupTestServices wires the commands to an in-memory corpus with the
// sample catalog and a backend-free keyword extractor. Returns a cleanup
// that restores the previous service wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldRecommend := recommendService
	oldIngest := ingestService
	oldCatalog := catalogService
	oldStore := corpusStore
	oldModel := llmModelName

	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background()))

	keywords := services.NewKeywordExtractor(nil)
	SetServices(
		services.NewRecommendationEngine(keywords, store, store),
		services.NewIngestionPipeline(store, keywords, plaintext.New()),
		services.NewCatalogService(store, store),
		store,
		"test-model",
	)

	return func() {
		recommendService = oldRecommend
		ingestService = oldIngest
		catalogService = oldCatalog
		corpusStore = oldStore
		llmModelName = oldModel
	}
}
