// Package cli provides the command-line interface for courserec.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driving"
	"github.com/theatilgan/courserec-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Injected once from main via SetServices.
var (
	recommendService driving.RecommenderService
	ingestService    driving.IngestService
	catalogService   driving.CatalogService
	corpusStore      driven.CorpusStore
	llmModelName     string
)

// verbose enables debug logging across all commands.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "courserec",
	Short: "Course and document recommendations from your own catalog",
	Long: `courserec matches free-form study questions against a local course
catalog and a corpus of ingested documents. Keyword extraction runs
against a local or remote language model, with a deterministic
fallback when no model is reachable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices injects the application services. Must be called before
// Execute.
func SetServices(
	recommender driving.RecommenderService,
	ingester driving.IngestService,
	catalog driving.CatalogService,
	store driven.CorpusStore,
	modelName string,
) {
	recommendService = recommender
	ingestService = ingester
	catalogService = catalog
	corpusStore = store
	llmModelName = modelName
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
