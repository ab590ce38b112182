// Command courserec is a local course and document recommendation tool.
package main

import (
	"fmt"
	"os"

	"github.com/theatilgan/courserec-cli/internal/adapters/driven/config/file"
	"github.com/theatilgan/courserec-cli/internal/adapters/driven/llm/ollama"
	"github.com/theatilgan/courserec-cli/internal/adapters/driven/llm/openai"
	"github.com/theatilgan/courserec-cli/internal/adapters/driven/storage/sqlite"
	"github.com/theatilgan/courserec-cli/internal/adapters/driving/cli"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
	"github.com/theatilgan/courserec-cli/internal/core/services"
	"github.com/theatilgan/courserec-cli/internal/extractors/filename"
	"github.com/theatilgan/courserec-cli/internal/extractors/pdf"
	"github.com/theatilgan/courserec-cli/internal/extractors/plaintext"
	"github.com/theatilgan/courserec-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := sqlite.NewStore(config.GetString("storage.data_dir"))
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	llm, err := buildLLM(config)
	if err != nil {
		return err
	}
	if llm != nil {
		defer llm.Close()
	}

	prompts, err := file.NewPromptStore(config.GetString("prompts.dir"))
	if err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}

	keywords := services.NewKeywordExtractor(llm)
	keywords.SetPromptStore(prompts)
	if minKw, maxKw := config.GetInt("keywords.min"), config.GetInt("keywords.max"); minKw > 0 || maxKw > 0 {
		keywords.SetBounds(minKw, maxKw)
	}

	pipeline := services.NewIngestionPipeline(store, keywords,
		pdf.New(),
		pdf.NewPoppler(),
		plaintext.New(),
		filename.New(),
	)

	modelName := "none (local fallback)"
	if llm != nil {
		modelName = llm.ModelName()
	}

	cli.SetServices(
		services.NewRecommendationEngine(keywords, store, store),
		pipeline,
		services.NewCatalogService(store, store),
		store,
		modelName,
	)

	return cli.Execute()
}

// buildLLM constructs the configured language backend. Provider "none"
// disables the backend entirely: keyword extraction then always uses the
// deterministic fallback.
func buildLLM(config driven.ConfigStore) (driven.LLMService, error) {
	provider := config.GetString("llm.provider")

	switch provider {
	case "", "ollama":
		return ollama.NewLLMService(ollama.LLMConfig{
			BaseURL: config.GetString("ollama.host"),
			Model:   config.GetString("ollama.model"),
		}), nil

	case "openai":
		svc, err := openai.NewLLMService(openai.LLMConfig{
			APIKey:  config.GetString("openai.api_key"),
			BaseURL: config.GetString("openai.base_url"),
			Model:   config.GetString("openai.model"),
		})
		if err != nil {
			return nil, fmt.Errorf("configuring openai backend: %w", err)
		}
		return svc, nil

	case "none":
		logger.Info("LLM backend disabled, using local keyword extraction")
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown llm.provider %q (expected ollama, openai or none)", provider)
	}
}
