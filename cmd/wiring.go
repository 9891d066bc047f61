package cmd

import (
	"context"
	"fmt"
	"net/http"

	"sales-assistant/internal/config"
	"sales-assistant/internal/domain/analysis"
	"sales-assistant/internal/domain/interfaces/repository"
	"sales-assistant/internal/infra/logger"
	"sales-assistant/internal/infra/provider"
	infrarepo "sales-assistant/internal/infra/repository"
	client "sales-assistant/internal/pkg"
)

func analysisOptions(c config.Config) analysis.Options {
	return analysis.Options{
		PatternWindow:      c.PatternWindow,
		ChangeWindow:       c.ChangeWindow,
		ExampleWindow:      c.ExampleWindow,
		RenderedExamples:   c.RenderedExamples,
		LengthThresholdPct: c.LengthThresholdPct,
		SignerName:         c.SignerName,
	}
}

// openEditStore returns the configured edit store and a cleanup func.
func openEditStore(ctx context.Context, c config.Config, log *logger.Logger) (repository.EditRecordRepository, func(), error) {
	if c.EditStore != config.StoreMongo {
		log.Info(fmt.Sprintf("Using JSON file edit store in %s", c.DataDir))
		return infrarepo.NewJSONFileRepository(c.DataDir, c.MaxStoredEdits, log), func() {}, nil
	}

	mongoClient, err := client.MongoClient(ctx, c.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	repo := infrarepo.NewMongoRepository(mongoClient.Database(c.MongoDatabase), c.MaxStoredEdits)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn(fmt.Sprintf("Failed to create edit store indexes: %v", err))
	}

	log.Info(fmt.Sprintf("Using MongoDB edit store in database %s", c.MongoDatabase))
	cleanup := func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error(fmt.Sprintf("Failed to disconnect MongoDB: %v", err))
		}
	}
	return repo, cleanup, nil
}

func newLLMProvider(c config.Config, log *logger.Logger, httpClient *http.Client) provider.ILLMProvider {
	if c.LLMProvider == config.ProviderOpenAI {
		return provider.NewOpenAIProvider(log, httpClient, provider.OpenAIConfig{
			APIKey:    c.OpenAIAPIKey,
			BaseURL:   c.OpenAIBaseURL,
			Model:     c.OpenAIModel,
			MaxTokens: c.MaxTokens,
		})
	}
	return provider.NewAnthropicProvider(log, httpClient, provider.AnthropicConfig{
		APIKey:    c.AnthropicAPIKey,
		BaseURL:   c.AnthropicBaseURL,
		Version:   c.AnthropicVersion,
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
	})
}
