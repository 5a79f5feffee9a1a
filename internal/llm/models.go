package llm

import (
	"context"
	"os"

	"online-llm/pkg/gemini"
)

// ListAvailableModels queries the provider for all models and returns, in
// provider order, the names of those that support content generation. It is
// independent of any wrapper instance and reads the API key from the
// environment itself.
func ListAvailableModels(ctx context.Context, cfg Config) ([]string, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, &ConfigurationError{Message: EnvAPIKey + " not found in environment variables"}
	}

	client, err := gemini.New(gemini.Config{
		APIKey:     apiKey,
		Model:      cfg.Model,
		APIURL:     cfg.APIURL,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, &ConfigurationError{Message: err.Error()}
	}

	models, err := client.ListModels(ctx)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	var names []string
	for _, m := range models {
		if m.SupportsGeneration() {
			names = append(names, m.Name)
		}
	}
	return names, nil
}
