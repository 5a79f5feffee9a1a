package gemini

import "context"

// StreamFunc receives one streamed response frame. Returning an error
// stops consumption and is propagated to the StreamGenerateContent caller.
type StreamFunc func(resp *GenerateResponse) error

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a blocking generation request to the Gemini API
	GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// StreamGenerateContent sends a streaming generation request and invokes
	// fn once per response frame, in arrival order
	StreamGenerateContent(ctx context.Context, req *GenerateRequest, fn StreamFunc) error

	// ListModels returns all models the API advertises, in API order
	ListModels(ctx context.Context) ([]ModelInfo, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration.
// No network call is made here; the first request happens on use.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
