package llm

import (
	"os"

	"online-llm/pkg/gemini"
	pkgLog "online-llm/pkg/log"
)

// Wrapper binds one Gemini client handle to one model name for its
// lifetime. It holds no other state: every call is a one-shot
// request/response or request/stream. Instances do not share anything,
// so concurrent use of separate instances is safe by construction.
type Wrapper struct {
	l      pkgLog.Logger
	client gemini.IGemini
}

// New creates a wrapper for the given configuration. The API key is read
// from GEMINI_API_KEY; a missing or empty key is a ConfigurationError.
// No network call happens here.
func New(l pkgLog.Logger, cfg Config) (*Wrapper, error) {
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

	return &Wrapper{l: l, client: client}, nil
}

// NewWithClient creates a wrapper around an existing client. Used by
// tests and by callers that manage their own client construction.
func NewWithClient(l pkgLog.Logger, client gemini.IGemini) *Wrapper {
	return &Wrapper{l: l, client: client}
}

// Model returns the model name the wrapper is bound to.
func (w *Wrapper) Model() string {
	return w.client.Model()
}
