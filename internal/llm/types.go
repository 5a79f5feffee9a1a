package llm

import "net/http"

// EnvAPIKey is the environment variable the wrapper reads its API key from.
const EnvAPIKey = "GEMINI_API_KEY"

// Options carries optional generation parameters (temperature,
// maxOutputTokens, ...). They are passed to the provider verbatim as the
// request generationConfig; the wrapper validates nothing.
type Options map[string]any

// Config holds wrapper configuration. The API key is never part of it;
// the key is read from the environment at construction time.
type Config struct {
	// Model is the Gemini model to bind. Empty selects the default.
	Model string

	// APIURL overrides the API endpoint. Intended for tests.
	APIURL string

	// HTTPClient overrides the transport. Intended for tests.
	HTTPClient *http.Client
}

// StreamChunk is one element of a streamed generation. Exactly one of
// Text or Err is set; a chunk with Err set is always the last one
// delivered before the channel closes.
type StreamChunk struct {
	Text string
	Err  error
}
