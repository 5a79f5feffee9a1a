package gemini

import "time"

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-1.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout. It covers the
	// whole response body, so it must outlast any edge request timeout
	// or streamed bodies get cut off by the transport instead.
	DefaultTimeout = 2 * time.Minute

	// MethodGenerateContent is the generation method a model must advertise
	// in supportedGenerationMethods to accept generateContent requests.
	MethodGenerateContent = "generateContent"
)
