package llm

import (
	"errors"
	"fmt"
)

// ConfigurationError reports that the wrapper could not be configured,
// i.e. the API key is missing from the environment. It is fatal for the
// call that raised it and never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("llm: configuration error: %s", e.Message)
}

// GenerationError wraps any failure surfaced by the provider during
// content generation or model listing. The provider's description is
// preserved verbatim; no transient/permanent distinction is made.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("llm: generation error: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsGenerationError reports whether err is a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
