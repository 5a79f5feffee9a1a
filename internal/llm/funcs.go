package llm

import (
	"context"

	pkgLog "online-llm/pkg/log"
)

// GetCompleteResponse constructs a wrapper for cfg and returns one complete
// response for prompt. Pure pass-through; it holds no state of its own.
func GetCompleteResponse(ctx context.Context, prompt string, cfg Config, opts Options) (string, error) {
	w, err := New(pkgLog.NewNoopLogger(), cfg)
	if err != nil {
		return "", err
	}
	return w.GenerateComplete(ctx, prompt, opts)
}

// GetStreamResponse constructs a wrapper for cfg and returns the fragment
// stream for prompt. Pure pass-through; construction failures are returned
// directly, stream failures arrive on the channel.
func GetStreamResponse(ctx context.Context, prompt string, cfg Config, opts Options) (<-chan StreamChunk, error) {
	w, err := New(pkgLog.NewNoopLogger(), cfg)
	if err != nil {
		return nil, err
	}
	return w.GenerateStream(ctx, prompt, opts), nil
}
