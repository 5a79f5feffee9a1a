package llm

import (
	"context"
	"errors"

	"online-llm/pkg/gemini"
)

// GenerateComplete sends the prompt and options to the provider and blocks
// until the full text is available. Any provider failure comes back as a
// GenerationError; no partial result is returned and nothing is retried.
func (w *Wrapper) GenerateComplete(ctx context.Context, prompt string, opts Options) (string, error) {
	resp, err := w.client.GenerateContent(ctx, buildRequest(prompt, opts))
	if err != nil {
		w.l.Errorf(ctx, "generation failed for model %s: %v", w.client.Model(), err)
		return "", &GenerationError{Err: err}
	}
	return resp.Text(), nil
}

// GenerateStream requests a streaming generation and returns a channel of
// fragments in provider order. Empty fragments are skipped. The channel is
// closed when the provider ends the stream; a failure at start or mid-stream
// is delivered as a final chunk carrying a GenerationError, after every
// fragment produced before it. Re-invoking re-issues the request. To cancel,
// stop consuming and cancel ctx.
func (w *Wrapper) GenerateStream(ctx context.Context, prompt string, opts Options) <-chan StreamChunk {
	out := make(chan StreamChunk)

	go func() {
		defer close(out)

		err := w.client.StreamGenerateContent(ctx, buildRequest(prompt, opts), func(resp *gemini.GenerateResponse) error {
			text := resp.Text()
			if text == "" {
				// The provider emits frames without text around safety
				// metadata and finish reasons; the source behavior is to
				// drop them.
				return nil
			}
			select {
			case out <- StreamChunk{Text: text}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err == nil {
			return
		}
		if errors.Is(err, context.Canceled) {
			// Caller walked away; nobody is reading. Deadline errors are
			// NOT suppressed: a transport or edge timeout mid-stream is a
			// provider failure the consumer must see.
			return
		}

		w.l.Errorf(ctx, "stream failed for model %s: %v", w.client.Model(), err)
		select {
		case out <- StreamChunk{Err: &GenerationError{Err: err}}:
		case <-ctx.Done():
		}
	}()

	return out
}

// buildRequest assembles the provider request: a single user message plus
// the caller's options forwarded verbatim.
func buildRequest(prompt string, opts Options) *gemini.GenerateRequest {
	req := &gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
	}
	if len(opts) > 0 {
		req.GenerationConfig = map[string]any(opts)
	}
	return req
}
