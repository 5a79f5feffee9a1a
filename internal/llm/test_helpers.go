package llm

import (
	"context"

	"online-llm/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Gemini client for testing
type mockGeminiClient struct {
	model    string
	response *gemini.GenerateResponse
	err      error

	// streamed frames are replayed in order; streamErr is returned after them
	frames    []*gemini.GenerateResponse
	streamErr error

	models    []gemini.ModelInfo
	modelsErr error
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return m.response, m.err
}

func (m *mockGeminiClient) StreamGenerateContent(ctx context.Context, req *gemini.GenerateRequest, fn gemini.StreamFunc) error {
	for _, frame := range m.frames {
		if err := fn(frame); err != nil {
			return err
		}
	}
	return m.streamErr
}

func (m *mockGeminiClient) ListModels(ctx context.Context) ([]gemini.ModelInfo, error) {
	return m.models, m.modelsErr
}

func (m *mockGeminiClient) Model() string {
	if m.model == "" {
		return "gemini-test"
	}
	return m.model
}

// textFrame builds a single-part streamed response frame.
func textFrame(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

// frames builds a sequence of streamed response frames.
func frames(texts ...string) []*gemini.GenerateResponse {
	out := make([]*gemini.GenerateResponse, 0, len(texts))
	for _, text := range texts {
		out = append(out, textFrame(text))
	}
	return out
}
