package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"online-llm/internal/llm"
	"online-llm/pkg/log"
	"online-llm/pkg/response"
)

// mockGenerator implements Generator for handler tests.
type mockGenerator struct {
	text   string
	err    error
	chunks []llm.StreamChunk
}

func (m *mockGenerator) GenerateComplete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	return m.text, m.err
}

func (m *mockGenerator) GenerateStream(ctx context.Context, prompt string, opts llm.Options) <-chan llm.StreamChunk {
	out := make(chan llm.StreamChunk)
	go func() {
		defer close(out)
		for _, chunk := range m.chunks {
			out <- chunk
		}
	}()
	return out
}

func (m *mockGenerator) Model() string { return "gemini-test" }

func newTestServer(t *testing.T, gen Generator, lister ModelLister) *HTTPServer {
	t.Helper()
	if lister == nil {
		lister = func(ctx context.Context) ([]string, error) { return nil, nil }
	}
	srv, err := New(log.NewNoopLogger(), Config{
		Logger:     log.NewNoopLogger(),
		Port:       8080,
		Mode:       gin.TestMode,
		Generator:  gen,
		ListModels: lister,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func TestNew_Validate(t *testing.T) {
	_, err := New(log.NewNoopLogger(), Config{
		Logger: log.NewNoopLogger(),
		Port:   8080,
		Mode:   gin.TestMode,
	})
	if err == nil {
		t.Fatalf("expected error for missing generator")
	}
}

func TestGenerate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newTestServer(t, &mockGenerator{text: "Hello"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate",
			strings.NewReader(`{"prompt":"Hi","options":{"temperature":0.2}}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		data := resp.Data.(map[string]interface{})
		if data["text"] != "Hello" {
			t.Errorf("unexpected text: %v", data["text"])
		}
		if data["model"] != "gemini-test" {
			t.Errorf("unexpected model: %v", data["model"])
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		srv := newTestServer(t, &mockGenerator{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		srv := newTestServer(t, &mockGenerator{err: errors.New("quota exceeded")}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{"prompt":"Hi"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "quota exceeded") {
			t.Errorf("provider message should be surfaced, got: %s", w.Body.String())
		}
	})
}

func TestGenerateStream(t *testing.T) {
	t.Run("fragments then done", func(t *testing.T) {
		srv := newTestServer(t, &mockGenerator{chunks: []llm.StreamChunk{
			{Text: "Hel"},
			{Text: "lo"},
		}}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/stream", strings.NewReader(`{"prompt":"Hi"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/event-stream") {
			t.Errorf("expected SSE content type, got %q", got)
		}

		body := w.Body.String()
		iHel := strings.Index(body, "Hel")
		iLo := strings.Index(body, "lo")
		if iHel == -1 || iLo == -1 || iHel > iLo {
			t.Errorf("fragments missing or out of order: %s", body)
		}
		if !strings.Contains(body, "event:done") && !strings.Contains(body, "event: done") {
			t.Errorf("expected done event, got: %s", body)
		}
	})

	t.Run("mid-stream failure after fragments", func(t *testing.T) {
		srv := newTestServer(t, &mockGenerator{chunks: []llm.StreamChunk{
			{Text: "partial"},
			{Err: errors.New("connection reset")},
		}}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/stream", strings.NewReader(`{"prompt":"Hi"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)

		body := w.Body.String()
		if !strings.Contains(body, "partial") {
			t.Errorf("fragments before the failure must be relayed, got: %s", body)
		}
		if !strings.Contains(body, "connection reset") {
			t.Errorf("expected error event, got: %s", body)
		}
	})
}

func TestModels(t *testing.T) {
	calls := 0
	lister := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"models/a", "models/c"}, nil
	}
	srv := newTestServer(t, &mockGenerator{}, lister)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "models/a") {
			t.Errorf("expected model names in body: %s", w.Body.String())
		}
	}

	if calls != 1 {
		t.Errorf("expected the listing cached after the first call, got %d calls", calls)
	}
}

func TestModels_ProviderFailure(t *testing.T) {
	lister := func(ctx context.Context) ([]string, error) {
		return nil, errors.New("key not valid")
	}
	srv := newTestServer(t, &mockGenerator{}, lister)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}
