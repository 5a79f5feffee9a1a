package gemini_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"online-llm/pkg/gemini"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := gemini.Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for missing API key")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := gemini.Config{APIKey: "test-api-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != gemini.DefaultModel {
			t.Errorf("expected default model %q, got %q", gemini.DefaultModel, cfg.Model)
		}
		if cfg.APIURL != gemini.DefaultAPIURL {
			t.Errorf("expected default API URL %q, got %q", gemini.DefaultAPIURL, cfg.APIURL)
		}
		if cfg.HTTPClient == nil {
			t.Errorf("expected default HTTP client")
		}
	})

	t.Run("explicit model kept", func(t *testing.T) {
		cfg := gemini.Config{APIKey: "test-api-key", Model: "gemini-1.5-pro"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != "gemini-1.5-pro" {
			t.Errorf("explicit model overridden: %q", cfg.Model)
		}
	})
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"backend exploded"}}`))
			return
		}

		// Echo back the received temperature so passthrough is observable.
		temp := 0.0
		if req.GenerationConfig != nil {
			if v, ok := req.GenerationConfig["temperature"].(float64); ok {
				temp = v
			}
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{
			"candidates": [
				{
					"content": {
						"parts": [{"text": "mocked response temp=%.1f"}],
						"role": "model"
					}
				}
			]
		}`, temp)
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("success flow", func(t *testing.T) {
		req := &gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}},
			},
			GenerationConfig: map[string]any{"temperature": 0.5},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resp.Text(); got != "mocked response temp=0.5" {
			t.Errorf("unexpected response text: %q", got)
		}
	})

	t.Run("server error flow", func(t *testing.T) {
		req := &gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
		if !strings.Contains(err.Error(), "backend exploded") {
			t.Errorf("error should carry the API body, got: %v", err)
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		resp := &gemini.GenerateResponse{}
		if got := resp.Text(); got != "" {
			t.Errorf("expected empty text, got %q", got)
		}
	})
}

func TestGenerateResponse_Text(t *testing.T) {
	resp := &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{
				Role:  "model",
				Parts: []gemini.Part{{Text: "Hello"}, {Text: ", "}, {Text: "world"}},
			}},
			{Content: gemini.Content{
				Parts: []gemini.Part{{Text: "second candidate ignored"}},
			}},
		},
	}
	if got := resp.Text(); got != "Hello, world" {
		t.Errorf("expected concatenated first-candidate text, got %q", got)
	}
}
