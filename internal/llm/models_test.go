package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListAvailableModels(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{
			"models": [
				{"name": "models/model-a", "supportedGenerationMethods": ["generateContent"]},
				{"name": "models/model-b", "supportedGenerationMethods": ["embedContent"]},
				{"name": "models/model-c", "supportedGenerationMethods": ["countTokens", "generateContent"]}
			]
		}`)
	}))
	defer ts.Close()

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")

		_, err := ListAvailableModels(context.Background(), Config{APIURL: ts.URL})
		if !IsConfigurationError(err) {
			t.Fatalf("expected ConfigurationError, got: %v", err)
		}
	})

	t.Run("filters to generation-capable models in order", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "test-api-key")

		names, err := ListAvailableModels(context.Background(), Config{APIURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"models/model-a", "models/model-c"}
		if len(names) != len(want) {
			t.Fatalf("expected %v, got %v", want, names)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("model %d: expected %q, got %q", i, want[i], names[i])
			}
		}
	})

	t.Run("provider failure becomes GenerationError", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "wrong-key")

		_, err := ListAvailableModels(context.Background(), Config{APIURL: ts.URL})
		if !IsGenerationError(err) {
			t.Fatalf("expected GenerationError, got: %v", err)
		}
	})
}
