package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ListModels queries the models endpoint and returns every model the API
// advertises, in API order, following pagination to the end.
func (g *geminiImpl) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var models []ModelInfo
	pageToken := ""

	for {
		page, err := g.listModelsPage(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		models = append(models, page.Models...)

		if page.NextPageToken == "" {
			return models, nil
		}
		pageToken = page.NextPageToken
	}
}

func (g *geminiImpl) listModelsPage(ctx context.Context, pageToken string) (*listModelsResponse, error) {
	query := url.Values{}
	query.Set("key", g.apiKey)
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}
	endpoint := fmt.Sprintf("%s/models?%s", g.apiURL, query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var page listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode models response: %w", err)
	}

	return &page, nil
}
