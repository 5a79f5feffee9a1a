package gemini

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// streamScanBuffer bounds a single SSE frame; large candidates can exceed
// bufio.Scanner's 64KB default.
const streamScanBuffer = 1024 * 1024

// StreamGenerateContent sends a streaming generation request to the Gemini
// API and invokes fn once per SSE frame, in arrival order. It returns when
// the API closes the stream, when fn returns an error, or when the request
// fails.
func (g *geminiImpl) StreamGenerateContent(ctx context.Context, req *GenerateRequest, fn StreamFunc) error {
	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", g.apiURL, g.model, g.apiKey)

	resp, err := g.post(ctx, url, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 4096), streamScanBuffer)

	for scanner.Scan() {
		line := scanner.Text()

		// SSE frames carry the payload on "data: " lines; everything else
		// (blank keep-alives, comments) is skipped.
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}

		var chunk GenerateResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return fmt.Errorf("gemini: failed to decode stream chunk: %w", err)
		}

		if err := fn(&chunk); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("gemini: stream read error: %w", err)
	}

	return nil
}
