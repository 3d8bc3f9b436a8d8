// Package translator holds the clients for the external translation backend.
// The service consumes them through its own narrow interface; these are the
// concrete implementations wired in main.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient calls a LibreTranslate-compatible backend. Every request carries
// the client timeout so a slow backend surfaces as an error instead of
// hanging the caller.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	Text   string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (c *HTTPClient) Translate(ctx context.Context, sourceLang, targetLang, text string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Text:   text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("marshal translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translation backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation backend returned status %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	return out.TranslatedText, nil
}

// Static is a deterministic translator for local runs and tests: it tags the
// text with the target language instead of calling anything. A configurable
// latency mimics real-world calls.
type Static struct {
	Latency time.Duration
}

func (s Static) Translate(_ context.Context, _, targetLang, text string) (string, error) {
	time.Sleep(s.Latency)
	return fmt.Sprintf("[%s] %s", targetLang, text), nil
}
