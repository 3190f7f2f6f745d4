// Package translate implements the translation provider on top of the
// Google Translate v2 REST API.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://translation.googleapis.com/language/translate/v2"

// Client calls the Google Translate v2 API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client with the given API key.
func NewClient(apiKey string) *Client {
	return NewClientWithURL(defaultBaseURL, apiKey)
}

// NewClientWithURL constructs a client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate returns text translated into targetLang. Any failure, including
// a malformed response, is an error; the caller decides the fallback.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	payload, err := json.Marshal(translateRequest{Q: text, Target: targetLang, Format: "text"})
	if err != nil {
		return "", fmt.Errorf("marshaling translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?key="+c.apiKey, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate returned status %d", resp.StatusCode)
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding translate response: %w", err)
	}

	if len(decoded.Data.Translations) == 0 || decoded.Data.Translations[0].TranslatedText == "" {
		return "", errors.New("translate response carried no translation")
	}

	return decoded.Data.Translations[0].TranslatedText, nil
}
