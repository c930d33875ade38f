// Package mistral is a minimal client for the Mistral chat-completions API,
// used to generate a textual analysis of the tracked fitness data.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.mistral.ai"
	defaultModel   = "mistral-small-latest"
	defaultTimeout = 60 * time.Second
)

// Config holds the Mistral API connection details.
type Config struct {
	APIKey  string
	BaseURL string        // defaults to the public Mistral endpoint
	Model   string        // defaults to mistral-small-latest
	Timeout time.Duration // hard cap on one completion call, defaults to 60s
}

// Client calls the Mistral chat-completions endpoint. Calls are never
// retried; a slow upstream is cut off by the configured timeout.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

// APIError reports a non-success response from the Mistral API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mistral API returned status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new Mistral client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateAnalysis sends the serialized tracking data together with the
// caller's instruction and returns the generated text.
func (c *Client) GenerateAnalysis(ctx context.Context, payload []byte, instruction string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: instruction},
			{Role: "user", Content: string(payload)},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach mistral API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &APIError{StatusCode: resp.StatusCode, Body: fmt.Sprintf("undecodable response: %v", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: "response contained no choices"}
	}
	return parsed.Choices[0].Message.Content, nil
}
