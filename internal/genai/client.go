// Package genai is the generative content collaborator: it fabricates pet
// attributes and simulated chat lines by calling a Gemini-style
// generateContent endpoint. Responses are validated and coerced at this
// boundary before they reach core state; every failure path terminates in a
// fixed fallback value, never an error surfaced to the state machine.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default client tuning
const (
	DefaultTimeout = 12 * time.Second

	// ChatCacheSize bounds the expirable LRU of recent chat batches.
	ChatCacheSize = 64
	// ChatCacheTTL is how long a generated chat batch is reused for the same
	// context summary before a fresh call is made.
	ChatCacheTTL = 30 * time.Second
)

// Client calls the generative endpoint. A zero BaseURL or APIKey puts the
// client in local mode: pets are sampled locally and chat falls back to the
// fixed system line.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	rnd        func() float64

	chatCache *chatCache
}

// NewClient creates a generative content client.
func NewClient(baseURL, apiKey, model string, rnd func() float64) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		rnd:        rnd,
		chatCache:  newChatCache(ChatCacheSize, ChatCacheTTL),
	}
}

// remoteEnabled reports whether the client can reach a real endpoint.
func (c *Client) remoteEnabled() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// generateContent request/response wire types (Gemini REST shape).

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate posts a prompt and returns the raw text of the first candidate.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("generate call returned %d: %s", resp.StatusCode, body)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
