// Package gateway forwards tutoring questions to the Gemini generateContent API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/khlau/dsenotes/internal/apperr"
	"github.com/khlau/dsenotes/internal/models"
)

// DefaultBaseURL is the production Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// GenerationConfig carries the fixed sampling parameters sent with every
// request. There is one non-streaming completion per question and no
// conversation memory across calls.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// DefaultGenerationConfig returns the sampling parameters used by the app.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// AskInput is one ephemeral question. SubjectLabel, Context and
// UploadedContent are all optional; an empty Question is passed through
// unchanged (the API layer validates it).
type AskInput struct {
	Question        string
	SubjectLabel    string
	Context         string
	UploadedContent string
}

// Client is a stateless Gemini REST client.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	config  GenerationConfig
	httpc   *http.Client
}

// NewClient creates a Client. An empty apiKey yields a disabled client; the
// ask endpoint stays mounted but reports the service unavailable. No request
// timeout is set, so a slow provider stalls that request until the caller's
// context is cancelled.
func NewClient(apiKey, model, baseURL string, config GenerationConfig) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		config:  config,
		httpc:   &http.Client{},
	}
}

// Enabled reports whether a provider credential is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Ask assembles the tutoring prompt, requests a single completion, and
// returns the raw answer text. Every provider failure, whatever its cause,
// surfaces as apperr.ErrGatewayUnavailable.
func (c *Client) Ask(ctx context.Context, in AskInput) (models.Answer, error) {
	if !c.Enabled() {
		return models.Answer{}, fmt.Errorf("%w: no API key configured", apperr.ErrGatewayUnavailable)
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: BuildPrompt(in)}}, Role: "user"},
		},
		GenerationConfig: &c.config,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return models.Answer{}, fmt.Errorf("%w: marshal request: %v", apperr.ErrGatewayUnavailable, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.Answer{}, fmt.Errorf("%w: build request: %v", apperr.ErrGatewayUnavailable, err)
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return models.Answer{}, fmt.Errorf("%w: %v", apperr.ErrGatewayUnavailable, err)
	}
	defer func() { _ = res.Body.Close() }()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return models.Answer{}, fmt.Errorf("%w: read response: %v", apperr.ErrGatewayUnavailable, err)
	}
	if res.StatusCode != http.StatusOK {
		return models.Answer{}, fmt.Errorf("%w: status %d", apperr.ErrGatewayUnavailable, res.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return models.Answer{}, fmt.Errorf("%w: decode response: %v", apperr.ErrGatewayUnavailable, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return models.Answer{}, fmt.Errorf("%w: empty completion", apperr.ErrGatewayUnavailable)
	}

	return models.Answer{
		Text:      parsed.Candidates[0].Content.Parts[0].Text,
		Timestamp: time.Now().UTC(),
	}, nil
}
