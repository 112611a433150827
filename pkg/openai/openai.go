package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type openaiImpl struct {
	apiKey          string
	model           string
	baseURL         string
	legacyMaxTokens bool
	client          *http.Client
}

func newOpenAIImpl(cfg Config) *openaiImpl {
	return &openaiImpl{
		apiKey:          cfg.APIKey,
		model:           cfg.Model,
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		legacyMaxTokens: cfg.LegacyMaxTokens,
		client:          cfg.HTTPClient,
	}
}

// Model returns the model being used
func (c *openaiImpl) Model() string {
	return c.model
}

// GenerateContent sends a request to the chat completions endpoint
func (c *openaiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body := *req
	if body.Model == "" {
		body.Model = c.model
	}
	if c.legacyMaxTokens && body.MaxCompletionTokens > 0 {
		body.MaxTokens = body.MaxCompletionTokens
		body.MaxCompletionTokens = 0
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(respBody)
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("openai: failed to parse response: %w", err)
	}

	return &result, nil
}

// JSONObjectFormat is the response_format value for JSON mode.
func JSONObjectFormat() *ResponseFormat {
	return &ResponseFormat{Type: responseFormatJSONObject}
}
