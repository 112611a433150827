package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-task-manager/pkg/gemini"
)

type capturedRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		MaxOutputTokens  int    `json:"maxOutputTokens"`
		ResponseMimeType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

func TestClient_GenerateContent(t *testing.T) {
	var captured capturedRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
			return
		}

		if r.URL.Path != "/models/"+gemini.DefaultModel+":generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		captured = capturedRequest{}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if captured.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "{\"Title\":\"Call mom\"}" }
						],
						"role": "model"
					}
				}
			],
			"usageMetadata": {"promptTokenCount": 80, "candidatesTokenCount": 9, "totalTokenCount": 89}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "you are a parser"}}},
			Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "Call mom"}}}},
			MaxTokens:         500,
			JSONMode:          true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != `{"Title":"Call mom"}` {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.Usage.TotalTokens != 89 {
			t.Errorf("TotalTokens = %d, want 89", resp.Usage.TotalTokens)
		}

		if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "you are a parser" {
			t.Errorf("system instruction not sent separately: %+v", captured.SystemInstruction)
		}
		if captured.Contents[0].Role != "user" {
			t.Errorf("role = %s, want user", captured.Contents[0].Role)
		}
		if captured.GenerationConfig == nil || captured.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("JSON mode not requested: %+v", captured.GenerationConfig)
		}
		if captured.GenerationConfig.MaxOutputTokens != 500 {
			t.Errorf("maxOutputTokens = %d, want 500", captured.GenerationConfig.MaxOutputTokens)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.HTTPStatusCode() != http.StatusInternalServerError {
			t.Fatalf("expected 500 APIError, got %v", err)
		}
	})

	t.Run("Invalid key", func(t *testing.T) {
		bad, _ := gemini.New(gemini.Config{APIKey: "nope", APIURL: ts.URL})
		_, err := bad.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "API key not valid" {
			t.Fatalf("expected 403 APIError with message, got %v", err)
		}
	})

	t.Run("Missing key", func(t *testing.T) {
		if _, err := gemini.New(gemini.Config{}); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
