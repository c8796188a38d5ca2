package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/brand-playground/internal/domain/ai"
	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

type captured struct {
	Model               string          `json:"model"`
	MaxTokens           int             `json:"max_tokens"`
	MaxCompletionTokens int             `json:"max_completion_tokens"`
	ResponseFormat      json.RawMessage `json:"response_format"`
	Messages            []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func fakeServer(t *testing.T, status int, content string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`))
			return
		}
		resp := map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateObject_SendsJSONSchema(t *testing.T) {
	var got captured
	srv := fakeServer(t, http.StatusOK, `{"brandOverview":"x"}`, &got)
	c := NewClientWithBaseURL("test-key", srv.URL+"/v1", "")

	out, err := c.GenerateObject(context.Background(), ai.ObjectRequest{
		Prompt:     "analyze acme",
		SchemaName: analysis.SchemaName,
		Schema:     analysis.Schema(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"brandOverview":"x"}`, string(out))

	assert.Equal(t, defaultModel, got.Model)
	assert.Equal(t, defaultMaxTokens, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "analyze acme", got.Messages[0].Content)

	var rf struct {
		Type       string `json:"type"`
		JSONSchema struct {
			Name   string         `json:"name"`
			Schema map[string]any `json:"schema"`
		} `json:"json_schema"`
	}
	require.NoError(t, json.Unmarshal(got.ResponseFormat, &rf))
	assert.Equal(t, "json_schema", rf.Type)
	assert.Equal(t, "brand_analysis", rf.JSONSchema.Name)
	assert.Equal(t, "object", rf.JSONSchema.Schema["type"])
}

func TestGenerateText_ModelAndTokens(t *testing.T) {
	var got captured
	srv := fakeServer(t, http.StatusOK, "Focus on LinkedIn.", &got)
	c := NewClientWithBaseURL("test-key", srv.URL+"/v1", "gpt-4o")

	out, err := c.GenerateText(context.Background(), ai.TextRequest{Prompt: "q", Model: "gpt-4o-mini", MaxTokens: 500})
	require.NoError(t, err)
	assert.Equal(t, "Focus on LinkedIn.", out)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	assert.Zero(t, got.MaxCompletionTokens)
	assert.Empty(t, got.ResponseFormat)
}

func TestGenerateText_ReasoningModelUsesCompletionTokens(t *testing.T) {
	var got captured
	srv := fakeServer(t, http.StatusOK, "ok", &got)
	c := NewClientWithBaseURL("test-key", srv.URL+"/v1", "")

	_, err := c.GenerateText(context.Background(), ai.TextRequest{Prompt: "q", Model: "o3-mini", MaxTokens: 500})
	require.NoError(t, err)
	assert.Equal(t, 500, got.MaxCompletionTokens)
	assert.Zero(t, got.MaxTokens)
}

func TestErrors(t *testing.T) {
	srv := fakeServer(t, http.StatusTooManyRequests, "", nil)
	c := NewClientWithBaseURL("test-key", srv.URL+"/v1", "")
	_, err := c.GenerateText(context.Background(), ai.TextRequest{Prompt: "q"})
	assert.ErrorIs(t, err, ai.ErrQuotaExceeded)

	empty := fakeServer(t, http.StatusOK, "  ", nil)
	c = NewClientWithBaseURL("test-key", empty.URL+"/v1", "")
	_, err = c.GenerateObject(context.Background(), ai.ObjectRequest{Prompt: "q", Schema: analysis.Schema()})
	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}
