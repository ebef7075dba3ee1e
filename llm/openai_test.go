package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadadapter/errs"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewOpenAIClient("test-key", "gpt-4o-mini", time.Second)
	c.baseURL = server.URL
	return c
}

func TestComplete(t *testing.T) {
	var captured chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-4o-mini-2024",
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Hola María"}},
			},
			"usage": map[string]int{"prompt_tokens": 12, "completion_tokens": 8},
		})
	})

	resp, err := client.Complete(context.Background(), "generate", "system", 0.7, 1000)
	require.NoError(t, err)

	assert.Equal(t, "Hola María", resp.Content)
	assert.Equal(t, 20, resp.TotalTokens())
	assert.Equal(t, "gpt-4o-mini-2024", resp.Model)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, 1000, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
}

func TestCompleteJSONEnforcesFormat(t *testing.T) {
	var captured chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-4o-mini",
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"ok":true}`}},
			},
		})
	})

	resp, err := client.CompleteJSON(context.Background(), "classify", "system", 0.2)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Content)

	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	assert.Contains(t, captured.Messages[0].Content, "Respond only with valid JSON")
}

func TestCompleteErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		})
		_, err := client.Complete(context.Background(), "p", "", 0.7, 100)
		var le *errs.LLMError
		require.ErrorAs(t, err, &le)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("empty choices", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"model": "m", "choices": []any{}})
		})
		_, err := client.Complete(context.Background(), "p", "", 0.7, 100)
		var le *errs.LLMError
		assert.ErrorAs(t, err, &le)
	})
}

func TestCountTokens(t *testing.T) {
	c := NewOpenAIClient("k", "m", 0)
	assert.Equal(t, 0, c.CountTokens(""))
	assert.Equal(t, 1, c.CountTokens("abc"))
	assert.Equal(t, 2, c.CountTokens("abcdefg"))
}
