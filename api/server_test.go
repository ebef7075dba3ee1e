package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"leadadapter/cache"
	"leadadapter/llm"
	"leadadapter/pipeline"
	"leadadapter/scoring"
)

// stubLLM returns fixed stage outputs: valid JSON for the structured
// stages and a high-quality message for the generation stage.
type stubLLM struct{}

func (stubLLM) Complete(_ context.Context, _, _ string, _ float64, _ int) (llm.Response, error) {
	return llm.Response{
		Content:        "Hola María, vi que llevas 5 años liderando TechCorp. Podemos ayudar a optimizar tu infraestructura. ¿Hablamos?",
		PromptTokens:   30,
		ResponseTokens: 40,
		Model:          "gpt-4o-mini",
	}, nil
}

func (stubLLM) CompleteJSON(_ context.Context, prompt, _ string, _ float64) (llm.Response, error) {
	content := `{"role_type":"executive","confidence":0.9}`
	if strings.Contains(prompt, "pain points") {
		content = `{"pain_points":["costos altos"],"hooks":[],"talking_points":[]}`
	}
	return llm.Response{Content: content, PromptTokens: 10, ResponseTokens: 10, Model: "gpt-4o-mini"}, nil
}

func (stubLLM) CountTokens(text string) int { return len(text) / 4 }

func newTestServer(t *testing.T, limiter *rate.Limiter) *Server {
	t.Helper()
	scorer, err := scoring.NewScorer()
	require.NoError(t, err)

	logger := zap.NewNop()
	runner := pipeline.NewChainRunner(stubLLM{}, logger)
	gate := pipeline.NewQualityGate(runner, scorer, 6.0, 3, logger)
	generator := pipeline.NewGenerator(gate, cache.NewMemoryStore(), time.Hour, logger)
	return NewServer(":0", generator, limiter, logger)
}

const validRequest = `{
	"channel": "linkedin",
	"sequence_step": "first_contact",
	"lead": {"first_name": "María", "job_title": "CTO", "company_name": "TechCorp"},
	"sender": {"name": "Carlos", "company_name": "CloudSolutions"},
	"playbook": {"communication_style": "directo", "products": [{"name": "CloudSync"}]}
}`

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, Version, body["version"])
}

func TestGenerateEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/generate", strings.NewReader(validRequest))
		s.http.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp pipeline.GenerateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.MessageID)
		assert.True(t, resp.Quality.PassesThreshold)
		assert.Equal(t, "mutual_connection", resp.StrategyUsed)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/generate", strings.NewReader("{broken"))
		s.http.Handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid channel maps to INVALID_LEAD", func(t *testing.T) {
		s := newTestServer(t, nil)
		body := strings.Replace(validRequest, `"linkedin"`, `"sms"`, 1)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/generate", strings.NewReader(body))
		s.http.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var errBody map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
		assert.Equal(t, "INVALID_LEAD", errBody["code"])
	})

	t.Run("invalid playbook maps to INVALID_PLAYBOOK", func(t *testing.T) {
		s := newTestServer(t, nil)
		body := strings.Replace(validRequest, `"communication_style": "directo"`, `"communication_style": ""`, 1)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/generate", strings.NewReader(body))
		s.http.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var errBody map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
		assert.Equal(t, "INVALID_PLAYBOOK", errBody["code"])
	})
}

func TestRateLimiting(t *testing.T) {
	// One request allowed, then a very slow refill.
	s := newTestServer(t, rate.NewLimiter(rate.Every(time.Hour), 1))

	first := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
