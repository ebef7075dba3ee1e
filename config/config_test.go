package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 6.0, cfg.QualityThreshold)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("QUALITY_THRESHOLD", "7.5")
	t.Setenv("CACHE_TTL_SECONDS", "120")
	t.Setenv("MAX_GENERATION_ATTEMPTS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 7.5, cfg.QualityThreshold)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.MaxAttempts)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero attempts", func(t *testing.T) {
		t.Setenv("MAX_GENERATION_ATTEMPTS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "MAX_GENERATION_ATTEMPTS")
	})

	t.Run("negative threshold", func(t *testing.T) {
		t.Setenv("QUALITY_THRESHOLD", "-1")
		_, err := Load()
		assert.ErrorContains(t, err, "QUALITY_THRESHOLD")
	})

	t.Run("zero cache ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL_SECONDS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "CACHE_TTL_SECONDS")
	})
}
