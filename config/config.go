// Package config loads service configuration from the environment, with a
// .env file as an optional local override.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable the service reads at startup.
type Config struct {
	// HTTP server
	Port int

	// LLM provider
	OpenAIAPIKey   string
	OpenAIModel    string
	RequestTimeout time.Duration

	// Quality gate
	QualityThreshold float64
	MaxAttempts      int

	// Cache
	CacheTTL    time.Duration
	CacheDBPath string // empty selects the in-memory store

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration

	Debug bool
}

// Load reads configuration from the environment. A missing .env file is
// not an error; explicit environment variables always win over defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:              8000,
		OpenAIModel:       "gpt-4o-mini",
		RequestTimeout:    30 * time.Second,
		QualityThreshold:  6.0,
		MaxAttempts:       3,
		CacheTTL:          time.Hour,
		RateLimitRequests: 100,
		RateLimitWindow:   60 * time.Second,
	}

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	cfg.CacheDBPath = os.Getenv("CACHE_DB_PATH")
	cfg.Debug = os.Getenv("DEBUG") == "true"

	var err error
	if cfg.Port, err = intEnv("PORT", cfg.Port); err != nil {
		return Config{}, err
	}
	if cfg.MaxAttempts, err = intEnv("MAX_GENERATION_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRequests, err = intEnv("RATE_LIMIT_REQUESTS", cfg.RateLimitRequests); err != nil {
		return Config{}, err
	}
	if cfg.QualityThreshold, err = floatEnv("QUALITY_THRESHOLD", cfg.QualityThreshold); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = secondsEnv("LLM_TIMEOUT_SECONDS", cfg.RequestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = secondsEnv("CACHE_TTL_SECONDS", cfg.CacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitWindow, err = secondsEnv("RATE_LIMIT_WINDOW_SECONDS", cfg.RateLimitWindow); err != nil {
		return Config{}, err
	}

	if cfg.MaxAttempts < 1 {
		return Config{}, fmt.Errorf("MAX_GENERATION_ATTEMPTS must be at least 1, got %d", cfg.MaxAttempts)
	}
	if cfg.QualityThreshold < 0 {
		return Config{}, fmt.Errorf("QUALITY_THRESHOLD must not be negative, got %g", cfg.QualityThreshold)
	}
	if cfg.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL_SECONDS must be positive, got %s", cfg.CacheTTL)
	}

	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return n, nil
}

func floatEnv(name string, fallback float64) (float64, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return f, nil
}

func secondsEnv(name string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return time.Duration(n) * time.Second, nil
}
