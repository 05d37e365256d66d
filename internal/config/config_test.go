package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "http://localhost:8000", cfg.GetAPIBaseURL())
	assert.Equal(t, 50000, cfg.GetMaxCodeLength())
	assert.Equal(t, time.Second, cfg.GetRateLimitDelay())
	assert.Equal(t, 30*time.Second, cfg.GetHTTPTimeout())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.Empty(t, cfg.GetProviderURL())
}

func TestNewConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("ECOCODE_API_URL", "https://api.example.com")
	t.Setenv("ECOCODE_MAX_CODE_LENGTH", "1000")
	t.Setenv("ECOCODE_RATE_LIMIT_DELAY", "250ms")
	t.Setenv("ECOCODE_SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("ECOCODE_SUPABASE_ANON_KEY", "anon-key")

	cfg := NewConfig()
	assert.Equal(t, "https://api.example.com", cfg.GetAPIBaseURL())
	assert.Equal(t, 1000, cfg.GetMaxCodeLength())
	assert.Equal(t, 250*time.Millisecond, cfg.GetRateLimitDelay())
	assert.Equal(t, "https://project.supabase.co", cfg.GetProviderURL())
	assert.Equal(t, "anon-key", cfg.GetProviderAnonKey())
}

func TestNewConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ECOCODE_MAX_CODE_LENGTH", "not-a-number")
	t.Setenv("ECOCODE_RATE_LIMIT_DELAY", "not-a-duration")

	cfg := NewConfig()
	assert.Equal(t, 50000, cfg.GetMaxCodeLength())
	assert.Equal(t, time.Second, cfg.GetRateLimitDelay())
}

func TestGetEndpoint(t *testing.T) {
	cfg := NewConfig()

	for _, name := range []string{
		EndpointAnalyzeCode, EndpointAnalyzeGitHub, EndpointAIOptimize,
		EndpointHostingImpact, EndpointHistory, EndpointHealth,
	} {
		path, ok := cfg.GetEndpoint(name)
		require.True(t, ok, "endpoint %s", name)
		assert.NotEmpty(t, path)
	}

	_, ok := cfg.GetEndpoint("nonexistent")
	assert.False(t, ok)
}

func TestSetAPIBaseURL(t *testing.T) {
	cfg := NewConfig()
	cfg.SetAPIBaseURL("https://override.example.com")
	assert.Equal(t, "https://override.example.com", cfg.GetAPIBaseURL())

	// Empty override is ignored.
	cfg.SetAPIBaseURL("")
	assert.Equal(t, "https://override.example.com", cfg.GetAPIBaseURL())
}
