// Package config provides application configuration management. Settings are
// loaded once at process start from defaults and environment overrides; no
// reload is supported.
package config

import (
	"os"
	"strconv"
	"time"
)

// Logical endpoint names used by the API client. The configuration maps each
// name to its path suffix under the API base URL.
const (
	EndpointAnalyzeCode   = "analyze-code"
	EndpointAnalyzeGitHub = "analyze-github"
	EndpointAIOptimize    = "ai-optimize"
	EndpointHostingImpact = "hosting-impact"
	EndpointHistory       = "history"
	EndpointHealth        = "health"
)

// ClientConfig is the read surface the API client depends on.
type ClientConfig interface {
	GetAPIBaseURL() string
	GetEndpoint(name string) (string, bool)
	GetMaxCodeLength() int
	GetRateLimitDelay() time.Duration
	GetHTTPTimeout() time.Duration
}

// AuthConfig is the read surface the auth gateway depends on.
type AuthConfig interface {
	GetProviderURL() string
	GetProviderAnonKey() string
	GetProviderEventsURL() string
}

// AppConfig implements all configuration interfaces.
type AppConfig struct {
	apiBaseURL        string
	endpoints         map[string]string
	maxCodeLength     int
	rateLimitDelay    time.Duration
	httpTimeout       time.Duration
	providerURL       string
	providerAnonKey   string
	providerEventsURL string
	logLevel          string
}

// NewConfig creates a new configuration instance with default values and
// overrides from environment variables.
func NewConfig() *AppConfig {
	return &AppConfig{
		apiBaseURL: getEnvString("ECOCODE_API_URL", "http://localhost:8000"),
		endpoints: map[string]string{
			EndpointAnalyzeCode:   "/analyze-code",
			EndpointAnalyzeGitHub: "/analyze-github",
			EndpointAIOptimize:    "/ai-optimize",
			EndpointHostingImpact: "/hosting-impact",
			EndpointHistory:       "/history",
			EndpointHealth:        "/health",
		},
		maxCodeLength:     getEnvInt("ECOCODE_MAX_CODE_LENGTH", 50000),
		rateLimitDelay:    getEnvDuration("ECOCODE_RATE_LIMIT_DELAY", "1s"),
		httpTimeout:       getEnvDuration("ECOCODE_HTTP_TIMEOUT", "30s"),
		providerURL:       getEnvString("ECOCODE_SUPABASE_URL", ""),
		providerAnonKey:   getEnvString("ECOCODE_SUPABASE_ANON_KEY", ""),
		providerEventsURL: getEnvString("ECOCODE_SUPABASE_EVENTS_URL", ""),
		logLevel:          getEnvString("ECOCODE_LOG_LEVEL", "info"),
	}
}

// GetAPIBaseURL returns the analysis API base URL.
func (c *AppConfig) GetAPIBaseURL() string {
	return c.apiBaseURL
}

// SetAPIBaseURL overrides the base URL before first use (CLI flag binding).
func (c *AppConfig) SetAPIBaseURL(url string) {
	if url != "" {
		c.apiBaseURL = url
	}
}

// GetEndpoint returns the path suffix for a logical endpoint name.
func (c *AppConfig) GetEndpoint(name string) (string, bool) {
	path, ok := c.endpoints[name]
	return path, ok
}

// GetMaxCodeLength returns the maximum accepted source length in characters.
func (c *AppConfig) GetMaxCodeLength() int {
	return c.maxCodeLength
}

// GetRateLimitDelay returns the minimum delay between outbound API requests.
func (c *AppConfig) GetRateLimitDelay() time.Duration {
	return c.rateLimitDelay
}

// GetHTTPTimeout returns the per-request HTTP timeout.
func (c *AppConfig) GetHTTPTimeout() time.Duration {
	return c.httpTimeout
}

// GetProviderURL returns the identity provider base URL.
func (c *AppConfig) GetProviderURL() string {
	return c.providerURL
}

// GetProviderAnonKey returns the identity provider public API key.
func (c *AppConfig) GetProviderAnonKey() string {
	return c.providerAnonKey
}

// GetProviderEventsURL returns the websocket URL for provider-pushed session
// events. Empty means the push listener is disabled.
func (c *AppConfig) GetProviderEventsURL() string {
	return c.providerEventsURL
}

// GetLogLevel returns the configured log level name.
func (c *AppConfig) GetLogLevel() string {
	return c.logLevel
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key, defaultValue string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		parsed, _ = time.ParseDuration(defaultValue)
	}
	return parsed
}
