// Package client implements the single channel for all analysis backend
// calls. It enforces global pacing between requests and normalizes every
// failure into the RequestFailed error contract.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecocode-app/ecocode-cli/internal/config"
	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

// fallbackDetail is returned when a non-2xx response carries no usable
// detail field.
const fallbackDetail = "Request failed"

// APIClient handles communication with the EcoCode analysis API. Each
// instance owns its own rate-limiter timestamp; callers that share an
// instance serialize through it.
type APIClient struct {
	cfg        config.ClientConfig
	httpClient *http.Client
	logger     *slog.Logger

	// mu guards lastRequest and is held across the pacing wait so that a
	// second caller queues behind a pending delay and re-checks elapsed
	// time once the first dispatches.
	mu          sync.Mutex
	lastRequest time.Time
}

// New creates a new API client.
func New(cfg config.ClientConfig, logger *slog.Logger) *APIClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.GetHTTPTimeout(),
		},
		logger: logger,
	}
}

// RequestOptions customizes a single request. Header entries override the
// JSON defaults on conflicting keys.
type RequestOptions struct {
	Method     string
	PathSuffix string
	Body       interface{}
	Header     http.Header
}

// rateLimit suspends the caller until at least the configured minimum delay
// has passed since the last dispatched request. The stored timestamp is
// updated only at actual dispatch, never at suspension start.
func (c *APIClient) rateLimit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if wait := c.cfg.GetRateLimitDelay() - time.Since(c.lastRequest); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	c.lastRequest = time.Now()
	return nil
}

// Request builds the full URL from the configured base and endpoint path,
// applies pacing, issues the call and decodes the JSON response into result.
// The body is parsed as JSON even on non-2xx status to extract the server's
// detail field. Every failure is logged once here and returned, never
// swallowed.
func (c *APIClient) Request(ctx context.Context, endpointKey string, opts RequestOptions, result interface{}) error {
	path, ok := c.cfg.GetEndpoint(endpointKey)
	if !ok {
		return domain.NewInternalError("UNKNOWN_ENDPOINT",
			fmt.Sprintf("no endpoint configured for %q", endpointKey), nil)
	}

	if err := c.rateLimit(ctx); err != nil {
		return c.fail(endpointKey, domain.NewRequestFailed(err.Error(), err))
	}

	fullURL, err := url.JoinPath(c.cfg.GetAPIBaseURL(), path+opts.PathSuffix)
	if err != nil {
		return c.fail(endpointKey, domain.NewRequestFailed("failed to build request URL", err))
	}

	var reqBody io.Reader
	if opts.Body != nil {
		data, marshalErr := json.Marshal(opts.Body)
		if marshalErr != nil {
			return c.fail(endpointKey, domain.NewRequestFailed("failed to encode request body", marshalErr))
		}
		reqBody = bytes.NewReader(data)
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return c.fail(endpointKey, domain.NewRequestFailed("failed to create request", err))
	}

	// JSON defaults first, then caller-supplied headers win on conflicts.
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	for key, values := range opts.Header {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(endpointKey, domain.NewRequestFailed(err.Error(), err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(endpointKey, domain.NewRequestFailed("failed to read response body", err))
	}

	if resp.StatusCode >= 300 {
		detail := fallbackDetail
		var errResp struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Detail != "" {
			detail = errResp.Detail
		}
		return c.fail(endpointKey, domain.NewRequestFailed(detail, nil))
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return c.fail(endpointKey, domain.NewRequestFailed("failed to decode response", err))
		}
	}

	return nil
}

// fail logs a request failure once at the client boundary and returns it.
func (c *APIClient) fail(endpointKey string, err *domain.DomainError) error {
	c.logger.Error("api request failed", "endpoint", endpointKey, "error", err)
	return err
}
