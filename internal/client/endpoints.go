package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ecocode-app/ecocode-cli/internal/config"
	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

// AnalyzeCode submits source code for carbon-footprint analysis.
func (c *APIClient) AnalyzeCode(ctx context.Context, req domain.CodeAnalysisRequest) (*domain.CodeAnalysisResponse, error) {
	var resp domain.CodeAnalysisResponse
	err := c.Request(ctx, config.EndpointAnalyzeCode, RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeGitHub submits a repository URL for analysis.
func (c *APIClient) AnalyzeGitHub(ctx context.Context, req domain.GitHubAnalysisRequest) (*domain.GitHubAnalysisResponse, error) {
	var resp domain.GitHubAnalysisResponse
	err := c.Request(ctx, config.EndpointAnalyzeGitHub, RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAIOptimization requests AI optimization suggestions for analyzed code.
func (c *APIClient) GetAIOptimization(ctx context.Context, req domain.AIOptimizeRequest) (*domain.OptimizationResponse, error) {
	var resp domain.OptimizationResponse
	err := c.Request(ctx, config.EndpointAIOptimize, RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CalculateHostingImpact asks the backend to model hosting emissions.
func (c *APIClient) CalculateHostingImpact(ctx context.Context, req domain.HostingImpactRequest) (*domain.HostingImpactResponse, error) {
	var resp domain.HostingImpactResponse
	err := c.Request(ctx, config.EndpointHostingImpact, RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetHistory fetches the stored analyses for a user.
func (c *APIClient) GetHistory(ctx context.Context, userID string) (*domain.HistoryResponse, error) {
	var resp domain.HistoryResponse
	err := c.Request(ctx, config.EndpointHistory, RequestOptions{
		Method:     http.MethodGet,
		PathSuffix: "/" + url.PathEscape(userID),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// HealthCheck probes the backend health endpoint.
func (c *APIClient) HealthCheck(ctx context.Context) (*domain.HealthStatus, error) {
	var resp domain.HealthStatus
	err := c.Request(ctx, config.EndpointHealth, RequestOptions{
		Method: http.MethodGet,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
