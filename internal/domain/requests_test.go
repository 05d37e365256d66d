package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeAnalysisRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      CodeAnalysisRequest
		maxLen   int
		wantCode string
	}{
		{
			name:   "valid request",
			req:    CodeAnalysisRequest{Code: "print('hi')", Language: "python"},
			maxLen: 50000,
		},
		{
			name:   "language tag is case insensitive",
			req:    CodeAnalysisRequest{Code: "print('hi')", Language: "Python"},
			maxLen: 50000,
		},
		{
			name:     "empty code",
			req:      CodeAnalysisRequest{Code: "", Language: "python"},
			maxLen:   50000,
			wantCode: "EMPTY_CODE",
		},
		{
			name:     "whitespace-only code",
			req:      CodeAnalysisRequest{Code: "   \n\t  ", Language: "python"},
			maxLen:   50000,
			wantCode: "EMPTY_CODE",
		},
		{
			name:     "code too long",
			req:      CodeAnalysisRequest{Code: strings.Repeat("a", 101), Language: "python"},
			maxLen:   100,
			wantCode: "CODE_TOO_LONG",
		},
		{
			name:   "code exactly at limit",
			req:    CodeAnalysisRequest{Code: strings.Repeat("a", 100), Language: "python"},
			maxLen: 100,
		},
		{
			name:     "unsupported language",
			req:      CodeAnalysisRequest{Code: "puts 'hi'", Language: "ruby"},
			maxLen:   50000,
			wantCode: "UNSUPPORTED_LANGUAGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(tt.maxLen)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			var de *DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantCode, de.Code)
		})
	}
}

func TestCodeAnalysisRequestEmptyCodeMessage(t *testing.T) {
	err := CodeAnalysisRequest{Language: "python"}.Validate(100)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Please enter some code to analyze", de.UserMessage())
}

func TestGitHubAnalysisRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		repoURL  string
		wantCode string
	}{
		{name: "canonical URL", repoURL: "https://github.com/golang/go"},
		{name: "trailing slash", repoURL: "https://github.com/golang/go/"},
		{name: "dotted repo name", repoURL: "https://github.com/owner/repo.js"},
		{name: "empty", repoURL: "", wantCode: "EMPTY_REPO_URL"},
		{name: "not github", repoURL: "https://gitlab.com/owner/repo", wantCode: "INVALID_REPO_URL"},
		{name: "missing repo", repoURL: "https://github.com/owner", wantCode: "INVALID_REPO_URL"},
		{name: "extra path segment", repoURL: "https://github.com/owner/repo/tree/main", wantCode: "INVALID_REPO_URL"},
		{name: "http scheme", repoURL: "http://github.com/owner/repo", wantCode: "INVALID_REPO_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GitHubAnalysisRequest{RepoURL: tt.repoURL}.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var de *DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantCode, de.Code)
		})
	}
}

func TestAIOptimizeRequestRequiresAnalysis(t *testing.T) {
	err := AIOptimizeRequest{Code: "print('hi')", Language: "python"}.Validate(50000)
	require.Error(t, err)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "NO_ANALYSIS", de.Code)
	assert.Equal(t, "Please analyze code first", de.UserMessage())

	err = AIOptimizeRequest{
		Code:            "print('hi')",
		Language:        "python",
		AnalysisResults: &CodeAnalysis{GreenScore: 87},
	}.Validate(50000)
	assert.NoError(t, err)
}

func TestHostingImpactRequestValidate(t *testing.T) {
	valid := HostingImpactRequest{Provider: "aws", Region: "us-east", Tier: "serverless", MonthlyRequests: 1000}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		req      HostingImpactRequest
		wantCode string
	}{
		{
			name:     "missing provider",
			req:      HostingImpactRequest{Region: "us-east", Tier: "serverless", MonthlyRequests: 5000},
			wantCode: "MISSING_SELECTION",
		},
		{
			name:     "below minimum requests",
			req:      HostingImpactRequest{Provider: "aws", Region: "us-east", Tier: "serverless", MonthlyRequests: 999},
			wantCode: "REQUESTS_BELOW_MINIMUM",
		},
		{
			name:     "zero requests",
			req:      HostingImpactRequest{Provider: "aws", Region: "us-east", Tier: "serverless"},
			wantCode: "REQUESTS_BELOW_MINIMUM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			var de *DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantCode, de.Code)
		})
	}
}
