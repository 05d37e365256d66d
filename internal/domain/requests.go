package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// MinMonthlyRequests is the smallest request volume the hosting calculator
// accepts; the backend models nothing below it.
const MinMonthlyRequests = 1000

// AllowedLanguages lists the language tags the analysis backend accepts.
var AllowedLanguages = []string{"python", "javascript", "typescript", "java", "cpp"}

// githubRepoPattern matches canonical repository URLs like
// https://github.com/owner/repo with an optional trailing slash.
var githubRepoPattern = regexp.MustCompile(`^https://github\.com/[\w\-]+/[\w\-\.]+/?$`)

// CodeAnalysisRequest is the payload for a code carbon-footprint analysis.
type CodeAnalysisRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	UserID   string `json:"user_id,omitempty"`
}

// Validate rejects the request before it reaches the network layer.
func (r CodeAnalysisRequest) Validate(maxCodeLength int) error {
	if strings.TrimSpace(r.Code) == "" {
		return NewValidationError("EMPTY_CODE", "Please enter some code to analyze", nil)
	}
	if maxCodeLength > 0 && len(r.Code) > maxCodeLength {
		return NewValidationError("CODE_TOO_LONG", "Code exceeds maximum length", map[string]interface{}{
			"length": len(r.Code),
			"max":    maxCodeLength,
		})
	}
	if !IsAllowedLanguage(r.Language) {
		return NewValidationError("UNSUPPORTED_LANGUAGE",
			fmt.Sprintf("Language must be one of %s", strings.Join(AllowedLanguages, ", ")),
			map[string]interface{}{"language": r.Language})
	}
	return nil
}

// IsAllowedLanguage reports whether the tag is accepted by the backend.
func IsAllowedLanguage(language string) bool {
	lang := strings.ToLower(language)
	for _, allowed := range AllowedLanguages {
		if lang == allowed {
			return true
		}
	}
	return false
}

// GitHubAnalysisRequest is the payload for a repository analysis.
type GitHubAnalysisRequest struct {
	RepoURL string `json:"repo_url"`
	UserID  string `json:"user_id,omitempty"`
}

// Validate rejects empty or malformed repository URLs.
func (r GitHubAnalysisRequest) Validate() error {
	if strings.TrimSpace(r.RepoURL) == "" {
		return NewValidationError("EMPTY_REPO_URL", "Please enter a GitHub repository URL", nil)
	}
	if !githubRepoPattern.MatchString(r.RepoURL) {
		return NewValidationError("INVALID_REPO_URL", "Please enter a valid GitHub repository URL", map[string]interface{}{
			"repo_url": r.RepoURL,
		})
	}
	return nil
}

// AIOptimizeRequest asks the backend for AI optimization suggestions. The
// analysis results from a prior AnalyzeCode call ride along as context.
type AIOptimizeRequest struct {
	Code            string        `json:"code"`
	Language        string        `json:"language"`
	AnalysisResults *CodeAnalysis `json:"analysis_results"`
	UserID          string        `json:"user_id,omitempty"`
}

// Validate requires an existing analysis; the backend prompt is built from it.
func (r AIOptimizeRequest) Validate(maxCodeLength int) error {
	if r.AnalysisResults == nil {
		return NewValidationError("NO_ANALYSIS", "Please analyze code first", nil)
	}
	return CodeAnalysisRequest{Code: r.Code, Language: r.Language}.Validate(maxCodeLength)
}

// HostingImpactRequest is the payload for the hosting footprint calculator.
type HostingImpactRequest struct {
	Provider        string `json:"provider"`
	Region          string `json:"region"`
	Tier            string `json:"tier"`
	MonthlyRequests int64  `json:"monthly_requests"`
}

// Validate rejects sub-minimum request volumes and missing selections.
func (r HostingImpactRequest) Validate() error {
	if r.Provider == "" || r.Region == "" || r.Tier == "" {
		return NewValidationError("MISSING_SELECTION", "Provider, region and tier are required", nil)
	}
	if r.MonthlyRequests < MinMonthlyRequests {
		return NewValidationError("REQUESTS_BELOW_MINIMUM",
			fmt.Sprintf("Please enter a valid number of monthly requests (minimum %d)", MinMonthlyRequests),
			map[string]interface{}{"monthly_requests": r.MonthlyRequests})
	}
	return nil
}
