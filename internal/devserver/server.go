// Package devserver is a local stand-in for the analysis backend. It serves
// the real endpoint surface with canned figures so the terminal client can be
// exercised offline. It performs no code analysis of its own.
package devserver

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

var repoPathPattern = regexp.MustCompile(`^https://github\.com/([\w\-]+)/([\w\-\.]+?)/?$`)

// Router builds the development backend.
func Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", handleRoot)
	router.GET("/health", handleHealth)
	router.POST("/analyze-code", handleAnalyzeCode)
	router.POST("/analyze-github", handleAnalyzeGitHub)
	router.POST("/ai-optimize", handleAIOptimize)
	router.POST("/hosting-impact", handleHostingImpact)
	router.GET("/history/:user_id", handleHistory)

	return router
}

func detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "EcoCode Carbon Footprint Analyzer API",
		"version": "1.0.0",
		"status":  "operational",
		"endpoints": []string{
			"/analyze-code",
			"/analyze-github",
			"/ai-optimize",
			"/hosting-impact",
			"/history/{user_id}",
		},
	})
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, domain.HealthStatus{
		Status:    "healthy",
		Supabase:  "not configured",
		Gemini:    "not configured",
		GitHub:    "not configured",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func handleAnalyzeCode(c *gin.Context) {
	var req domain.CodeAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if req.Code == "" {
		detail(c, http.StatusUnprocessableEntity, "Code cannot be empty")
		return
	}

	c.JSON(http.StatusOK, domain.CodeAnalysisResponse{
		Success:  true,
		Language: req.Language,
		Analysis: sampleAnalysis(),
	})
}

func handleAnalyzeGitHub(c *gin.Context) {
	var req domain.GitHubAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	match := repoPathPattern.FindStringSubmatch(req.RepoURL)
	if match == nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid GitHub repository URL")
		return
	}
	owner, name := match[1], match[2]

	c.JSON(http.StatusOK, domain.GitHubAnalysisResponse{
		Success: true,
		Analysis: &domain.GitHubAnalysis{
			RepoInfo: &domain.RepoInfo{
				Name:        name,
				Owner:       owner,
				Description: fmt.Sprintf("Development fixture for %s/%s", owner, name),
				Stars:       128,
				Forks:       16,
				SizeKB:      2048,
				Language:    "Go",
				CreatedAt:   "2024-01-15T09:30:00Z",
				UpdatedAt:   "2026-08-01T12:00:00Z",
			},
			Languages: map[string]int64{
				"Go":         182000,
				"JavaScript": 41000,
				"Shell":      3200,
			},
			ImpactEstimate: &domain.ImpactEstimate{
				ComputeScore:             42.5,
				EstimatedCICDRunsMonthly: 120,
				CO2StorageGrams:          0.0164,
				CO2ComputeGrams:          8.5,
				CO2CICDGrams:             96,
				TotalCO2MonthlyGrams:     104.52,
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func handleAIOptimize(c *gin.Context) {
	var req domain.AIOptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	c.JSON(http.StatusOK, domain.OptimizationResponse{
		Success: true,
		Optimization: &domain.Optimization{
			AIAnalysis: &domain.AIAnalysis{
				Inefficiencies: []string{
					"Recursive fibonacci recomputes subproblems exponentially",
					"Network calls issued inside a loop",
				},
				Suggestions: []string{
					"Memoize fibonacci or switch to the iterative form",
					"Batch the API requests outside the loop",
				},
				Explanations: []string{
					"Memoization reduces the call tree from exponential to linear",
					"A single batched request avoids per-iteration connection cost",
				},
				OptimizedCode: "def fibonacci(n, memo={}):\n    if n in memo:\n        return memo[n]\n    if n <= 1:\n        return n\n    memo[n] = fibonacci(n-1, memo) + fibonacci(n-2, memo)\n    return memo[n]\n",
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func handleHostingImpact(c *gin.Context) {
	var req domain.HostingImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if req.MonthlyRequests < domain.MinMonthlyRequests {
		detail(c, http.StatusUnprocessableEntity, "monthly_requests must be at least 1000")
		return
	}

	energy := float64(req.MonthlyRequests) * 0.0000025
	co2 := energy * 450
	c.JSON(http.StatusOK, domain.HostingImpactResponse{
		Success: true,
		Impact: &domain.HostingImpact{
			Provider:                req.Provider,
			Region:                  req.Region,
			Tier:                    req.Tier,
			MonthlyRequests:         req.MonthlyRequests,
			MonthlyEnergyKWh:        energy,
			MonthlyCO2Grams:         co2,
			MonthlyCO2Kg:            co2 / 1000,
			YearlyCO2Kg:             co2 * 12 / 1000,
			EstimatedMonthlyCostUSD: 25,
			CarbonIntensityRegion:   450,
			ProviderEfficiencyScore: 85,
			Timestamp:               time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func handleHistory(c *gin.Context) {
	userID := c.Param("user_id")
	now := time.Now().UTC()

	c.JSON(http.StatusOK, domain.HistoryResponse{
		Success: true,
		CodeAnalyses: []domain.CodeAnalysisRecord{
			{
				ID:              "fixture-code-1",
				UserID:          userID,
				Language:        "python",
				AnalysisResults: sampleAnalysis(),
				CreatedAt:       now.Add(-2 * time.Hour),
			},
		},
		GitHubAnalyses: []domain.GitHubAnalysisRecord{
			{
				ID:      "fixture-github-1",
				UserID:  userID,
				RepoURL: "https://github.com/example/repo",
				AnalysisResults: &domain.GitHubAnalysis{
					ImpactEstimate: &domain.ImpactEstimate{TotalCO2MonthlyGrams: 104.52},
				},
				CreatedAt: now.Add(-26 * time.Hour),
			},
		},
	})
}

func sampleAnalysis() *domain.CodeAnalysis {
	return &domain.CodeAnalysis{
		GreenScore:       87,
		Rating:           "Excellent",
		Color:            "#10b981",
		CO2EstimateGrams: 0.002,
		Metrics: domain.CodeMetrics{
			LinesOfCode: 1,
		},
		Scores: domain.ResourceScores{
			CPUScore:     95,
			NetworkScore: 100,
			MemoryScore:  90,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
