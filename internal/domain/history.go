package domain

import (
	"sort"
	"time"
)

// CodeAnalysisRecord is one stored code analysis from the history endpoint.
// Records are display-only and never mutated after fetch.
type CodeAnalysisRecord struct {
	ID              string        `json:"id,omitempty"`
	UserID          string        `json:"user_id,omitempty"`
	Language        string        `json:"language"`
	CodeHash        string        `json:"code_hash,omitempty"`
	AnalysisResults *CodeAnalysis `json:"analysis_results"`
	CreatedAt       time.Time     `json:"created_at"`
}

// GitHubAnalysisRecord is one stored repository analysis.
type GitHubAnalysisRecord struct {
	ID              string          `json:"id,omitempty"`
	UserID          string          `json:"user_id,omitempty"`
	RepoURL         string          `json:"repo_url"`
	AnalysisResults *GitHubAnalysis `json:"analysis_results"`
	CreatedAt       time.Time       `json:"created_at"`
}

// HistoryResponse is the /history/{userId} success envelope.
type HistoryResponse struct {
	Success        bool                   `json:"success"`
	CodeAnalyses   []CodeAnalysisRecord   `json:"code_analyses"`
	GitHubAnalyses []GitHubAnalysisRecord `json:"github_analyses"`
}

// HistoryEntryKind tags the union arms of a HistoryEntry.
type HistoryEntryKind string

const (
	// HistoryKindCode marks a code-analysis record.
	HistoryKindCode HistoryEntryKind = "code"
	// HistoryKindGitHub marks a github-analysis record.
	HistoryKindGitHub HistoryEntryKind = "github"
)

// HistoryEntry is the display union of code and github analysis records.
// Exactly one of Code / GitHub is set, matching Kind.
type HistoryEntry struct {
	Kind      HistoryEntryKind
	CreatedAt time.Time
	Code      *CodeAnalysisRecord
	GitHub    *GitHubAnalysisRecord
}

// CombineHistory merges both record kinds into a single list ordered by
// creation time descending. The sort is stable: entries with equal
// timestamps keep construction order, code analyses before github analyses.
func CombineHistory(codes []CodeAnalysisRecord, githubs []GitHubAnalysisRecord) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(codes)+len(githubs))
	for i := range codes {
		entries = append(entries, HistoryEntry{
			Kind:      HistoryKindCode,
			CreatedAt: codes[i].CreatedAt,
			Code:      &codes[i],
		})
	}
	for i := range githubs {
		entries = append(entries, HistoryEntry{
			Kind:      HistoryKindGitHub,
			CreatedAt: githubs[i].CreatedAt,
			GitHub:    &githubs[i],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}

// DashboardStats summarizes a user's code-analysis history for display.
type DashboardStats struct {
	TotalAnalyses int
	AvgGreenScore float64
	TotalCO2Grams float64
}

// ComputeDashboardStats aggregates the stored code analyses. Records with a
// missing results payload count toward the total but contribute nothing to
// the averages, mirroring the lenient rendering contract.
func ComputeDashboardStats(codes []CodeAnalysisRecord) DashboardStats {
	stats := DashboardStats{TotalAnalyses: len(codes)}
	for _, record := range codes {
		if record.AnalysisResults == nil {
			continue
		}
		stats.TotalCO2Grams += record.AnalysisResults.CO2EstimateGrams
		stats.AvgGreenScore += record.AnalysisResults.GreenScore
	}
	if stats.TotalAnalyses > 0 {
		stats.AvgGreenScore /= float64(stats.TotalAnalyses)
	}
	return stats
}
