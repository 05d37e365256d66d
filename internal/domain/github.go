package domain

import "sort"

// RepoInfo describes the analyzed repository as reported by the backend.
type RepoInfo struct {
	Name        string  `json:"name"`
	Owner       string  `json:"owner"`
	Description string  `json:"description"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	SizeKB      float64 `json:"size_kb"`
	Language    string  `json:"language"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ImpactEstimate is the backend's hosting-impact estimate for a repository.
type ImpactEstimate struct {
	ComputeScore             float64 `json:"compute_score"`
	EstimatedCICDRunsMonthly float64 `json:"estimated_cicd_runs_monthly"`
	CO2StorageGrams          float64 `json:"co2_storage_grams"`
	CO2ComputeGrams          float64 `json:"co2_compute_grams"`
	CO2CICDGrams             float64 `json:"co2_cicd_grams"`
	TotalCO2MonthlyGrams     float64 `json:"total_co2_monthly_grams"`
}

// GitHubAnalysis is the /analyze-github analysis payload. Languages maps
// language name to byte count, as reported by the GitHub API.
type GitHubAnalysis struct {
	RepoInfo       *RepoInfo        `json:"repo_info"`
	Languages      map[string]int64 `json:"languages"`
	ImpactEstimate *ImpactEstimate  `json:"impact_estimate"`
	Timestamp      string           `json:"timestamp,omitempty"`
}

// GitHubAnalysisResponse is the /analyze-github success envelope.
type GitHubAnalysisResponse struct {
	Success  bool            `json:"success"`
	Analysis *GitHubAnalysis `json:"analysis"`
}

// LanguageShare is one slice of the repository language distribution.
type LanguageShare struct {
	Name    string
	Bytes   int64
	Percent float64
}

// TopLanguages returns the largest n languages by byte count, with their
// share of the total. Ties keep a deterministic order (name ascending) so
// repeated renders of the same payload are identical.
func TopLanguages(languages map[string]int64, n int) []LanguageShare {
	shares := make([]LanguageShare, 0, len(languages))
	var total int64
	for name, bytes := range languages {
		shares = append(shares, LanguageShare{Name: name, Bytes: bytes})
		total += bytes
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})
	if len(shares) > n {
		shares = shares[:n]
	}
	if total > 0 {
		for i := range shares {
			shares[i].Percent = float64(shares[i].Bytes) / float64(total) * 100
		}
	}
	return shares
}
