// Package domain defines the typed boundary for the EcoCode analysis API:
// request payloads with client-side validation, result schemas decoded from
// external JSON, and the error taxonomy shared by every component. Result
// fields are never contractually guaranteed by the client itself; absent
// fields decode to zero values and renderers degrade to placeholders.
package domain

// CodeMetrics is the named counter set returned for a code analysis.
type CodeMetrics struct {
	LinesOfCode      int `json:"lines_of_code"`
	Loops            int `json:"loops"`
	NestedLoops      int `json:"nested_loops"`
	APICalls         int `json:"api_calls"`
	FileIOOperations int `json:"file_io_operations"`
	RecursionCount   int `json:"recursion_count"`
	DBQueries        int `json:"db_queries"`
}

// ResourceScores holds the per-resource impact scores, each 0-100.
type ResourceScores struct {
	CPUScore     float64 `json:"cpu_score"`
	NetworkScore float64 `json:"network_score"`
	MemoryScore  float64 `json:"memory_score"`
}

// CodeAnalysis is the externally computed analysis payload. The client
// consumes it opaquely and only formats it.
type CodeAnalysis struct {
	GreenScore       float64        `json:"green_score"`
	Rating           string         `json:"rating"`
	Color            string         `json:"color,omitempty"`
	CO2EstimateGrams float64        `json:"co2_estimate_grams"`
	Metrics          CodeMetrics    `json:"metrics"`
	Scores           ResourceScores `json:"scores"`
	Timestamp        string         `json:"timestamp,omitempty"`
}

// CodeAnalysisResponse is the /analyze-code success envelope.
type CodeAnalysisResponse struct {
	Success  bool          `json:"success"`
	Analysis *CodeAnalysis `json:"analysis"`
	Language string        `json:"language,omitempty"`
}

// HealthStatus is the /health response. The shape is implementation-defined
// by the backend; unknown fields are ignored.
type HealthStatus struct {
	Status    string `json:"status"`
	Supabase  string `json:"supabase,omitempty"`
	Gemini    string `json:"gemini,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
