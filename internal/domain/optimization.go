package domain

// AIAnalysis is the structured portion of an AI optimization response.
// Every field is optional; the backend falls back to plain suggestions when
// the model output cannot be parsed.
type AIAnalysis struct {
	Inefficiencies []string `json:"inefficiencies,omitempty"`
	Suggestions    []string `json:"suggestions,omitempty"`
	Explanations   []string `json:"explanations,omitempty"`
	OptimizedCode  string   `json:"optimized_code,omitempty"`
}

// Optimization is the /ai-optimize payload. Either AIAnalysis or the flat
// Suggestions list is populated, never required to be both.
type Optimization struct {
	AIAnalysis  *AIAnalysis `json:"ai_analysis,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
	Error       string      `json:"error,omitempty"`
	Timestamp   string      `json:"timestamp,omitempty"`
}

// OptimizationResponse is the /ai-optimize success envelope.
type OptimizationResponse struct {
	Success      bool          `json:"success"`
	Optimization *Optimization `json:"optimization"`
}
