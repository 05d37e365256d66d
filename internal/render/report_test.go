package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

func TestReport(t *testing.T) {
	analysis := &domain.CodeAnalysis{
		GreenScore:       87,
		Rating:           "Excellent",
		CO2EstimateGrams: 0.002,
		Metrics: domain.CodeMetrics{
			LinesOfCode: 12, Loops: 3, NestedLoops: 1, APICalls: 2,
			FileIOOperations: 1, RecursionCount: 1, DBQueries: 0,
		},
		Scores: domain.ResourceScores{CPUScore: 95, NetworkScore: 100, MemoryScore: 90},
	}

	report := Report(analysis, time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC))

	assert.Contains(t, report, "EcoCode Carbon Footprint Analysis Report")
	assert.Contains(t, report, "GREEN SCORE: 87/100")
	assert.Contains(t, report, "Rating: Excellent")
	assert.Contains(t, report, "CO2 ESTIMATE: 0.002g")
	assert.Contains(t, report, "- Lines of Code: 12")
	assert.Contains(t, report, "- Database Queries: 0")
	assert.Contains(t, report, "- CPU Score: 95.00")
	assert.Contains(t, report, "https://ecocode.app")
}

func TestReportFilename(t *testing.T) {
	now := time.UnixMilli(1755684600000)
	assert.Equal(t, "ecocode-analysis-1755684600000.txt", ReportFilename(now))
}

func TestSampleCode(t *testing.T) {
	for _, language := range domain.AllowedLanguages {
		assert.NotEmpty(t, SampleCode(language), "sample for %s", language)
	}
	assert.Contains(t, SampleCode("python"), "fibonacci")
	// Unknown languages fall back to the Python sample.
	assert.Equal(t, SampleCode("python"), SampleCode("ruby"))
}
