package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineHistoryOrdersNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	codes := []CodeAnalysisRecord{
		{ID: "c1", CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "c2", CreatedAt: base},
	}
	githubs := []GitHubAnalysisRecord{
		{ID: "g1", CreatedAt: base.Add(-1 * time.Hour)},
	}

	entries := CombineHistory(codes, githubs)
	require.Len(t, entries, 3)
	assert.Equal(t, "c2", entries[0].Code.ID)
	assert.Equal(t, "g1", entries[1].GitHub.ID)
	assert.Equal(t, "c1", entries[2].Code.ID)
}

func TestCombineHistoryStableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	codes := []CodeAnalysisRecord{
		{ID: "c1", CreatedAt: ts},
		{ID: "c2", CreatedAt: ts},
	}
	githubs := []GitHubAnalysisRecord{
		{ID: "g1", CreatedAt: ts},
	}

	entries := CombineHistory(codes, githubs)
	require.Len(t, entries, 3)
	// Equal timestamps keep construction order: code records first, in
	// their input order, then github records.
	assert.Equal(t, HistoryKindCode, entries[0].Kind)
	assert.Equal(t, "c1", entries[0].Code.ID)
	assert.Equal(t, "c2", entries[1].Code.ID)
	assert.Equal(t, HistoryKindGitHub, entries[2].Kind)
}

func TestCombineHistoryEmpty(t *testing.T) {
	assert.Empty(t, CombineHistory(nil, nil))
}

func TestComputeDashboardStats(t *testing.T) {
	codes := []CodeAnalysisRecord{
		{AnalysisResults: &CodeAnalysis{GreenScore: 90, CO2EstimateGrams: 0.002}},
		{AnalysisResults: &CodeAnalysis{GreenScore: 70, CO2EstimateGrams: 0.004}},
	}

	stats := ComputeDashboardStats(codes)
	assert.Equal(t, 2, stats.TotalAnalyses)
	assert.InDelta(t, 80, stats.AvgGreenScore, 0.001)
	assert.InDelta(t, 0.006, stats.TotalCO2Grams, 0.0001)
}

func TestComputeDashboardStatsNilResults(t *testing.T) {
	codes := []CodeAnalysisRecord{
		{AnalysisResults: &CodeAnalysis{GreenScore: 80, CO2EstimateGrams: 0.002}},
		{AnalysisResults: nil},
	}

	// A record without a results payload still counts toward the total.
	stats := ComputeDashboardStats(codes)
	assert.Equal(t, 2, stats.TotalAnalyses)
	assert.InDelta(t, 40, stats.AvgGreenScore, 0.001)
	assert.InDelta(t, 0.002, stats.TotalCO2Grams, 0.0001)
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil)
	assert.Equal(t, 0, stats.TotalAnalyses)
	assert.Zero(t, stats.AvgGreenScore)
}
