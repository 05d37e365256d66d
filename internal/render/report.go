package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

const reportDivider = "========================================"

// Report renders a plain-text analysis report suitable for saving to a file.
func Report(analysis *domain.CodeAnalysis, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EcoCode Carbon Footprint Analysis Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&b, reportDivider)
	fmt.Fprintf(&b, "GREEN SCORE: %s/100\n", formatScore(analysis.GreenScore))
	fmt.Fprintf(&b, "Rating: %s\n", analysis.Rating)
	fmt.Fprintln(&b, reportDivider)
	fmt.Fprintf(&b, "\nCO2 ESTIMATE: %s\n\n", formatGrams(analysis.CO2EstimateGrams))
	fmt.Fprintln(&b, "METRICS:")
	fmt.Fprintf(&b, "- Lines of Code: %d\n", analysis.Metrics.LinesOfCode)
	fmt.Fprintf(&b, "- Loops: %d\n", analysis.Metrics.Loops)
	fmt.Fprintf(&b, "- Nested Loops: %d\n", analysis.Metrics.NestedLoops)
	fmt.Fprintf(&b, "- API Calls: %d\n", analysis.Metrics.APICalls)
	fmt.Fprintf(&b, "- File I/O Operations: %d\n", analysis.Metrics.FileIOOperations)
	fmt.Fprintf(&b, "- Recursion Count: %d\n", analysis.Metrics.RecursionCount)
	fmt.Fprintf(&b, "- Database Queries: %d\n\n", analysis.Metrics.DBQueries)
	fmt.Fprintln(&b, "SCORES:")
	fmt.Fprintf(&b, "- CPU Score: %.2f\n", analysis.Scores.CPUScore)
	fmt.Fprintf(&b, "- Network Score: %.2f\n", analysis.Scores.NetworkScore)
	fmt.Fprintf(&b, "- Memory Score: %.2f\n\n", analysis.Scores.MemoryScore)
	fmt.Fprintln(&b, reportDivider)
	fmt.Fprintln(&b, "Visit EcoCode for more insights!")
	fmt.Fprintln(&b, "https://ecocode.app")
	fmt.Fprintln(&b, reportDivider)
	return b.String()
}

// ReportFilename builds the default report filename, stamped to the second.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("ecocode-analysis-%d.txt", now.UnixMilli())
}
