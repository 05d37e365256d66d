package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

// placeholder stands in for absent optional fields; rendering never aborts
// on partial data.
const placeholder = "–"

// formatScore prints a score without trailing zeros, so a backend 87 renders
// as "87" and 87.5 as "87.5".
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// formatGrams prints a gram figure the way the backend reported it, with the
// unit suffix: 0.002 → "0.002g".
func formatGrams(grams float64) string {
	return strconv.FormatFloat(grams, 'f', -1, 64) + "g"
}

// formatCount renders integer counters.
func formatCount(n int) string {
	return strconv.Itoa(n)
}

// formatThousands inserts thousands separators: 1234567 → "1,234,567".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// orPlaceholder substitutes the placeholder for empty strings.
func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// formatDate renders an RFC 3339 timestamp as a local date, falling back to
// the raw value when it does not parse.
func formatDate(value string) string {
	if value == "" {
		return placeholder
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Local().Format("2006-01-02")
	}
	return value
}

// titleCase uppercases the first letter: "serverless" → "Serverless".
func titleCase(s string) string {
	if s == "" {
		return placeholder
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// regionLabel renders a region slug for display: "us-east" → "US EAST".
func regionLabel(region string) string {
	if region == "" {
		return placeholder
	}
	return strings.ToUpper(strings.ReplaceAll(region, "-", " "))
}

// userMessage extracts the single-line notification text for an error.
func userMessage(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.UserMessage()
	}
	return fmt.Sprintf("%v", err)
}
