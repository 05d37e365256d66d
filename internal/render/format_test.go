package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "87", formatScore(87))
	assert.Equal(t, "87.5", formatScore(87.5))
	assert.Equal(t, "0", formatScore(0))
	assert.Equal(t, "100", formatScore(100))
}

func TestFormatGrams(t *testing.T) {
	assert.Equal(t, "0.002g", formatGrams(0.002))
	assert.Equal(t, "104.52g", formatGrams(104.52))
	assert.Equal(t, "0g", formatGrams(0))
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatThousands(tt.in))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, placeholder, formatDate(""))
	assert.Equal(t, "garbage", formatDate("garbage"))
	assert.NotEmpty(t, formatDate("2024-01-15T09:30:00Z"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Serverless", titleCase("serverless"))
	assert.Equal(t, placeholder, titleCase(""))
}

func TestRegionLabel(t *testing.T) {
	assert.Equal(t, "US EAST", regionLabel("us-east"))
	assert.Equal(t, placeholder, regionLabel(""))
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, placeholder, orPlaceholder(""))
	assert.Equal(t, "value", orPlaceholder("value"))
}

func TestUserMessage(t *testing.T) {
	de := domain.NewValidationError("EMPTY_CODE", "Please enter some code to analyze", nil)
	assert.Equal(t, "Please enter some code to analyze", userMessage(de))
	assert.Equal(t, "plain failure", userMessage(errors.New("plain failure")))
}
