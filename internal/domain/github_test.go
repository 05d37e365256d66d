package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLanguages(t *testing.T) {
	languages := map[string]int64{
		"Go":         80000,
		"JavaScript": 15000,
		"Shell":      5000,
	}

	shares := TopLanguages(languages, 5)
	require.Len(t, shares, 3)
	assert.Equal(t, "Go", shares[0].Name)
	assert.InDelta(t, 80, shares[0].Percent, 0.001)
	assert.Equal(t, "JavaScript", shares[1].Name)
	assert.InDelta(t, 15, shares[1].Percent, 0.001)
	assert.Equal(t, "Shell", shares[2].Name)
	assert.InDelta(t, 5, shares[2].Percent, 0.001)
}

func TestTopLanguagesTruncates(t *testing.T) {
	languages := map[string]int64{
		"A": 60, "B": 50, "C": 40, "D": 30, "E": 20, "F": 10,
	}

	shares := TopLanguages(languages, 5)
	require.Len(t, shares, 5)
	assert.Equal(t, "A", shares[0].Name)
	assert.Equal(t, "E", shares[4].Name)
}

func TestTopLanguagesDeterministicTies(t *testing.T) {
	languages := map[string]int64{"Zig": 100, "Ada": 100, "C": 100}

	first := TopLanguages(languages, 3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, TopLanguages(languages, 3))
	}
	assert.Equal(t, "Ada", first[0].Name)
	assert.Equal(t, "C", first[1].Name)
	assert.Equal(t, "Zig", first[2].Name)
}

func TestTopLanguagesEmpty(t *testing.T) {
	assert.Empty(t, TopLanguages(nil, 5))
}
