package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierLevels(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)

	n.Success("saved %d items", 3)
	n.Error("boom")
	n.Warning("careful")
	n.Info("fyi")

	out := buf.String()
	assert.Contains(t, out, "✓ saved 3 items")
	assert.Contains(t, out, "✗ boom")
	assert.Contains(t, out, "⚠ careful")
	assert.Contains(t, out, "ℹ fyi")
}

func TestLoadingShowHide(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoading(&buf)

	assert.False(t, l.Active())
	l.Show("Analyzing code...")
	assert.True(t, l.Active())
	assert.Contains(t, buf.String(), "Analyzing code...")

	l.Hide()
	assert.False(t, l.Active())
}

func TestSurfaceSharesWriter(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf)

	s.Loading.Show("working")
	s.Notify.Success("done")
	out := buf.String()
	assert.Contains(t, out, "working")
	assert.Contains(t, out, "done")
}
