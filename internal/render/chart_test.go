package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarChartRender(t *testing.T) {
	chart := NewBarChart("Impact Scores", 100)
	chart.Add("CPU Usage", 95, colorGreen)
	chart.Add("Memory Usage", 50, colorAmber)

	out := chart.Render()
	assert.Contains(t, out, "Impact Scores")
	assert.Contains(t, out, "CPU Usage")
	assert.Contains(t, out, "Memory Usage")
	assert.Contains(t, out, "95.00")
	assert.Contains(t, out, "█")
}

func TestBarChartLegend(t *testing.T) {
	chart := NewBarChart("Language Distribution", 100)
	chart.AddWithLegend("Go", 80, colorGreen, "80.0%")

	out := chart.Render()
	assert.Contains(t, out, "80.0%")
	assert.NotContains(t, out, "80.00")
}

func TestBarChartDestroy(t *testing.T) {
	chart := NewBarChart("Impact Scores", 100)
	chart.Add("CPU Usage", 95, colorGreen)

	assert.False(t, chart.Destroyed())
	chart.Destroy()
	assert.True(t, chart.Destroyed())
	assert.Empty(t, chart.Render())
}

func TestBarChartScalesAgainstLargestValue(t *testing.T) {
	chart := NewBarChart("Emissions Breakdown", 0)
	chart.Add("Compute", 50, colorAmber)
	chart.Add("Storage", 25, colorLime)

	out := chart.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// The largest value fills its bar completely.
	assert.Contains(t, lines[1], strings.Repeat("█", barWidth))
}

func TestBarChartClampsOverflow(t *testing.T) {
	chart := NewBarChart("Scores", 100)
	chart.Add("Over", 150, colorRed)

	out := chart.Render()
	assert.NotContains(t, out, strings.Repeat("█", barWidth+1))
}
