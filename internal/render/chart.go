package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 30

// BarChart is the terminal chart widget used by every panel. A panel holds
// at most one live chart at a time: constructing a replacement destroys the
// prior instance first.
type BarChart struct {
	title     string
	max       float64
	rows      []barRow
	destroyed bool
}

type barRow struct {
	label  string
	value  float64
	color  lipgloss.Color
	legend string
}

// NewBarChart creates a chart scaled against max. A non-positive max scales
// against the largest added value instead.
func NewBarChart(title string, max float64) *BarChart {
	return &BarChart{title: title, max: max}
}

// Add appends one bar.
func (c *BarChart) Add(label string, value float64, color lipgloss.Color) {
	c.AddWithLegend(label, value, color, "")
}

// AddWithLegend appends one bar with a trailing legend string.
func (c *BarChart) AddWithLegend(label string, value float64, color lipgloss.Color, legend string) {
	c.rows = append(c.rows, barRow{label: label, value: value, color: color, legend: legend})
}

// Destroy releases the chart. A destroyed chart renders nothing; the owning
// panel must not reuse it.
func (c *BarChart) Destroy() {
	c.destroyed = true
	c.rows = nil
}

// Destroyed reports whether Destroy has been called.
func (c *BarChart) Destroyed() bool {
	return c.destroyed
}

// Render draws the chart as aligned horizontal bars.
func (c *BarChart) Render() string {
	if c.destroyed {
		return ""
	}

	max := c.max
	if max <= 0 {
		for _, row := range c.rows {
			if row.value > max {
				max = row.value
			}
		}
	}

	labelWidth := 0
	for _, row := range c.rows {
		if len(row.label) > labelWidth {
			labelWidth = len(row.label)
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(c.title))
	b.WriteString("\n")
	for _, row := range c.rows {
		filled := 0
		if max > 0 {
			filled = int(row.value / max * barWidth)
		}
		if filled > barWidth {
			filled = barWidth
		}
		if filled < 0 {
			filled = 0
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		line := fmt.Sprintf("%-*s %s", labelWidth, row.label,
			lipgloss.NewStyle().Foreground(row.color).Render(bar))
		if row.legend != "" {
			line += " " + dimStyle.Render(row.legend)
		} else {
			line += fmt.Sprintf(" %.2f", row.value)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
