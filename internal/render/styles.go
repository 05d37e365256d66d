package render

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	ratingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	scoreValueStyle = lipgloss.NewStyle().
			Bold(true)
)

// Score color thresholds shared by every panel: green above 80, lime above
// 60, amber above 40, red below.
const (
	colorGreen = lipgloss.Color("35")
	colorLime  = lipgloss.Color("112")
	colorAmber = lipgloss.Color("214")
	colorRed   = lipgloss.Color("160")
)

// chartPalette cycles across multi-series charts.
var chartPalette = []lipgloss.Color{
	colorGreen,
	lipgloss.Color("39"),
	colorAmber,
	lipgloss.Color("135"),
	colorRed,
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 80:
		return colorGreen
	case score >= 60:
		return colorLime
	case score >= 40:
		return colorAmber
	default:
		return colorRed
	}
}
