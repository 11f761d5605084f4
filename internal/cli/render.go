package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// labelPalette cycles over distinct terminal colors for positive labels.
// Background (0) stays unstyled.
var labelPalette = []lipgloss.Color{
	lipgloss.Color("36"),  // teal
	lipgloss.Color("220"), // amber
	lipgloss.Color("167"), // soft red
	lipgloss.Color("75"),  // light blue
	lipgloss.Color("35"),  // green
	lipgloss.Color("213"), // pink
	lipgloss.Color("208"), // orange
	lipgloss.Color("141"), // violet
}

var styleBackground = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// renderGrid formats a label matrix as space-separated integers, one row
// per line. Columns are right-aligned to the widest label.
func renderGrid(labels [][]int) string {
	width := 1
	for _, row := range labels {
		for _, v := range row {
			if l := len(strconv.Itoa(v)); l > width {
				width = l
			}
		}
	}

	var sb strings.Builder
	for _, row := range labels {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			s := strconv.Itoa(v)
			for pad := width - len(s); pad > 0; pad-- {
				sb.WriteByte(' ')
			}
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// renderGridColor is renderGrid with each label tinted by a palette color
// so blobs are visually distinguishable; label 0 is dimmed.
func renderGridColor(labels [][]int) string {
	styles := map[int]lipgloss.Style{0: styleBackground}

	var sb strings.Builder
	for _, row := range labels {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			st, ok := styles[v]
			if !ok {
				st = lipgloss.NewStyle().Foreground(labelPalette[(v-1)%len(labelPalette)])
				styles[v] = st
			}
			sb.WriteString(st.Render(strconv.Itoa(v)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
