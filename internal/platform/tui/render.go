package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calderforge/runeward/internal/view"
)

// colorStyles maps view.Color to lipgloss styles.
var colorStyles = map[view.Color]lipgloss.Style{
	view.ColorDefault:       lipgloss.NewStyle(),
	view.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	view.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	view.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	view.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	view.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	view.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	view.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	view.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	view.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	view.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	view.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	view.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	view.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	view.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	view.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	view.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *view.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[view.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
