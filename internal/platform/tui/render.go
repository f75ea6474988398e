package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// styleKey identifies one combination of terminal colours.
type styleKey struct {
	fg, bg core.Color
	styled bool
}

// styleFor returns the lipgloss style for a screen cell's colours.
func styleFor(k styleKey) lipgloss.Style {
	if !k.styled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg.Hex())).
		Background(lipgloss.Color(k.bg.Hex()))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[styleKey]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{fg: cell.FG, bg: cell.BG, styled: cell.Styled}

			// Collect consecutive cells with the same colours
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{fg: cell.FG, bg: cell.BG, styled: cell.Styled}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !start.styled {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
