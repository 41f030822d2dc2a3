package tui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/northern-dash/internal/core"
)

// colorStyles holds one lipgloss style per xterm palette index.
// Index 0 is the terminal default color.
var colorStyles [256]lipgloss.Style

func init() {
	colorStyles[core.ColorDefault] = lipgloss.NewStyle()
	for i := 1; i < len(colorStyles); i++ {
		colorStyles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}

// drawPanel draws a bordered box of lines centered horizontally with its
// top edge at y. Lines are wrapped to fit the screen.
func drawPanel(dst *core.Screen, y int, title string, lines []string, c core.Color) {
	maxText := max(dst.Width()-6, 8)

	var body []string
	for _, l := range lines {
		wrapped := lipgloss.NewStyle().Width(maxText).Render(cellSafe(l))
		for _, w := range strings.Split(wrapped, "\n") {
			body = append(body, strings.TrimRight(w, " "))
		}
	}

	width := len([]rune(title))
	for _, l := range body {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(body) + 4
	box := core.NewRect((dst.Width()-boxW)/2, y, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	titleLen := len([]rune(title))
	dst.DrawTextColor(box.X+(boxW-titleLen)/2, box.Y+1, title, core.ColorBrightYellow)
	for i, l := range body {
		dst.DrawTextColor(box.X+2, box.Y+3+i, l, c)
	}
}

// cellSafe drops symbols and combining marks that do not occupy exactly
// one screen cell, such as emoji and variation selectors.
func cellSafe(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.So, r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Cf, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
