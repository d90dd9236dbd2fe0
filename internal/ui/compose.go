package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose draws popup over background with its top-left cell at (x, y).
// Both strings may carry ANSI styling. Background rows are extended with
// spaces when the popup lands past their end; parts of the popup left of
// column 0 or above row 0 are clipped.
func Compose(background, popup string, x, y int) string {
	bgLines := strings.Split(background, "\n")
	popLines := strings.Split(popup, "\n")
	popW := lipgloss.Width(popup)

	for i, line := range popLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}

		if w := ansi.StringWidth(line); w < popW {
			line += strings.Repeat(" ", popW-w)
		}
		col, width := x, popW
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			width += col
			col = 0
		}
		if width <= 0 {
			continue
		}

		bg := bgLines[row]
		bgW := ansi.StringWidth(bg)

		left := ansi.Truncate(bg, col, "")
		if bgW < col {
			left += strings.Repeat(" ", col-bgW)
		}
		right := ""
		if bgW > col+width {
			right = ansi.TruncateLeft(bg, col+width, "")
		}
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
