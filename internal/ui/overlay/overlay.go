// Package overlay draws popups on top of a rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Center draws popup over the middle of base, a width x height block.
func Center(base, popup string, width, height int) string {
	x := max((width-lipgloss.Width(popup))/2, 0)
	y := max((height-lipgloss.Height(popup))/2, 0)
	return Place(base, popup, x, y, width)
}

// Place writes popup over base with its top-left corner at column x, row y.
// Base cells outside the popup keep their styling. Popup rows past the end
// of base are dropped.
func Place(base, popup string, x, y, width int) string {
	lines := strings.Split(base, "\n")
	for i, pl := range strings.Split(popup, "\n") {
		row := y + i
		if row >= len(lines) {
			break
		}
		line := lines[row]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		end := x + ansi.StringWidth(pl)
		lines[row] = ansi.Cut(line, 0, x) + pl + ansi.Cut(line, end, max(width, end))
	}
	return strings.Join(lines, "\n")
}
