// Package render provides line-level text helpers for the panels.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Sanitize drops control characters and invalid UTF-8 so a file name can't
// break the terminal. Tabs become spaces.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || unicode.IsControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Row lays left and right out on one line of exactly width cells.
// Styled input is measured without its escape codes. When both don't fit,
// left is cut first.
func Row(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := lipgloss.Width(right)
	if rw >= width {
		return ansi.Truncate(right, width, "")
	}
	left = ansi.Truncate(left, width-rw-1, "…")
	gap := width - lipgloss.Width(left) - rw
	return left + strings.Repeat(" ", gap) + right
}

// Fit cuts s to width cells and pads it with spaces.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// Separator creates a horizontal rule of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
