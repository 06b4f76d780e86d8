package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders bold text whose color blends from one end of the
// theme accent to the other, one grapheme at a time.
func Gradient(text string) string {
	return ApplyBoldGradient(text, T().Primary, T().Secondary)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
// Colors that aren't #rrggbb hex fall back to a flat foreground.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if len(clusters) < 2 || err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		// HCL keeps the blend perceptually even.
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Hex())).
			Render(cluster))
	}
	return b.String()
}
