// Package playerbar renders the one-line now-playing bar.
package playerbar

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mixtape/internal/playback"
	"github.com/llehouerou/mixtape/internal/ui"
	"github.com/llehouerou/mixtape/internal/ui/render"
	"github.com/llehouerou/mixtape/internal/ui/styles"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// State holds everything needed to render the bar.
type State struct {
	Playback playback.State
	Name     string
	Position time.Duration
	Duration time.Duration
	Volume   float64 // 0.0 to 1.0
}

// NewState reads the bar state from the playback service.
func NewState(svc playback.Service) State {
	st := State{Playback: svc.State(), Volume: svc.Volume()}
	if !st.Playback.IsActive() {
		return st
	}
	if t := svc.CurrentTrack(); t != nil {
		st.Name = t.Name
	}
	st.Position = svc.Position()
	st.Duration = svc.Duration()
	return st
}

// Render draws the bar at exactly width cells.
// Format: ▶ name  1:23  ▓▓▓▓▓░░░░░  4:56  80%
func Render(s State, width int) string {
	if width <= 0 {
		return ""
	}
	theme := styles.T().S()

	if !s.Playback.IsActive() || s.Name == "" {
		return theme.Muted.Render(render.Fit("■ stopped", width))
	}

	icon := "▶"
	if s.Playback == playback.StatePaused {
		icon = "⏸"
	}
	name := theme.Playing.Render(icon + " " + render.Sanitize(s.Name))

	// The name takes at most half the line; the bar gets the rest.
	nameWidth := min(lipgloss.Width(name), width/2)
	name = render.Fit(name, nameWidth)
	vol := fmt.Sprintf("  %d%%", int(math.Round(s.Volume*100)))
	bar := ProgressBar(s.Position, s.Duration, width-nameWidth-2-len(vol))

	return render.Fit(name+"  "+bar+theme.Muted.Render(vol), width)
}

// ProgressBar renders position/duration as a block bar of width cells.
// Too narrow a width drops the bar and keeps the times.
func ProgressBar(position, duration time.Duration, width int) string {
	posStr := formatDuration(position)
	durStr := formatDuration(duration)

	fixedWidth := len(posStr) + 2 + 2 + len(durStr)
	barWidth := width - fixedWidth
	if barWidth < ui.MinProgressBarWidth {
		return posStr + " / " + durStr
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)
	return posStr + "  " + bar + "  " + durStr
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
