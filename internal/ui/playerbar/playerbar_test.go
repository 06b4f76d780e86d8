package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/mixtape/internal/playback"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{83 * time.Second, "1:23"},
		{61 * time.Minute, "61:00"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	got := ProgressBar(30*time.Second, time.Minute, 22)
	want := "0:30  ▓▓▓▓▓░░░░░  1:00"
	if got != want {
		t.Errorf("ProgressBar() = %q, want %q", got, want)
	}
}

func TestProgressBar_Narrow(t *testing.T) {
	got := ProgressBar(30*time.Second, time.Minute, 10)
	if got != "0:30 / 1:00" {
		t.Errorf("ProgressBar() = %q", got)
	}
}

func TestProgressBar_UnknownDuration(t *testing.T) {
	got := ProgressBar(5*time.Second, 0, 22)
	if strings.Contains(got, filledBlock) {
		t.Errorf("unknown duration should render an empty bar: %q", got)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"stopped", State{Playback: playback.StateStopped}, "stopped"},
		{"playing", State{Playback: playback.StatePlaying, Name: "A.mp3", Duration: time.Minute}, "▶ A.mp3"},
		{"volume", State{Playback: playback.StatePlaying, Name: "A.mp3", Volume: 0.8}, "80%"},
		{"paused", State{Playback: playback.StatePaused, Name: "A.mp3"}, "⏸ A.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(tt.state, 60)
			if !strings.Contains(ansi.Strip(out), tt.want) {
				t.Errorf("Render() = %q, want it to contain %q", ansi.Strip(out), tt.want)
			}
			if w := lipgloss.Width(out); w != 60 {
				t.Errorf("width = %d, want 60", w)
			}
		})
	}
}
