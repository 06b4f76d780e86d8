package player

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/song.mp3", true},
		{"/music/SONG.MP3", true},
		{"track.flac", true},
		{"take.wav", true},
		{"live.ogg", true},
		{"cover.jpg", false},
		{"notes", false},
		{"album.m4a", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPlay_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.jpg")
	if err := os.WriteFile(path, []byte("not audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := New(0)
	err := p.Play(path)

	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Play() error = %v, want ErrUnsupportedFormat", err)
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
}

func TestPlay_MissingFile(t *testing.T) {
	p := New(0)

	err := p.Play(filepath.Join(t.TempDir(), "missing.mp3"))

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Play() error = %v, want not-exist", err)
	}
}

func TestPlay_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 64)), 0o600); err != nil {
		t.Fatal(err)
	}

	p := New(0)
	if err := p.Play(path); err == nil {
		t.Fatal("Play() should fail on a corrupt file")
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
}

func TestStoppedPlayer_Queries(t *testing.T) {
	p := New(0)

	if p.Position() != 0 {
		t.Errorf("Position() = %v, want 0", p.Position())
	}
	if p.Duration() != 0 {
		t.Errorf("Duration() = %v, want 0", p.Duration())
	}

	// No-ops while stopped
	p.Pause()
	p.Resume()
	p.Toggle()
	p.Stop()
	p.SetVolume(0.5)
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
	if p.Volume() != 0.5 {
		t.Errorf("Volume() = %v, want 0.5 kept for the next stream", p.Volume())
	}
	p.SetVolume(3)
	if p.Volume() != 1 {
		t.Errorf("Volume() = %v, want clamped to 1", p.Volume())
	}
}

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -10},
		{-1, -10},
		{2, 0},
	}

	for _, tt := range tests {
		if got := levelToVolume(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("levelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()

	if err := m.Play("/a.mp3"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	m.Toggle()
	if m.State() != Paused {
		t.Errorf("State() = %v, want Paused", m.State())
	}
	m.Stop()

	if m.LastPlayed() != "/a.mp3" {
		t.Errorf("LastPlayed() = %q, want /a.mp3", m.LastPlayed())
	}
	if m.StopCalls() != 1 {
		t.Errorf("StopCalls() = %d, want 1", m.StopCalls())
	}

	m.SimulateFinished()
	select {
	case <-m.FinishedChan():
	default:
		t.Error("FinishedChan should have a pending signal")
	}
}
