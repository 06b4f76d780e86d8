package player

import "testing"

func TestSilent_NeverFinishes(t *testing.T) {
	s := NewSilent()
	_ = s.Play("a.mp3")

	select {
	case <-s.FinishedChan():
		t.Fatal("silent player should never signal finished")
	default:
	}
	if s.Position() != 0 || s.Duration() != 0 {
		t.Error("silent player has no position or duration")
	}
}

func TestSilent_Volume(t *testing.T) {
	s := NewSilent()
	if s.Volume() != 1 {
		t.Errorf("default Volume() = %v, want 1", s.Volume())
	}
	s.SetVolume(-1)
	if s.Volume() != 0 {
		t.Errorf("Volume() = %v, want clamped to 0", s.Volume())
	}
}
