package player

import (
	"sync"
	"time"
)

// Silent tracks state like a player but never opens the audio device.
// Headless commands use it so repository operations can run without sound.
type Silent struct {
	mu         sync.Mutex
	state      State
	level      float64
	finishedCh chan struct{}
}

// NewSilent creates a stopped silent player.
func NewSilent() *Silent {
	return &Silent{level: 1, finishedCh: make(chan struct{})}
}

func (s *Silent) Play(_ string) error {
	s.mu.Lock()
	s.state = Playing
	s.mu.Unlock()
	return nil
}

func (s *Silent) Stop() {
	s.mu.Lock()
	s.state = Stopped
	s.mu.Unlock()
}

func (s *Silent) Pause() {
	s.mu.Lock()
	if s.state == Playing {
		s.state = Paused
	}
	s.mu.Unlock()
}

func (s *Silent) Resume() {
	s.mu.Lock()
	if s.state == Paused {
		s.state = Playing
	}
	s.mu.Unlock()
}

func (s *Silent) Toggle() {
	switch s.State() {
	case Playing:
		s.Pause()
	case Paused:
		s.Resume()
	case Stopped:
	}
}

func (s *Silent) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Silent) Position() time.Duration { return 0 }

func (s *Silent) Duration() time.Duration { return 0 }

func (s *Silent) SetVolume(level float64) {
	s.mu.Lock()
	s.level = clampLevel(level)
	s.mu.Unlock()
}

func (s *Silent) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// FinishedChan never fires.
func (s *Silent) FinishedChan() <-chan struct{} { return s.finishedCh }

var _ Interface = (*Silent)(nil)
