package player

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

const (
	speakerSampleRate = beep.SampleRate(44100)
	resampleQuality   = 4
	defaultBuffer     = 100 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player plays one file at a time through the system speaker.
type Player struct {
	mu       sync.Mutex
	state    State
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	buffer   time.Duration
	level    float64 // 0.0 to 1.0, kept across tracks

	// generation invalidates finish callbacks of streams that were replaced.
	generation atomic.Uint64
	finishedCh chan struct{}
}

// New creates a stopped player. buffer sets the speaker latency; zero uses
// a 100ms default.
func New(buffer time.Duration) *Player {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Player{
		state:      Stopped,
		buffer:     buffer,
		level:      1,
		finishedCh: make(chan struct{}, 1),
	}
}

// Play starts playback of the audio file at path, replacing any current stream.
func (p *Player) Play(path string) error {
	p.Stop()

	// Drain any stale finish signal from the previous track
	select {
	case <-p.finishedCh:
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(path, f)
	if err != nil {
		f.Close()
		return err
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerSampleRate, speakerSampleRate.N(p.buffer))
	})
	if speakerErr != nil {
		streamer.Close()
		f.Close()
		return speakerErr
	}

	var source beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, speakerSampleRate, streamer)
	}

	gen := p.generation.Add(1)

	p.mu.Lock()
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: source}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.level),
		Silent:   p.level == 0,
	}
	p.state = Playing
	volume := p.volume
	p.mu.Unlock()

	// The callback runs on the speaker goroutine with the speaker lock held,
	// so it must only signal.
	speaker.Play(beep.Seq(volume, beep.Callback(func() {
		if p.generation.Load() != gen {
			return
		}
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
	})))

	return nil
}

// Stop stops playback and releases the open file.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Stopped {
		return
	}

	p.generation.Add(1)
	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.state = Stopped
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the length of the current stream.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// FinishedChan receives a value each time a stream plays to its end.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}
