package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the output level (0.0 to 1.0). It applies to the current
// stream and every later one.
func (p *Player) SetVolume(level float64) {
	level = clampLevel(level)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Silent = level == 0
	p.volume.Volume = levelToVolume(level)
	speaker.Unlock()
}

// Volume returns the output level.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func clampLevel(level float64) float64 {
	return min(max(level, 0), 1)
}

// levelToVolume maps a 0.0-1.0 level to beep's base-2 logarithmic scale:
// 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
