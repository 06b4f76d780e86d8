package playback

import (
	"context"
	"errors"
	"time"

	"github.com/llehouerou/mixtape/internal/playlist"
)

// ErrEmptyQueue is returned by Play when there is nothing to play.
var ErrEmptyQueue = errors.New("queue is empty")

// Recorder receives every track that started playing.
type Recorder interface {
	Record(ctx context.Context, t playlist.Track) error
}

// Service defines the playback service contract.
type Service interface {
	// Playback control. Transitions on an empty queue are no-ops.
	Play() error
	Toggle() error
	Stop() error
	Next() error
	Previous() error
	Random() error
	JumpTo(index int) error

	// Queue manipulation (no playback side effects)
	ReplaceTracks(tracks ...playlist.Track) *playlist.Track
	AddTracks(tracks ...playlist.Track)
	RemoveAt(index int) (playlist.Track, bool)
	Move(from, to int) bool
	Shuffle() bool
	ClearQueue()

	// State queries
	State() State
	Position() time.Duration
	Duration() time.Duration
	CurrentTrack() *playlist.Track

	// Output level, 0.0 to 1.0
	Volume() float64
	SetVolume(level float64)

	// Queue queries
	QueueTracks() []playlist.Track
	QueueCurrentIndex() int
	QueueLen() int
	QueueIsEmpty() bool
	QueueIndexOf(name string) int

	SetRecorder(r Recorder)
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
