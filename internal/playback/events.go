package playback

import "github.com/llehouerou/mixtape/internal/playlist"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted each time a transition starts a track on the
// transport, including when Random lands on the track already playing.
//
// Not emitted by queue edits (AddTracks, Move, ...) or by Toggle/Stop.
// Renderers redraw the current-track marker on this event.
type TrackChange struct {
	Previous      *playlist.Track
	Current       *playlist.Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []playlist.Track
	Index  int
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // e.g. "play", "advance"
	Name      string // track name if applicable
	Err       error
}
