package playlist

// PlayingQueue wraps a Playlist with the current playback position.
// The index is -1 exactly when the queue is empty.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
	}
}

// Current returns the track at the current index, or nil if the queue is empty.
func (q *PlayingQueue) Current() *Track {
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the current index (-1 if empty).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// Next advances to the next track, wrapping to 0 after the last one.
// Returns nil on an empty queue.
func (q *PlayingQueue) Next() *Track {
	n := q.playlist.Len()
	if n == 0 {
		return nil
	}
	q.currentIndex = (q.currentIndex + 1) % n
	return q.Current()
}

// Previous steps back one track, wrapping to the last one from 0.
// Returns nil on an empty queue.
func (q *PlayingQueue) Previous() *Track {
	n := q.playlist.Len()
	if n == 0 {
		return nil
	}
	q.currentIndex = (q.currentIndex - 1 + n) % n
	return q.Current()
}

// Random jumps to a uniformly chosen index. The current index may be picked
// again. Returns nil on an empty queue.
func (q *PlayingQueue) Random(rng Rand) *Track {
	n := q.playlist.Len()
	if n == 0 {
		return nil
	}
	q.currentIndex = rng.IntN(n)
	return q.Current()
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Add appends tracks without moving the current index, except that the
// first tracks added to an empty queue become current at index 0.
func (q *PlayingQueue) Add(tracks ...Track) {
	q.playlist.Add(tracks...)
	if q.currentIndex < 0 && q.playlist.Len() > 0 {
		q.currentIndex = 0
	}
}

// Replace clears the queue, adds tracks, and sets index to 0.
// Returns the first track, or nil when tracks is empty.
func (q *PlayingQueue) Replace(tracks ...Track) *Track {
	q.playlist.Clear()
	q.currentIndex = -1
	if len(tracks) == 0 {
		return nil
	}
	q.playlist.Add(tracks...)
	q.currentIndex = 0
	return q.Current()
}

// RemoveAt removes the track at index and clamps the current index to the
// new last valid position. Returns the removed track and false if index is
// out of bounds.
func (q *PlayingQueue) RemoveAt(index int) (Track, bool) {
	t := q.playlist.Track(index)
	if t == nil {
		return Track{}, false
	}
	removed := *t
	q.playlist.Remove(index)

	if index <= q.currentIndex {
		q.currentIndex = min(q.currentIndex, q.playlist.Len()-1)
	}
	return removed, true
}

// Move moves a track and keeps the same track current.
func (q *PlayingQueue) Move(from, to int) bool {
	if !q.playlist.Move(from, to) {
		return false
	}
	switch {
	case q.currentIndex == from:
		q.currentIndex = to
	case from < q.currentIndex && to >= q.currentIndex:
		q.currentIndex--
	case from > q.currentIndex && to <= q.currentIndex:
		q.currentIndex++
	}
	return true
}

// Shuffle permutes the queue and resets the current index to 0.
// Returns false on an empty queue.
func (q *PlayingQueue) Shuffle(rng Rand) bool {
	if q.playlist.Len() == 0 {
		return false
	}
	q.playlist.Shuffle(rng)
	q.currentIndex = 0
	return true
}

// IndexOf returns the index of the first track named name, or -1.
func (q *PlayingQueue) IndexOf(name string) int {
	return q.playlist.IndexOf(name)
}

// Clear removes all tracks and resets playback.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.currentIndex = -1
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
