// internal/playback/service_impl.go
package playback

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/mixtape/internal/player"
	"github.com/llehouerou/mixtape/internal/playlist"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

// Option configures the service.
type Option func(*serviceImpl)

// WithRand sets the source used by Random and Shuffle.
func WithRand(rng playlist.Rand) Option {
	return func(s *serviceImpl) { s.rng = rng }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *serviceImpl) { s.logger = l }
}

type serviceImpl struct {
	mu sync.Mutex

	player   player.Interface
	queue    *playlist.PlayingQueue
	rng      playlist.Rand
	recorder Recorder
	logger   *log.Logger

	subs   []*Subscription
	subsMu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

// New creates a playback service and starts watching the player for
// finished tracks. Close stops the watcher.
func New(p player.Interface, q *playlist.PlayingQueue, opts ...Option) Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &serviceImpl{
		player: p,
		queue:  q,
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = playlist.NewRand(0)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.wg.Add(1)
	go s.watchFinished()
	return s
}

func (s *serviceImpl) watchFinished() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.player.FinishedChan():
			if err := s.Next(); err != nil {
				s.logger.Error("auto-advance failed", "err", err)
			}
		}
	}
}

// SetRecorder registers the receiver of started tracks.
func (s *serviceImpl) SetRecorder(r Recorder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorder = r
}

// Play starts the current track.
func (s *serviceImpl) Play() error {
	s.mu.Lock()
	if s.queue.IsEmpty() {
		s.mu.Unlock()
		return ErrEmptyQueue
	}
	prev, prevIdx := clone(s.queue.Current()), s.queue.CurrentIndex()
	started, err := s.playCurrentLocked(prev, prevIdx)
	s.mu.Unlock()
	return s.finish(started, err)
}

// Next advances with wrap-around and plays.
func (s *serviceImpl) Next() error {
	return s.transition("next", (*playlist.PlayingQueue).Next)
}

// Previous steps back with wrap-around and plays.
func (s *serviceImpl) Previous() error {
	return s.transition("previous", (*playlist.PlayingQueue).Previous)
}

// Random plays a uniformly chosen track, possibly the current one.
func (s *serviceImpl) Random() error {
	return s.transition("random", func(q *playlist.PlayingQueue) *playlist.Track {
		return q.Random(s.rng)
	})
}

// JumpTo plays the track at index. Invalid indices are ignored.
func (s *serviceImpl) JumpTo(index int) error {
	return s.transition("jump", func(q *playlist.PlayingQueue) *playlist.Track {
		return q.JumpTo(index)
	})
}

func (s *serviceImpl) transition(op string, move func(*playlist.PlayingQueue) *playlist.Track) error {
	s.mu.Lock()
	prev, prevIdx := clone(s.queue.Current()), s.queue.CurrentIndex()
	if move(s.queue) == nil {
		s.mu.Unlock()
		return nil
	}
	s.logger.Debug("transition", "op", op, "from", prevIdx, "to", s.queue.CurrentIndex())
	started, err := s.playCurrentLocked(prev, prevIdx)
	s.mu.Unlock()
	return s.finish(started, err)
}

// playCurrentLocked starts the current track and emits events.
// Returns the started track so the caller can record it after unlocking.
func (s *serviceImpl) playCurrentLocked(prev *playlist.Track, prevIdx int) (*playlist.Track, error) {
	cur := clone(s.queue.Current())
	before := fromPlayerState(s.player.State())

	if err := s.player.Play(cur.Ref.Path); err != nil {
		s.emitError(ErrorEvent{Operation: "play", Name: cur.Name, Err: err})
		return nil, fmt.Errorf("play %s: %w", cur.Name, err)
	}

	s.emitTrack(TrackChange{
		Previous:      prev,
		Current:       cur,
		PreviousIndex: prevIdx,
		Index:         s.queue.CurrentIndex(),
	})
	if after := fromPlayerState(s.player.State()); after != before {
		s.emitState(StateChange{Previous: before, Current: after})
	}
	return cur, nil
}

func (s *serviceImpl) finish(started *playlist.Track, err error) error {
	if err != nil || started == nil {
		return err
	}
	s.mu.Lock()
	rec := s.recorder
	s.mu.Unlock()
	if rec == nil {
		return nil
	}
	if err := rec.Record(s.ctx, *started); err != nil {
		s.logger.Warn("record history", "track", started.Name, "err", err)
	}
	return nil
}

// Toggle pauses or resumes. From stopped it starts the current track.
func (s *serviceImpl) Toggle() error {
	s.mu.Lock()
	before := fromPlayerState(s.player.State())
	if before == StateStopped {
		s.mu.Unlock()
		if s.QueueIsEmpty() {
			return nil
		}
		return s.Play()
	}
	s.player.Toggle()
	after := fromPlayerState(s.player.State())
	s.mu.Unlock()

	if after != before {
		s.emitState(StateChange{Previous: before, Current: after})
	}
	return nil
}

// Stop halts playback. The current index is kept.
func (s *serviceImpl) Stop() error {
	s.mu.Lock()
	before := fromPlayerState(s.player.State())
	s.player.Stop()
	s.mu.Unlock()

	if before != StateStopped {
		s.emitState(StateChange{Previous: before, Current: StateStopped})
	}
	return nil
}

// ReplaceTracks swaps the whole queue and returns the new current track.
func (s *serviceImpl) ReplaceTracks(tracks ...playlist.Track) *playlist.Track {
	s.mu.Lock()
	t := s.queue.Replace(tracks...)
	s.emitQueueLocked()
	s.mu.Unlock()
	return t
}

// AddTracks appends to the queue.
func (s *serviceImpl) AddTracks(tracks ...playlist.Track) {
	s.mu.Lock()
	s.queue.Add(tracks...)
	s.emitQueueLocked()
	s.mu.Unlock()
}

// RemoveAt removes one track, clamping the current index.
func (s *serviceImpl) RemoveAt(index int) (playlist.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.queue.RemoveAt(index)
	if ok {
		s.emitQueueLocked()
	}
	return t, ok
}

// Move reorders the queue, keeping the current track current.
func (s *serviceImpl) Move(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.queue.Move(from, to)
	if ok {
		s.emitQueueLocked()
	}
	return ok
}

// Shuffle permutes the queue and resets the index to 0.
func (s *serviceImpl) Shuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.queue.Shuffle(s.rng)
	if ok {
		s.emitQueueLocked()
	}
	return ok
}

// ClearQueue empties the queue.
func (s *serviceImpl) ClearQueue() {
	s.mu.Lock()
	s.queue.Clear()
	s.emitQueueLocked()
	s.mu.Unlock()
}

// State returns the current playback state.
func (s *serviceImpl) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fromPlayerState(s.player.State())
}

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Position()
}

// Duration returns the current track duration.
func (s *serviceImpl) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Duration()
}

// Volume returns the player's output level.
func (s *serviceImpl) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Volume()
}

// SetVolume changes the output level without touching playback state.
func (s *serviceImpl) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.SetVolume(level)
}

// CurrentTrack returns a copy of the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *playlist.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.queue.Current())
}

// clone detaches t from the queue's backing slice.
func clone(t *playlist.Track) *playlist.Track {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// QueueTracks returns a copy of the queued tracks.
func (s *serviceImpl) QueueTracks() []playlist.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Tracks()
}

// QueueCurrentIndex returns the current position, -1 when empty.
func (s *serviceImpl) QueueCurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.CurrentIndex()
}

// QueueLen returns the number of queued tracks.
func (s *serviceImpl) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// QueueIsEmpty reports whether nothing is queued.
func (s *serviceImpl) QueueIsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.IsEmpty()
}

// QueueIndexOf returns the position of the first track named name, or -1.
func (s *serviceImpl) QueueIndexOf(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.IndexOf(name)
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close stops the finished watcher and signals subscribers.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

func (s *serviceImpl) emitQueueLocked() {
	e := QueueChange{Tracks: s.queue.Tracks(), Index: s.queue.CurrentIndex()}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendQueue(e)
	}
}

func (s *serviceImpl) emitTrack(e TrackChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendTrack(e)
	}
}

func (s *serviceImpl) emitState(e StateChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendState(e)
	}
}

func (s *serviceImpl) emitError(e ErrorEvent) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendError(e)
	}
}
