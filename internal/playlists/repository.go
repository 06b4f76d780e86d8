// Package playlists owns the playlist catalogue and the active playlist.
//
// Every mutation is applied in memory first, then written through to the
// store before the call returns. If the write fails the repository reloads
// from the store so memory and disk do not silently diverge.
package playlists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/mixtape/internal/playable"
	"github.com/llehouerou/mixtape/internal/playback"
	"github.com/llehouerou/mixtape/internal/playlist"
	"github.com/llehouerou/mixtape/internal/store"
)

// Refs hands out playable references for track payloads.
type Refs interface {
	Acquire(name string, content []byte) (playable.Ref, error)
	Release(ref playable.Ref)
	ReleaseAll(refs []playable.Ref)
}

// Repository caches every stored playlist and keeps the active one in sync
// with the playback queue.
type Repository struct {
	mu sync.Mutex

	store    store.Interface
	refs     Refs
	playback playback.Service
	logger   *log.Logger

	playlists []store.Playlist
	activeID  int64
	hasActive bool
}

// New creates a repository. Call Load to fill the cache.
func New(s store.Interface, refs Refs, svc playback.Service, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Repository{store: s, refs: refs, playback: svc, logger: logger}
}

// Load refreshes the cache from the store. The active playlist stays
// selected if it still exists.
func (r *Repository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx)
}

func (r *Repository) loadLocked(ctx context.Context) error {
	lists, err := r.store.ListPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("load playlists: %w", err)
	}
	r.playlists = lists
	if r.hasActive && r.indexLocked(r.activeID) < 0 {
		r.deactivateLocked()
	}
	return nil
}

// Create stores a new empty playlist.
func (r *Repository) Create(ctx context.Context, name string) (store.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.Playlist{}, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.store.InsertPlaylist(ctx, store.Playlist{Name: name})
	if err != nil {
		return store.Playlist{}, fmt.Errorf("create playlist %q: %w", name, err)
	}
	r.logger.Info("playlist created", "id", p.ID, "name", name)
	return p, r.loadLocked(ctx)
}

// Rename changes a playlist's name.
func (r *Repository) Rename(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return ErrPlaylistNotFound
	}
	r.playlists[i].Name = name
	return r.writeLocked(ctx, i)
}

// Delete removes a playlist. Deleting the active playlist stops playback and
// empties the queue.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return ErrPlaylistNotFound
	}
	if err := r.store.RemovePlaylist(ctx, id); err != nil {
		return fmt.Errorf("delete playlist %d: %w", id, err)
	}
	r.playlists = slices.Delete(r.playlists, i, i+1)
	if r.hasActive && r.activeID == id {
		r.deactivateLocked()
	}
	r.logger.Info("playlist deleted", "id", id)
	return nil
}

// Select makes a playlist active, loads its tracks into the queue and plays
// the first one.
func (r *Repository) Select(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return ErrPlaylistNotFound
	}
	tracks, err := r.materialize(r.playlists[i].Tracks)
	if err != nil {
		return err
	}

	old := r.playback.QueueTracks()
	r.playback.ReplaceTracks(tracks...)
	r.releaseTracks(old)
	r.activeID, r.hasActive = id, true

	if len(tracks) == 0 {
		return r.playback.Stop()
	}
	return r.playback.Play()
}

// AddTracks appends records to the active playlist and the queue. Adding
// to an empty queue starts its first track.
func (r *Repository) AddTracks(ctx context.Context, records []store.TrackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.activeIndexLocked()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	tracks, err := r.materialize(records)
	if err != nil {
		return err
	}

	wasEmpty := r.playback.QueueIsEmpty()
	r.playlists[i].Tracks = append(r.playlists[i].Tracks, records...)
	r.playback.AddTracks(tracks...)
	if err := r.writeLocked(ctx, i); err != nil {
		return err
	}
	if wasEmpty {
		return r.playback.Play()
	}
	return nil
}

// RemoveTrack removes the track at index from the active playlist. The
// queue then stops if empty, otherwise the (clamped) current track plays.
func (r *Repository) RemoveTrack(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.activeIndexLocked()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(r.playlists[i].Tracks) {
		return ErrIndexOutOfRange
	}

	r.playlists[i].Tracks = slices.Delete(r.playlists[i].Tracks, index, index+1)
	if removed, ok := r.playback.RemoveAt(index); ok {
		r.refs.Release(removed.Ref)
	}
	if err := r.writeLocked(ctx, i); err != nil {
		return err
	}

	if r.playback.QueueIsEmpty() {
		return r.playback.Stop()
	}
	return r.playback.Play()
}

// MoveTrack reorders the active playlist. The current track stays current.
func (r *Repository) MoveTrack(ctx context.Context, from, to int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.activeIndexLocked()
	if err != nil {
		return err
	}
	n := len(r.playlists[i].Tracks)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}

	rec := r.playlists[i].Tracks[from]
	r.playlists[i].Tracks = slices.Insert(slices.Delete(r.playlists[i].Tracks, from, from+1), to, rec)
	r.playback.Move(from, to)
	return r.writeLocked(ctx, i)
}

// Shuffle permutes the queue, persists the new order and plays from the top.
// An empty queue is left alone.
func (r *Repository) Shuffle(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasActive || !r.playback.Shuffle() {
		return nil
	}
	i := r.indexLocked(r.activeID)
	r.playlists[i].Tracks = records(r.playback.QueueTracks())
	if err := r.writeLocked(ctx, i); err != nil {
		return err
	}
	return r.playback.Play()
}

// Playlists returns a copy of the cached catalogue in store order.
func (r *Repository) Playlists() []store.Playlist {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]store.Playlist, len(r.playlists))
	for i, p := range r.playlists {
		p.Tracks = slices.Clone(p.Tracks)
		result[i] = p
	}
	return result
}

// Active returns the active playlist, if any.
func (r *Repository) Active() (store.Playlist, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hasActive {
		return store.Playlist{}, false
	}
	p := r.playlists[r.indexLocked(r.activeID)]
	p.Tracks = slices.Clone(p.Tracks)
	return p, true
}

// Close releases every queued reference.
func (r *Repository) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseTracks(r.playback.QueueTracks())
}

func (r *Repository) indexLocked(id int64) int {
	return slices.IndexFunc(r.playlists, func(p store.Playlist) bool { return p.ID == id })
}

func (r *Repository) activeIndexLocked() (int, error) {
	if !r.hasActive {
		return -1, ErrNoActivePlaylist
	}
	return r.indexLocked(r.activeID), nil
}

// writeLocked persists playlist i, resyncing from the store on failure.
func (r *Repository) writeLocked(ctx context.Context, i int) error {
	p := r.playlists[i]
	err := r.store.UpdatePlaylist(ctx, p)
	if err == nil {
		return nil
	}

	r.logger.Error("write-through failed, reloading", "id", p.ID, "err", err)
	if rerr := r.resyncLocked(ctx); rerr != nil {
		r.logger.Error("reload after failed write", "err", rerr)
		err = errors.Join(err, rerr)
	}
	return fmt.Errorf("save playlist %d: %w", p.ID, err)
}

// resyncLocked reloads the cache and rebuilds the queue from the stored
// tracks of the active playlist. Playback stops: the refs it may be reading
// are released.
func (r *Repository) resyncLocked(ctx context.Context) error {
	if err := r.loadLocked(ctx); err != nil {
		return err
	}
	if !r.hasActive {
		return nil
	}
	tracks, err := r.materialize(r.playlists[r.indexLocked(r.activeID)].Tracks)
	if err != nil {
		return err
	}
	old := r.playback.QueueTracks()
	if err := r.playback.Stop(); err != nil {
		r.logger.Warn("stop before reload", "err", err)
	}
	r.playback.ReplaceTracks(tracks...)
	r.releaseTracks(old)
	return nil
}

func (r *Repository) deactivateLocked() {
	r.hasActive = false
	r.activeID = 0
	old := r.playback.QueueTracks()
	_ = r.playback.Stop()
	r.playback.ClearQueue()
	r.releaseTracks(old)
}

// materialize acquires a playable reference per record. On failure every
// reference acquired so far is released.
func (r *Repository) materialize(recs []store.TrackRecord) ([]playlist.Track, error) {
	tracks := make([]playlist.Track, 0, len(recs))
	for _, rec := range recs {
		ref, err := r.refs.Acquire(rec.Name, rec.Content)
		if err != nil {
			r.releaseTracks(tracks)
			return nil, fmt.Errorf("prepare %s: %w", rec.Name, err)
		}
		tracks = append(tracks, playlist.Track{Name: rec.Name, Content: rec.Content, Ref: ref})
	}
	return tracks, nil
}

func (r *Repository) releaseTracks(tracks []playlist.Track) {
	refs := make([]playable.Ref, len(tracks))
	for i, t := range tracks {
		refs[i] = t.Ref
	}
	r.refs.ReleaseAll(refs)
}

func records(tracks []playlist.Track) []store.TrackRecord {
	result := make([]store.TrackRecord, len(tracks))
	for i, t := range tracks {
		result[i] = store.TrackRecord{Name: t.Name, Content: t.Content}
	}
	return result
}
