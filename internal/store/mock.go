package store

import (
	"context"
	"slices"
	"sync"
)

// Mock is an in-memory test double for Store.
type Mock struct {
	mu        sync.Mutex
	playlists []Playlist
	history   []HistoryEntry
	nextID    int64
	failWith  error
	failWrite error
	updates   int
	closed    bool
}

// NewMock creates an empty mock store.
func NewMock() *Mock {
	return &Mock{nextID: 1}
}

func (m *Mock) InsertPlaylist(_ context.Context, p Playlist) (Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return Playlist{}, m.failWith
	}
	p.ID = m.nextID
	m.nextID++
	p.Tracks = slices.Clone(p.Tracks)
	m.playlists = append(m.playlists, p)
	return p, nil
}

func (m *Mock) UpdatePlaylist(_ context.Context, p Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if m.failWrite != nil {
		return m.failWrite
	}
	m.updates++
	for i := range m.playlists {
		if m.playlists[i].ID == p.ID {
			p.Tracks = slices.Clone(p.Tracks)
			m.playlists[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (m *Mock) RemovePlaylist(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.playlists = slices.DeleteFunc(m.playlists, func(p Playlist) bool { return p.ID == id })
	return nil
}

func (m *Mock) ListPlaylists(_ context.Context) ([]Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]Playlist, len(m.playlists))
	for i, p := range m.playlists {
		p.Tracks = slices.Clone(p.Tracks)
		result[i] = p
	}
	return result, nil
}

func (m *Mock) InsertHistory(_ context.Context, e HistoryEntry) (HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return HistoryEntry{}, m.failWith
	}
	e.ID = m.nextID
	m.nextID++
	m.history = append(m.history, e)
	return e, nil
}

func (m *Mock) RemoveHistory(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = slices.DeleteFunc(m.history, func(e HistoryEntry) bool { return e.ID == id })
	return nil
}

func (m *Mock) ListHistory(_ context.Context) ([]HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return slices.Clone(m.history), nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

// SetError makes every subsequent call fail with err (nil restores success).
func (m *Mock) SetError(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// SetUpdateError makes only UpdatePlaylist fail with err.
func (m *Mock) SetUpdateError(err error) {
	m.mu.Lock()
	m.failWrite = err
	m.mu.Unlock()
}

// Playlist returns the stored playlist with the given id.
func (m *Mock) Playlist(id int64) (Playlist, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.playlists {
		if p.ID == id {
			p.Tracks = slices.Clone(p.Tracks)
			return p, true
		}
	}
	return Playlist{}, false
}

// HistoryLen returns the number of stored history entries.
func (m *Mock) HistoryLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}

// Updates returns how many UpdatePlaylist calls were made.
func (m *Mock) Updates() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updates
}

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
