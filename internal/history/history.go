// Package history keeps the short recently-played list.
//
// Every play is appended to the store, which is never pruned. The in-memory
// view is capped and de-duplicated by track name on Record only; LoadRecent
// takes the raw tail of the store as is.
package history

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/mixtape/internal/playlist"
	"github.com/llehouerou/mixtape/internal/store"
)

// DefaultLimit is the size of the recently-played view.
const DefaultLimit = 5

// Navigator is the part of the playback service the tracker drives.
type Navigator interface {
	QueueIndexOf(name string) int
	JumpTo(index int) error
}

// Entry is one row of the recently-played view.
type Entry struct {
	Name     string
	Content  []byte
	PlayedAt int64
}

// Tracker maintains the recently-played view and persists every play.
type Tracker struct {
	mu      sync.Mutex
	store   store.Interface
	nav     Navigator
	limit   int
	entries []Entry
	logger  *log.Logger
}

// New creates a tracker. A limit below 1 uses DefaultLimit.
func New(s store.Interface, nav Navigator, limit int, logger *log.Logger) *Tracker {
	if limit < 1 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{store: s, nav: nav, limit: limit, logger: logger}
}

// Record moves t to the front of the view and appends it to the store.
// The view is updated even when the store write fails.
func (h *Tracker) Record(ctx context.Context, t playlist.Track) error {
	h.mu.Lock()
	h.entries = slices.DeleteFunc(h.entries, func(e Entry) bool { return e.Name == t.Name })
	h.entries = slices.Insert(h.entries, 0, Entry{Name: t.Name, Content: t.Content})
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
	h.mu.Unlock()

	stored, err := h.store.InsertHistory(ctx, store.HistoryEntry{Name: t.Name, Content: t.Content})
	if err != nil {
		h.logger.Error("persist history", "track", t.Name, "err", err)
		return fmt.Errorf("record %s: %w", t.Name, err)
	}

	h.mu.Lock()
	if len(h.entries) > 0 && h.entries[0].Name == t.Name {
		h.entries[0].PlayedAt = stored.PlayedAt
	}
	h.mu.Unlock()
	return nil
}

// LoadRecent replaces the view with the last stored entries, most recent first.
func (h *Tracker) LoadRecent(ctx context.Context) error {
	stored, err := h.store.ListHistory(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	tail := stored[max(0, len(stored)-h.limit):]
	h.entries = make([]Entry, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		h.entries = append(h.entries, Entry{
			Name:     tail[i].Name,
			Content:  tail[i].Content,
			PlayedAt: tail[i].PlayedAt,
		})
	}
	return nil
}

// Activate plays the first queued track named like e.
// A track no longer in the queue is silently ignored.
func (h *Tracker) Activate(e Entry) error {
	idx := h.nav.QueueIndexOf(e.Name)
	if idx < 0 {
		return nil
	}
	return h.nav.JumpTo(idx)
}

// Entries returns a copy of the view, most recent first.
func (h *Tracker) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// Limit returns the view capacity.
func (h *Tracker) Limit() int {
	return h.limit
}
