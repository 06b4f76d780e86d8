package store

import "context"

// Interface defines the store contract for dependency injection and testing.
type Interface interface {
	InsertPlaylist(ctx context.Context, p Playlist) (Playlist, error)
	UpdatePlaylist(ctx context.Context, p Playlist) error
	RemovePlaylist(ctx context.Context, id int64) error
	ListPlaylists(ctx context.Context) ([]Playlist, error)

	InsertHistory(ctx context.Context, e HistoryEntry) (HistoryEntry, error)
	RemoveHistory(ctx context.Context, id int64) error
	ListHistory(ctx context.Context) ([]HistoryEntry, error)

	Close() error
}

// Verify Store implements Interface at compile time.
var _ Interface = (*Store)(nil)
