// Package store persists playlists and play history in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/mixtape/internal/db"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnknownCollection = errors.New("unknown collection")
)

// TrackRecord is a track as persisted inside a playlist.
type TrackRecord struct {
	Name    string
	Content []byte
}

// Playlist is a persisted playlist with its ordered tracks.
type Playlist struct {
	ID     int64
	Name   string
	Tracks []TrackRecord
}

// HistoryEntry is one persisted play event.
type HistoryEntry struct {
	ID       int64
	Name     string
	Content  []byte
	PlayedAt int64 // unix seconds, 0 when unknown
}

// Store provides durable CRUD over the playlists and history collections.
type Store struct {
	db *sql.DB
}

// Open opens the database at path and makes sure both collections exist.
func Open(ctx context.Context, path string) (*Store, error) {
	sqlDB, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: sqlDB}
	if err := s.initSchema(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}
