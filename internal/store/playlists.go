package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/mixtape/internal/db"
)

// InsertPlaylist stores a new playlist with its tracks and returns it with
// the identifier assigned by the database.
func (s *Store) InsertPlaylist(ctx context.Context, p Playlist) (Playlist, error) {
	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO playlists (name, created_at) VALUES (?, ?)
		`, p.Name, time.Now().Unix())
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		p.ID = id
		return insertTracks(ctx, tx, p.ID, p.Tracks)
	})
	if err != nil {
		return Playlist{}, fmt.Errorf("insert playlist: %w", err)
	}
	return p, nil
}

// UpdatePlaylist replaces the name and the whole track list of an existing
// playlist. Returns ErrNotFound if no playlist has p.ID.
func (s *Store) UpdatePlaylist(ctx context.Context, p Playlist) error {
	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `UPDATE playlists SET name = ? WHERE id = ?`, p.Name, p.ID)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_tracks WHERE playlist_id = ?`, p.ID); err != nil {
			return err
		}
		return insertTracks(ctx, tx, p.ID, p.Tracks)
	})
	if err != nil {
		return fmt.Errorf("update playlist %d: %w", p.ID, err)
	}
	return nil
}

// RemovePlaylist deletes a playlist and all its tracks.
// Removing an unknown id is not an error.
func (s *Store) RemovePlaylist(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove playlist %d: %w", id, err)
	}
	return nil
}

// ListPlaylists returns every playlist with its tracks, in insertion order.
func (s *Store) ListPlaylists(ctx context.Context) ([]Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM playlists ORDER BY id`)
	if err != nil {
		return nil, err
	}

	var playlists []Playlist
	index := make(map[int64]int)
	for rows.Next() {
		var p Playlist
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			rows.Close()
			return nil, err
		}
		index[p.ID] = len(playlists)
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// Tracks are read after the playlist cursor is closed: the pool holds a
	// single connection.
	trackRows, err := s.db.QueryContext(ctx, `
		SELECT playlist_id, name, content
		FROM playlist_tracks
		ORDER BY playlist_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer trackRows.Close()

	for trackRows.Next() {
		var playlistID int64
		var t TrackRecord
		if err := trackRows.Scan(&playlistID, &t.Name, &t.Content); err != nil {
			return nil, err
		}
		i, ok := index[playlistID]
		if !ok {
			continue
		}
		playlists[i].Tracks = append(playlists[i].Tracks, t)
	}
	return playlists, trackRows.Err()
}

func insertTracks(ctx context.Context, tx *sql.Tx, playlistID int64, tracks []TrackRecord) error {
	if len(tracks) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO playlist_tracks (playlist_id, position, name, content)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range tracks {
		content := t.Content
		if content == nil {
			content = []byte{}
		}
		if _, err := stmt.ExecContext(ctx, playlistID, i, t.Name, content); err != nil {
			return err
		}
	}
	return nil
}
