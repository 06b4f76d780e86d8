package store

import (
	"context"
	"fmt"
)

const currentSchemaVersion = 1

// Collection names a persisted record collection.
type Collection string

const (
	Playlists Collection = "playlists"
	History   Collection = "history"
)

// collectionDDL holds the statements that create a collection.
// Every statement must be idempotent.
var collectionDDL = map[Collection]string{
	Playlists: `
		CREATE TABLE IF NOT EXISTS playlists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS playlist_tracks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			playlist_id INTEGER NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			content BLOB NOT NULL,
			UNIQUE(playlist_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_playlist_tracks_playlist ON playlist_tracks(playlist_id, position);
	`,
	History: `
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			content BLOB NOT NULL,
			played_at INTEGER
		);
	`,
}

// EnsureCollection creates the tables backing a collection if they are missing.
// Calling it for an existing collection is a no-op.
func (s *Store) EnsureCollection(ctx context.Context, c Collection) error {
	ddl, ok := collectionDDL[c]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create collection %s: %w", c, err)
	}
	return nil
}

func (s *Store) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`)
	if err != nil {
		return err
	}

	for _, c := range []Collection{Playlists, History} {
		if err := s.EnsureCollection(ctx, c); err != nil {
			return err
		}
	}

	// Upgrades are additive only: new collections are created above, existing
	// records are never migrated.
	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}

// SchemaVersion returns the highest schema version recorded in the database.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&v)
	return v, err
}
