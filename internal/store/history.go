package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/mixtape/internal/db"
)

// InsertHistory appends a play event. The history collection is never pruned.
func (s *Store) InsertHistory(ctx context.Context, e HistoryEntry) (HistoryEntry, error) {
	if e.PlayedAt == 0 {
		e.PlayedAt = time.Now().Unix()
	}
	content := e.Content
	if content == nil {
		content = []byte{}
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO history (name, content, played_at) VALUES (?, ?, ?)
	`, e.Name, content, e.PlayedAt)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("insert history: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("insert history: %w", err)
	}
	e.ID = id
	return e, nil
}

// RemoveHistory deletes a single history entry.
func (s *Store) RemoveHistory(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove history %d: %w", id, err)
	}
	return nil
}

// ListHistory returns every stored play event in insertion order.
func (s *Store) ListHistory(ctx context.Context) ([]HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, content, played_at FROM history ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var playedAt sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Name, &e.Content, &playedAt); err != nil {
			return nil, err
		}
		e.PlayedAt = dbutil.NullTimeValue(playedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
