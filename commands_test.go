package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard
	argv := append([]string{"mixtape", "--db", dbPath, "--log-level", "error"}, args...)
	err := cmd.Run(context.Background(), argv)
	return out.String(), err
}

func mustRun(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, dbPath, args...)
	require.NoError(t, err)
	return out
}

func TestCLI_PlaylistLifecycle(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "mixtape.db")
	music := filepath.Join(dir, "music")
	require.NoError(t, os.MkdirAll(music, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(music, "a.mp3"), []byte("abc"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(music, "cover.jpg"), []byte("x"), 0o600))

	assert.Equal(t, "1\tRoad trip\n", mustRun(t, db, "create", "Road trip"))
	assert.Contains(t, mustRun(t, db, "playlists"), "1\tRoad trip\t0 tracks")

	assert.Equal(t, "added 1 tracks\n", mustRun(t, db, "add", "1", music))
	assert.Contains(t, mustRun(t, db, "playlists"), "1\tRoad trip\t1 tracks\t3 B")

	mustRun(t, db, "rename", "1", "Trip")
	assert.Contains(t, mustRun(t, db, "playlists"), "1\tTrip\t")

	assert.Empty(t, mustRun(t, db, "history"), "editing a playlist does not count as playing")

	mustRun(t, db, "delete", "1")
	assert.Empty(t, mustRun(t, db, "playlists"))
}

func TestCLI_Errors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mixtape.db")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty name", []string{"create", " "}, "Failed to create playlist"},
		{"bad id", []string{"rename", "abc", "x"}, "invalid playlist id"},
		{"unknown id", []string{"delete", "42"}, "Failed to delete playlist"},
		{"no files", []string{"add", "1"}, "no files given"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, db, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
