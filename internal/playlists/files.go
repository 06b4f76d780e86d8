package playlists

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/llehouerou/mixtape/internal/player"
	"github.com/llehouerou/mixtape/internal/store"
)

// ExpandPaths replaces each directory in paths with the audio files found
// under it, sorted by path. Files are kept as given.
func ExpandPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && player.IsMusicFile(p) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		slices.Sort(found)
		out = append(out, found...)
	}
	return out, nil
}

// ReadFiles loads audio files from disk as track records named after their
// base name. Paths the transport cannot decode are skipped.
func ReadFiles(paths []string) ([]store.TrackRecord, error) {
	records := make([]store.TrackRecord, 0, len(paths))
	for _, path := range paths {
		if !player.IsMusicFile(path) {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, store.TrackRecord{
			Name:    filepath.Base(path),
			Content: content,
		})
	}
	return records, nil
}
