// Package view projects application state into a render-ready description.
// Nothing here mutates state or touches the terminal.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/mixtape/internal/history"
	"github.com/llehouerou/mixtape/internal/playback"
	"github.com/llehouerou/mixtape/internal/playlist"
	"github.com/llehouerou/mixtape/internal/store"
)

const (
	ellipsis    = "…"
	minWidth    = 8
	historyIcon = "♪ "
)

// Input is a snapshot of everything the view depends on.
type Input struct {
	Playlists []store.Playlist
	ActiveID  int64
	HasActive bool

	Tracks  []playlist.Track
	Current int
	State   playback.State

	History []history.Entry

	Now   time.Time
	Width int // label column width in cells; 0 disables truncation
}

// Row is one line of a list panel.
type Row struct {
	Label  string
	Detail string
	Marked bool
}

// View describes what the screen should show.
type View struct {
	Playlists  []Row
	Tracks     []Row
	History    []Row
	Title      string // active playlist name, or a hint
	NowPlaying string
	Status     string
}

// Project builds the view for in.
func Project(in Input) View {
	v := View{
		Playlists: make([]Row, 0, len(in.Playlists)),
		Tracks:    make([]Row, 0, len(in.Tracks)),
		History:   make([]Row, 0, len(in.History)),
		Title:     "No playlist selected",
		Status:    in.State.String(),
	}

	for _, p := range in.Playlists {
		active := in.HasActive && p.ID == in.ActiveID
		if active {
			v.Title = p.Name
		}
		v.Playlists = append(v.Playlists, Row{
			Label:  fit(p.Name, in.Width),
			Detail: playlistDetail(p.Tracks),
			Marked: active,
		})
	}

	for i, t := range in.Tracks {
		v.Tracks = append(v.Tracks, Row{
			Label:  fit(t.Name, in.Width),
			Detail: humanize.Bytes(uint64(len(t.Content))),
			Marked: i == in.Current,
		})
	}

	for _, e := range in.History {
		row := Row{Label: fit(historyIcon+e.Name, in.Width)}
		if e.PlayedAt > 0 && !in.Now.IsZero() {
			row.Detail = humanize.RelTime(time.Unix(e.PlayedAt, 0), in.Now, "ago", "from now")
		}
		v.History = append(v.History, row)
	}

	if in.Current >= 0 && in.Current < len(in.Tracks) && in.State.IsActive() {
		v.NowPlaying = in.Tracks[in.Current].Name
	}
	if in.State.IsActive() && len(in.Tracks) > 0 {
		v.Status = fmt.Sprintf("%s · %d/%d", in.State, in.Current+1, len(in.Tracks))
	}

	return v
}

func playlistDetail(tracks []store.TrackRecord) string {
	var size uint64
	for _, t := range tracks {
		size += uint64(len(t.Content))
	}
	noun := "tracks"
	if len(tracks) == 1 {
		noun = "track"
	}
	return fmt.Sprintf("%d %s · %s", len(tracks), noun, humanize.Bytes(size))
}

// fit truncates s to width cells and pads it so columns line up.
func fit(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width <= 0 {
		return s
	}
	width = max(width, minWidth)
	return runewidth.FillRight(runewidth.Truncate(s, width, ellipsis), width)
}
