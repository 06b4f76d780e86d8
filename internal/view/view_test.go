package view

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mixtape/internal/history"
	"github.com/llehouerou/mixtape/internal/playback"
	"github.com/llehouerou/mixtape/internal/playlist"
	"github.com/llehouerou/mixtape/internal/store"
)

func sampleInput() Input {
	return Input{
		Playlists: []store.Playlist{
			{ID: 1, Name: "Chill", Tracks: []store.TrackRecord{{Name: "a.mp3", Content: make([]byte, 2000)}}},
			{ID: 2, Name: "Drive", Tracks: []store.TrackRecord{{Name: "b.mp3"}, {Name: "c.mp3"}}},
		},
		ActiveID:  2,
		HasActive: true,
		Tracks: []playlist.Track{
			{Name: "b.mp3", Content: make([]byte, 1500)},
			{Name: "c.mp3"},
		},
		Current: 1,
		State:   playback.StatePlaying,
		History: []history.Entry{
			{Name: "c.mp3", PlayedAt: 1_700_000_000},
		},
		Now: time.Unix(1_700_000_120, 0),
	}
}

func TestProject_MarksActiveAndCurrent(t *testing.T) {
	v := Project(sampleInput())

	require.Len(t, v.Playlists, 2)
	assert.False(t, v.Playlists[0].Marked)
	assert.True(t, v.Playlists[1].Marked)
	assert.Equal(t, "Drive", v.Title)

	require.Len(t, v.Tracks, 2)
	assert.False(t, v.Tracks[0].Marked)
	assert.True(t, v.Tracks[1].Marked)
	assert.Equal(t, "c.mp3", v.NowPlaying)
	assert.Equal(t, "Playing · 2/2", v.Status)
}

func TestProject_Details(t *testing.T) {
	v := Project(sampleInput())

	assert.Equal(t, "1 track · 2.0 kB", v.Playlists[0].Detail)
	assert.Equal(t, "2 tracks · 0 B", v.Playlists[1].Detail)
	assert.Equal(t, "1.5 kB", v.Tracks[0].Detail)
	assert.Equal(t, "2 minutes ago", v.History[0].Detail)
	assert.Equal(t, "♪ c.mp3", v.History[0].Label)
}

func TestProject_Empty(t *testing.T) {
	v := Project(Input{Current: -1})

	assert.Empty(t, v.Playlists)
	assert.Empty(t, v.Tracks)
	assert.Empty(t, v.History)
	assert.Equal(t, "No playlist selected", v.Title)
	assert.Empty(t, v.NowPlaying)
	assert.Equal(t, "Stopped", v.Status)
}

func TestProject_StoppedHasNoNowPlaying(t *testing.T) {
	in := sampleInput()
	in.State = playback.StateStopped

	v := Project(in)

	assert.Empty(t, v.NowPlaying)
	assert.Equal(t, "Stopped", v.Status)
	assert.True(t, v.Tracks[1].Marked, "current index is still highlighted")
}

func TestProject_IsPure(t *testing.T) {
	in := sampleInput()

	assert.Equal(t, Project(in), Project(in))
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"no width", "song.mp3", 0, "song.mp3"},
		{"pads short", "a.mp3", 10, "a.mp3     "},
		{"truncates long", "a-very-long-name.mp3", 10, "a-very-lo…"},
		{"minimum width", "abcdefghijkl", 3, "abcdefg…"},
		{"newlines flattened", "a\nb", 0, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fit(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			if tt.width > 0 {
				assert.Equal(t, max(tt.width, minWidth), runewidth.StringWidth(got))
			}
		})
	}
}

func TestFit_WideRunes(t *testing.T) {
	got := fit("日本語のうた.mp3", 8)

	assert.Equal(t, 8, runewidth.StringWidth(got))
}
