package history

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mixtape/internal/playlist"
	"github.com/llehouerou/mixtape/internal/store"
)

type fakeNav struct {
	tracks []playlist.Track
	jumps  []int
}

func (n *fakeNav) QueueIndexOf(name string) int {
	for i, t := range n.tracks {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (n *fakeNav) JumpTo(index int) error {
	n.jumps = append(n.jumps, index)
	return nil
}

func names(entries []Entry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Name
	}
	return result
}

func TestRecord_ReplayMovesToFront(t *testing.T) {
	s := store.NewMock()
	h := New(s, &fakeNav{}, 0, nil)
	ctx := context.Background()

	for _, n := range []string{"A", "B", "A"} {
		require.NoError(t, h.Record(ctx, playlist.Track{Name: n}))
	}

	assert.Equal(t, []string{"A", "B"}, names(h.Entries()))
	assert.Equal(t, 3, s.HistoryLen(), "store keeps every play")
}

func TestRecord_CapsView(t *testing.T) {
	s := store.NewMock()
	h := New(s, &fakeNav{}, 0, nil)
	ctx := context.Background()

	for i := range 8 {
		require.NoError(t, h.Record(ctx, playlist.Track{Name: fmt.Sprintf("t%d", i)}))
	}

	assert.Equal(t, []string{"t7", "t6", "t5", "t4", "t3"}, names(h.Entries()))
	assert.Equal(t, 8, s.HistoryLen())
}

func TestRecord_CustomLimit(t *testing.T) {
	h := New(store.NewMock(), &fakeNav{}, 2, nil)
	ctx := context.Background()

	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, h.Record(ctx, playlist.Track{Name: n}))
	}

	assert.Equal(t, []string{"C", "B"}, names(h.Entries()))
	assert.Equal(t, 2, h.Limit())
}

func TestRecord_StoreFailureKeepsView(t *testing.T) {
	s := store.NewMock()
	s.SetError(errors.New("disk full"))
	h := New(s, &fakeNav{}, 0, nil)

	err := h.Record(context.Background(), playlist.Track{Name: "A"})

	require.Error(t, err)
	assert.Equal(t, []string{"A"}, names(h.Entries()))
}

func TestLoadRecent_LastEntriesReversed(t *testing.T) {
	s := store.NewMock()
	ctx := context.Background()
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		_, err := s.InsertHistory(ctx, store.HistoryEntry{Name: n})
		require.NoError(t, err)
	}
	h := New(s, &fakeNav{}, 0, nil)

	require.NoError(t, h.LoadRecent(ctx))

	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, names(h.Entries()))
}

func TestLoadRecent_FewerThanLimit(t *testing.T) {
	s := store.NewMock()
	ctx := context.Background()
	for _, n := range []string{"a", "b"} {
		_, err := s.InsertHistory(ctx, store.HistoryEntry{Name: n})
		require.NoError(t, err)
	}
	h := New(s, &fakeNav{}, 0, nil)

	require.NoError(t, h.LoadRecent(ctx))

	assert.Equal(t, []string{"b", "a"}, names(h.Entries()))
}

func TestLoadRecent_Empty(t *testing.T) {
	h := New(store.NewMock(), &fakeNav{}, 0, nil)

	require.NoError(t, h.LoadRecent(context.Background()))

	assert.Empty(t, h.Entries())
}

func TestLoadRecent_StoreError(t *testing.T) {
	s := store.NewMock()
	s.SetError(errors.New("locked"))
	h := New(s, &fakeNav{}, 0, nil)

	assert.Error(t, h.LoadRecent(context.Background()))
}

func TestActivate(t *testing.T) {
	nav := &fakeNav{tracks: []playlist.Track{{Name: "A"}, {Name: "B"}, {Name: "B"}}}
	h := New(store.NewMock(), nav, 0, nil)

	require.NoError(t, h.Activate(Entry{Name: "B"}))
	require.NoError(t, h.Activate(Entry{Name: "missing"}))

	assert.Equal(t, []int{1}, nav.jumps, "first match only; missing names are ignored")
}

func TestEntries_ReturnsCopy(t *testing.T) {
	h := New(store.NewMock(), &fakeNav{}, 0, nil)
	require.NoError(t, h.Record(context.Background(), playlist.Track{Name: "A"}))

	entries := h.Entries()
	entries[0].Name = "changed"

	assert.Equal(t, "A", h.Entries()[0].Name)
}
