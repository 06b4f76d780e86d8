package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "navigation", "playlists", "tracks"
}

// Contexts lists binding contexts in help display order.
var Contexts = []string{"global", "playback", "navigation", "playlists", "tracks"}

// All contains every key binding.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch panel", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"l", "right"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"h", "left"}, "Previous track", "playback"},
	{ActionRandom, []string{"R"}, "Random track", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},

	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigation"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigation"},
	{ActionSelect, []string{"enter"}, "Open / play", "navigation"},

	{ActionNewPlaylist, []string{"n"}, "New playlist", "playlists"},
	{ActionRename, []string{"r"}, "Rename playlist", "playlists"},
	{ActionDeletePlaylist, []string{"d"}, "Delete playlist", "playlists"},

	{ActionAddTracks, []string{"a"}, "Add files", "tracks"},
	{ActionRemoveTrack, []string{"x", "delete"}, "Remove track", "tracks"},
	{ActionMoveTrackDown, []string{"J"}, "Move track down", "tracks"},
	{ActionMoveTrackUp, []string{"K"}, "Move track up", "tracks"},
	{ActionShuffle, []string{"S"}, "Shuffle playlist", "tracks"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
