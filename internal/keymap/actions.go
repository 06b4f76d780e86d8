// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionStop       Action = "stop"
	ActionNextTrack  Action = "next_track"
	ActionPrevTrack  Action = "prev_track"
	ActionRandom     Action = "random_track"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"

	// Navigation actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select" // enter - open playlist / play track / replay history

	// Playlist management actions
	ActionNewPlaylist    Action = "new_playlist"
	ActionRename         Action = "rename"
	ActionDeletePlaylist Action = "delete_playlist"

	// Playlist track editing
	ActionAddTracks     Action = "add_tracks"
	ActionRemoveTrack   Action = "remove_track"
	ActionMoveTrackUp   Action = "move_track_up"
	ActionMoveTrackDown Action = "move_track_down"
	ActionShuffle       Action = "shuffle"
)
