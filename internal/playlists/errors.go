package playlists

import "errors"

// Input rejections. They leave every list untouched.
var (
	ErrEmptyName        = errors.New("playlist name cannot be empty")
	ErrNoActivePlaylist = errors.New("no active playlist")
	ErrIndexOutOfRange  = errors.New("track index out of range")
	ErrPlaylistNotFound = errors.New("playlist not found")
)
