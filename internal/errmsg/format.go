// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpPlaylistCreate Op = "create playlist"
	OpPlaylistRename Op = "rename playlist"
	OpPlaylistDelete Op = "delete playlist"
	OpPlaylistSelect Op = "open playlist"
	OpPlaylistLoad   Op = "load playlists"

	// Track operations
	OpTrackAdd     Op = "add tracks to playlist"
	OpTrackRemove  Op = "remove track from playlist"
	OpTrackMove    Op = "move track"
	OpTrackShuffle Op = "shuffle playlist"

	// History operations
	OpHistoryLoad   Op = "load history"
	OpHistoryRecord Op = "save history"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// File operations
	OpFileLoad Op = "read audio files"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Wrap returns an error reading like FormatWith that still unwraps to err.
// Nil in, nil out.
func Wrap(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &opError{msg: FormatWith(op, context, err), err: err}
}

type opError struct {
	msg string
	err error
}

func (e *opError) Error() string { return e.msg }

func (e *opError) Unwrap() error { return e.err }
