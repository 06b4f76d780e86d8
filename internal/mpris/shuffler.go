package mpris

import "context"

// Shuffler reorders and persists the active playlist.
type Shuffler interface {
	Shuffle(ctx context.Context) error
}
