// Package playable turns in-memory audio payloads into session-scoped
// handles the audio transport can open by path.
//
// A Ref lives until it is released or the Registry is closed. Callers must
// release refs they replace so temp files do not pile up during a session.
package playable

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var ErrClosed = errors.New("playable registry closed")

// Ref is a handle to a materialized payload.
type Ref struct {
	ID   string
	Path string
}

// IsZero reports whether the ref points to nothing.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

// Registry owns the temp directory backing every live Ref.
type Registry struct {
	mu     sync.Mutex
	dir    string
	live   map[string]string // id -> path
	closed bool
}

// NewRegistry creates a registry rooted in a fresh directory under baseDir.
// An empty baseDir uses the system temp directory.
func NewRegistry(baseDir string) (*Registry, error) {
	dir, err := os.MkdirTemp(baseDir, "mixtape-refs-")
	if err != nil {
		return nil, err
	}
	return &Registry{dir: dir, live: make(map[string]string)}, nil
}

// Acquire writes content to a new file and returns its handle.
// The file keeps the extension of name so decoders can be chosen by path.
func (r *Registry) Acquire(name string, content []byte) (Ref, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return Ref{}, ErrClosed
	}

	id := uuid.NewString()
	path := filepath.Join(r.dir, id+strings.ToLower(filepath.Ext(name)))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return Ref{}, fmt.Errorf("materialize %s: %w", name, err)
	}
	r.live[id] = path
	return Ref{ID: id, Path: path}, nil
}

// Release deletes the file behind ref. Releasing an unknown or zero ref is a no-op.
func (r *Registry) Release(ref Ref) {
	if ref.IsZero() {
		return
	}
	r.mu.Lock()
	path, ok := r.live[ref.ID]
	delete(r.live, ref.ID)
	r.mu.Unlock()

	if ok {
		_ = os.Remove(path)
	}
}

// ReleaseAll releases every ref in refs.
func (r *Registry) ReleaseAll(refs []Ref) {
	for _, ref := range refs {
		r.Release(ref)
	}
}

// Live returns the number of refs not yet released.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Close releases every remaining ref and removes the backing directory.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.live = nil
	r.mu.Unlock()

	return os.RemoveAll(r.dir)
}
