// Package app owns every long-lived component of a mixtape session and
// wires them together.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/mixtape/internal/config"
	"github.com/llehouerou/mixtape/internal/history"
	"github.com/llehouerou/mixtape/internal/logging"
	"github.com/llehouerou/mixtape/internal/playable"
	"github.com/llehouerou/mixtape/internal/playback"
	"github.com/llehouerou/mixtape/internal/player"
	"github.com/llehouerou/mixtape/internal/playlist"
	"github.com/llehouerou/mixtape/internal/playlists"
	"github.com/llehouerou/mixtape/internal/store"
	"github.com/llehouerou/mixtape/internal/view"
)

// Deps are the leaf components an App is built from.
type Deps struct {
	Store  store.Interface
	Player player.Interface
	Refs   *playable.Registry
	Rand   playlist.Rand // nil uses a clock-seeded source
}

// App is the single owner of session state.
type App struct {
	Playback  playback.Service
	Playlists *playlists.Repository
	History   *history.Tracker

	store  store.Interface
	player player.Interface
	refs   *playable.Registry
	logger *log.Logger
}

// Open builds an App on the configured database. When silent is true no
// audio device is ever opened.
func Open(ctx context.Context, cfg *config.Config, logger *log.Logger, silent bool) (*App, error) {
	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}
	st, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	refs, err := playable.NewRegistry("")
	if err != nil {
		st.Close()
		return nil, err
	}

	var p player.Interface = player.NewSilent()
	if !silent {
		p = player.New(cfg.PlayerBuffer())
	}
	p.SetVolume(cfg.PlayerVolume())

	logger.Debug("opening", "database", dbPath, "silent", silent)
	return New(ctx, Deps{Store: st, Player: p, Refs: refs}, cfg.GetHistoryLimit(), logger)
}

// New wires deps together and loads playlists and recent history.
// On error every dep is closed.
func New(ctx context.Context, deps Deps, historyLimit int, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	opts := []playback.Option{playback.WithLogger(logging.Component(logger, "playback"))}
	if deps.Rand != nil {
		opts = append(opts, playback.WithRand(deps.Rand))
	}
	svc := playback.New(deps.Player, playlist.NewQueue(), opts...)
	hist := history.New(deps.Store, svc, historyLimit, logging.Component(logger, "history"))
	svc.SetRecorder(hist)

	a := &App{
		Playback:  svc,
		Playlists: playlists.New(deps.Store, deps.Refs, svc, logging.Component(logger, "playlists")),
		History:   hist,
		store:     deps.Store,
		player:    deps.Player,
		refs:      deps.Refs,
		logger:    logger,
	}

	if err := a.Playlists.Load(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	if err := a.History.LoadRecent(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

// Snapshot captures the state the view projects from.
func (a *App) Snapshot(width int) view.Input {
	in := view.Input{
		Playlists: a.Playlists.Playlists(),
		Tracks:    a.Playback.QueueTracks(),
		Current:   a.Playback.QueueCurrentIndex(),
		State:     a.Playback.State(),
		History:   a.History.Entries(),
		Now:       time.Now(),
		Width:     width,
	}
	if active, ok := a.Playlists.Active(); ok {
		in.ActiveID, in.HasActive = active.ID, true
	}
	return in
}

// Close stops playback, releases every playable reference and closes the store.
func (a *App) Close() error {
	a.Playlists.Close()
	err := a.Playback.Close()
	a.player.Stop()
	if a.refs != nil {
		err = errors.Join(err, a.refs.Close())
	}
	err = errors.Join(err, a.store.Close())
	if err != nil {
		a.logger.Error("close", "err", err)
	}
	return err
}
