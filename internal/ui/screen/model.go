// Package screen is the root bubbletea model of the terminal UI.
package screen

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/mixtape/internal/app"
	"github.com/llehouerou/mixtape/internal/history"
	"github.com/llehouerou/mixtape/internal/keymap"
	"github.com/llehouerou/mixtape/internal/logging"
	"github.com/llehouerou/mixtape/internal/playback"
	"github.com/llehouerou/mixtape/internal/store"
	"github.com/llehouerou/mixtape/internal/ui/confirm"
	"github.com/llehouerou/mixtape/internal/ui/layout"
	"github.com/llehouerou/mixtape/internal/ui/listpanel"
	"github.com/llehouerou/mixtape/internal/ui/playerbar"
	"github.com/llehouerou/mixtape/internal/ui/prompt"
	"github.com/llehouerou/mixtape/internal/view"
)

// Focus identifies the panel receiving list keys.
type Focus int

const (
	FocusPlaylists Focus = iota
	FocusTracks
	FocusHistory
	focusCount
)

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	app    *app.App
	logger *log.Logger
	keys   *keymap.Resolver
	help   help.Model
	sub    *playback.Subscription

	playlists listpanel.Model
	tracks    listpanel.Model
	history   listpanel.Model
	focus     Focus

	confirm confirm.Model
	prompt  prompt.Model
	notice  string // blocking error message

	// Cached from the last refresh.
	playlistData []store.Playlist
	historyData  []history.Entry
	view         view.View
	bar          playerbar.State

	width, height int
}

// New builds the root model on a. It subscribes to playback events; the
// subscription ends when a's playback service is closed.
func New(ctx context.Context, a *app.App, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := Model{
		ctx:       ctx,
		app:       a,
		logger:    logging.Component(logger, "ui"),
		keys:      keymap.NewResolver(keymap.All),
		help:      help.New(),
		sub:       a.Playback.Subscribe(),
		playlists: listpanel.New("Playlists", "Press n to create a playlist"),
		tracks:    listpanel.New("Tracks", "Press a to add files"),
		history:   listpanel.New("Recently played", "Nothing played yet"),
		confirm:   confirm.New(),
		prompt:    prompt.New(),
	}
	m.setFocus(FocusPlaylists)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.sub), tick())
}

// Focused returns the focused panel.
func (m Model) Focused() Focus {
	return m.focus
}

// Notice returns the error currently shown, if any.
func (m Model) Notice() string {
	return m.notice
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.playlists.SetFocused(f == FocusPlaylists)
	m.tracks.SetFocused(f == FocusTracks)
	m.history.SetFocused(f == FocusHistory)
}

func (m *Model) focusedPanel() *listpanel.Model {
	switch m.focus {
	case FocusTracks:
		return &m.tracks
	case FocusHistory:
		return &m.history
	default:
		return &m.playlists
	}
}

// footerHeight is the help line, or the full help table when expanded.
func (m Model) footerHeight() int {
	if m.help.ShowAll {
		longest := 0
		for _, group := range m.keys.FullHelp() {
			longest = max(longest, len(group))
		}
		return longest
	}
	return 1
}

func (m *Model) resize() {
	content := layout.ContentHeight(m.height, m.footerHeight())
	p := layout.Compute(m.width, content, m.app.History.Limit())
	m.playlists.SetSize(p.PlaylistsWidth, p.PlaylistsHeight)
	m.history.SetSize(p.HistoryWidth, p.HistoryHeight)
	m.tracks.SetSize(p.TracksWidth, p.TracksHeight)
	m.help.Width = m.width
	m.refresh()
}

// refresh re-reads application state into the panels.
func (m *Model) refresh() {
	in := m.app.Snapshot(layout.LabelWidth(m.playlists.Width()))
	m.playlistData = in.Playlists
	m.historyData = in.History
	m.view = view.Project(in)

	in.Width = layout.LabelWidth(m.tracks.Width())
	tracks := view.Project(in).Tracks

	m.playlists.SetRows(m.view.Playlists)
	m.tracks.SetRows(tracks)
	m.tracks.SetTitle(m.view.Title)
	m.history.SetRows(m.view.History)
	m.bar = playerbar.NewState(m.app.Playback)
}
