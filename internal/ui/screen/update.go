package screen

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mixtape/internal/config"
	"github.com/llehouerou/mixtape/internal/errmsg"
	"github.com/llehouerou/mixtape/internal/keymap"
	"github.com/llehouerou/mixtape/internal/playlists"
	"github.com/llehouerou/mixtape/internal/store"
	"github.com/llehouerou/mixtape/internal/ui/confirm"
	"github.com/llehouerou/mixtape/internal/ui/prompt"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case opDoneMsg:
		if msg.err != nil {
			m.showError(msg.op, msg.subject, msg.err)
		}
		m.refresh()
		return m, nil

	case eventMsg:
		if msg.err != nil {
			m.showError(errmsg.OpPlaybackStart, msg.err.Name, msg.err.Err)
		}
		m.refresh()
		return m, waitForEvent(m.sub)

	case tickMsg:
		m.refresh()
		return m, tick()

	case confirm.Result:
		return m.handleConfirm(msg)

	case prompt.Result:
		return m.handlePrompt(msg)
	}

	if m.prompt.Active() {
		return m, m.prompt.Update(msg)
	}
	return m, nil
}

func (m *Model) showError(op errmsg.Op, subject string, err error) {
	m.logger.Error(string(op), "subject", subject, "err", err)
	m.notice = errmsg.FormatWith(op, subject, err)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.notice != "":
		// Any key dismisses the notice.
		m.notice = ""
		return m, nil
	case m.confirm.Active():
		return m, m.confirm.Update(msg)
	case m.prompt.Active():
		return m, m.prompt.Update(msg)
	}

	svc := m.app.Playback
	repo := m.app.Playlists

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		m.setFocus((m.focus + 1) % focusCount)
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize()

	case keymap.ActionPlayPause:
		return m, m.playbackCmd(svc.Toggle)
	case keymap.ActionStop:
		return m, m.playbackCmd(svc.Stop)
	case keymap.ActionNextTrack:
		return m, m.playbackCmd(svc.Next)
	case keymap.ActionPrevTrack:
		return m, m.playbackCmd(svc.Previous)
	case keymap.ActionRandom:
		return m, m.playbackCmd(svc.Random)
	case keymap.ActionVolumeUp:
		svc.SetVolume(svc.Volume() + volumeStep)
		m.refresh()
	case keymap.ActionVolumeDown:
		svc.SetVolume(svc.Volume() - volumeStep)
		m.refresh()

	case keymap.ActionMoveDown:
		m.focusedPanel().HandleKey("down")
	case keymap.ActionMoveUp:
		m.focusedPanel().HandleKey("up")
	case keymap.ActionSelect:
		return m, m.activate()

	case keymap.ActionNewPlaylist:
		return m, m.prompt.Show("New playlist", "", createPlaylist{})
	case keymap.ActionRename:
		if p, ok := m.playlistUnderCursor(); ok {
			return m, m.prompt.Show("Rename playlist", p.Name, renamePlaylist{id: p.ID})
		}
	case keymap.ActionDeletePlaylist:
		if p, ok := m.playlistUnderCursor(); ok {
			m.confirm.Show("Delete playlist", "Delete '"+p.Name+"'?", deletePlaylist{id: p.ID})
		}

	case keymap.ActionAddTracks:
		if _, ok := repo.Active(); !ok {
			m.notice = errmsg.Format(errmsg.OpTrackAdd, playlists.ErrNoActivePlaylist)
			return m, nil
		}
		return m, m.prompt.Show("Add files (file or directory)", "", addFiles{})
	case keymap.ActionRemoveTrack:
		if i := m.tracks.Cursor(); m.focus == FocusTracks && i >= 0 {
			return m, m.run(errmsg.OpTrackRemove, "", func(ctx context.Context) error {
				return repo.RemoveTrack(ctx, i)
			})
		}
	case keymap.ActionMoveTrackDown:
		return m, m.moveTrack(1)
	case keymap.ActionMoveTrackUp:
		return m, m.moveTrack(-1)
	case keymap.ActionShuffle:
		return m, m.run(errmsg.OpTrackShuffle, "", repo.Shuffle)

	default:
		m.focusedPanel().HandleKey(msg.String())
	}
	return m, nil
}

// activate runs enter on the focused panel.
func (m Model) activate() tea.Cmd {
	switch m.focus {
	case FocusPlaylists:
		p, ok := m.playlistUnderCursor()
		if !ok {
			return nil
		}
		return m.run(errmsg.OpPlaylistSelect, p.Name, func(ctx context.Context) error {
			return m.app.Playlists.Select(ctx, p.ID)
		})
	case FocusTracks:
		i := m.tracks.Cursor()
		if i < 0 {
			return nil
		}
		return m.playbackCmd(func() error { return m.app.Playback.JumpTo(i) })
	case FocusHistory:
		i := m.history.Cursor()
		if i < 0 || i >= len(m.historyData) {
			return nil
		}
		e := m.historyData[i]
		return m.playbackCmd(func() error { return m.app.History.Activate(e) })
	}
	return nil
}

func (m *Model) moveTrack(delta int) tea.Cmd {
	from := m.tracks.Cursor()
	to := from + delta
	if m.focus != FocusTracks || from < 0 || to < 0 || to >= m.tracks.Len() {
		return nil
	}
	m.tracks.Select(to)
	return m.run(errmsg.OpTrackMove, "", func(ctx context.Context) error {
		return m.app.Playlists.MoveTrack(ctx, from, to)
	})
}

func (m Model) handleConfirm(res confirm.Result) (tea.Model, tea.Cmd) {
	target, ok := res.Context.(deletePlaylist)
	if !ok || !res.Confirmed {
		return m, nil
	}
	return m, m.run(errmsg.OpPlaylistDelete, "", func(ctx context.Context) error {
		return m.app.Playlists.Delete(ctx, target.id)
	})
}

func (m Model) handlePrompt(res prompt.Result) (tea.Model, tea.Cmd) {
	if res.Canceled {
		return m, nil
	}
	repo := m.app.Playlists
	text := strings.TrimSpace(res.Text)

	switch target := res.Context.(type) {
	case createPlaylist:
		return m, m.run(errmsg.OpPlaylistCreate, text, func(c context.Context) error {
			_, err := repo.Create(c, text)
			return err
		})
	case renamePlaylist:
		return m, m.run(errmsg.OpPlaylistRename, text, func(c context.Context) error {
			return repo.Rename(c, target.id, text)
		})
	case addFiles:
		if text == "" {
			return m, nil
		}
		return m, m.run(errmsg.OpTrackAdd, "", func(c context.Context) error {
			paths, err := playlists.ExpandPaths([]string{config.ExpandPath(text)})
			if err != nil {
				return err
			}
			records, err := playlists.ReadFiles(paths)
			if err != nil {
				return err
			}
			return repo.AddTracks(c, records)
		})
	}
	return m, nil
}

func (m Model) playlistUnderCursor() (store.Playlist, bool) {
	i := m.playlists.Cursor()
	if m.focus != FocusPlaylists || i < 0 || i >= len(m.playlistData) {
		return store.Playlist{}, false
	}
	return m.playlistData[i], true
}
