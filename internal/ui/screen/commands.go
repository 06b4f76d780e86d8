package screen

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mixtape/internal/errmsg"
	"github.com/llehouerou/mixtape/internal/playback"
)

const (
	tickInterval = time.Second
	volumeStep   = 0.1
)

// opDoneMsg reports a finished repository or playback operation.
type opDoneMsg struct {
	op      errmsg.Op
	subject string
	err     error
}

// eventMsg reports that playback state changed. err is set for playback
// failures.
type eventMsg struct {
	err *playback.ErrorEvent
}

type tickMsg time.Time

// Popup contexts.
type (
	createPlaylist struct{}
	renamePlaylist struct{ id int64 }
	deletePlaylist struct{ id int64 }
	addFiles       struct{}
)

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForEvent blocks until the next playback event. It yields nil once the
// subscription is closed, which ends the loop.
func waitForEvent(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-sub.StateChanged:
		case <-sub.TrackChanged:
		case <-sub.QueueChanged:
		case e := <-sub.Error:
			return eventMsg{err: &e}
		case <-sub.Done:
			return nil
		}
		return eventMsg{}
	}
}

// run executes fn off the update loop and reports through opDoneMsg.
func (m Model) run(op errmsg.Op, subject string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, subject: subject, err: fn(ctx)}
	}
}

// playbackCmd wraps a service call that takes no context.
func (m Model) playbackCmd(fn func() error) tea.Cmd {
	return m.run(errmsg.OpPlaybackStart, "", func(context.Context) error {
		return fn()
	})
}
