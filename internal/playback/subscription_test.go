package playback

import (
	"errors"
	"testing"
	"testing/synctest"

	"github.com/llehouerou/mixtape/internal/playlist"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendState(StateChange{Previous: StateStopped, Current: StatePlaying})
		sub.sendTrack(TrackChange{Index: 1})
		sub.sendQueue(QueueChange{Index: 2, Tracks: []playlist.Track{{Name: "queue.mp3"}}})
		sub.sendError(ErrorEvent{Operation: "play", Err: errors.New("boom")})

		e := <-sub.StateChanged
		if e.Current != StatePlaying {
			t.Errorf("StateChanged.Current = %v, want Playing", e.Current)
		}

		tr := <-sub.TrackChanged
		if tr.Index != 1 {
			t.Errorf("TrackChanged.Index = %d, want 1", tr.Index)
		}

		q := <-sub.QueueChanged
		if q.Index != 2 {
			t.Errorf("QueueChanged.Index = %d, want 2", q.Index)
		}
		if len(q.Tracks) != 1 || q.Tracks[0].Name != "queue.mp3" {
			t.Errorf("QueueChanged.Tracks = %v, want [queue.mp3]", q.Tracks)
		}

		ev := <-sub.Error
		if ev.Operation != "play" {
			t.Errorf("Error.Operation = %q, want play", ev.Operation)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.sendState(StateChange{})
	}

	count := 0
	for {
		select {
		case <-sub.StateChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}
