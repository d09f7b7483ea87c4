package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/gramaria/internal/app/playback"
)

func newTestSimulated(t *testing.T, settings SimulatedSettings) *Simulated {
	t.Helper()
	if settings.DefaultDurationSec == 0 {
		settings.DefaultDurationSec = 0.05
	}
	if settings.ProgressIntervalMs == 0 {
		settings.ProgressIntervalMs = 10
	}
	e := NewSimulated(settings)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

// collect reads notifications until pred matches or the timeout expires.
func collect(t *testing.T, ch <-chan playback.Notification, pred func(playback.Notification) bool) []playback.Notification {
	t.Helper()
	var got []playback.Notification
	timeout := time.After(2 * time.Second)
	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, n)
			if pred(n) {
				return got
			}
		case <-timeout:
			t.Fatalf("timed out, received %d notifications", len(got))
			return got
		}
	}
}

func isKind(k playback.NotificationKind) func(playback.Notification) bool {
	return func(n playback.Notification) bool { return n.Kind == k }
}

func TestSimulated_LoadReportsDuration(t *testing.T) {
	e := newTestSimulated(t, SimulatedSettings{DefaultDurationSec: 42})

	e.Load(7, "https://example.com/a.mp3")

	got := collect(t, e.Notifications(), isKind(playback.NotifyDurationKnown))
	last := got[len(got)-1]
	assert.Equal(t, uint64(7), last.Generation)
	assert.Equal(t, 42.0, last.Seconds)
}

func TestSimulated_PlaysToEnd(t *testing.T) {
	e := newTestSimulated(t, SimulatedSettings{})

	e.Load(3, "https://example.com/a.mp3")
	e.Play()

	got := collect(t, e.Notifications(), isKind(playback.NotifyEnded))
	require.NotEmpty(t, got)
	for _, n := range got {
		assert.Equal(t, uint64(3), n.Generation)
	}

	var sawProgress bool
	for _, n := range got {
		if n.Kind == playback.NotifyProgress {
			sawProgress = true
			assert.LessOrEqual(t, n.Seconds, 0.05)
		}
	}
	assert.True(t, sawProgress, "expected progress before the end")
}

func TestSimulated_PausedDoesNotAdvance(t *testing.T) {
	e := newTestSimulated(t, SimulatedSettings{})

	e.Load(1, "https://example.com/a.mp3")
	collect(t, e.Notifications(), isKind(playback.NotifyDurationKnown))

	select {
	case n := <-e.Notifications():
		t.Fatalf("unexpected notification while paused: %s", n.Kind)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSimulated_AutoRepeatSuppressesEnded(t *testing.T) {
	e := newTestSimulated(t, SimulatedSettings{})
	e.SetAutoRepeat(true)

	e.Load(1, "https://example.com/a.mp3")
	e.Play()

	deadline := time.After(300 * time.Millisecond)
	restarts := 0
	for {
		select {
		case n := <-e.Notifications():
			require.NotEqual(t, playback.NotifyEnded, n.Kind)
			if n.Kind == playback.NotifyProgress && n.Seconds == 0 {
				restarts++
			}
		case <-deadline:
			assert.Positive(t, restarts, "track should have restarted")
			return
		}
	}
}

func TestSimulated_UnknownDuration(t *testing.T) {
	src := "https://example.com/live.mp3"
	e := newTestSimulated(t, SimulatedSettings{Durations: map[string]float64{src: -1}})

	e.Load(1, src)
	e.Play()

	got := collect(t, e.Notifications(), func(n playback.Notification) bool {
		return n.Kind == playback.NotifyProgress && n.Seconds > 0.1
	})
	for _, n := range got {
		assert.NotEqual(t, playback.NotifyDurationKnown, n.Kind)
		assert.NotEqual(t, playback.NotifyEnded, n.Kind)
	}
}

func TestSimulated_SeekClampsToDuration(t *testing.T) {
	e := newTestSimulated(t, SimulatedSettings{DefaultDurationSec: 10, ProgressIntervalMs: 10})

	e.Load(1, "https://example.com/a.mp3")
	e.Seek(500)
	e.Play()

	got := collect(t, e.Notifications(), isKind(playback.NotifyEnded))
	assert.Equal(t, playback.NotifyEnded, got[len(got)-1].Kind)
}

func TestSimulated_Close(t *testing.T) {
	e := NewSimulated(SimulatedSettings{DefaultDurationSec: 1, ProgressIntervalMs: 10})
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())

	_, ok := <-e.Notifications()
	assert.False(t, ok, "notification channel should be closed")

	// Commands after close are ignored.
	e.Load(2, "https://example.com/a.mp3")
	e.Play()
	e.SetVolume(0.3)
	assert.Equal(t, 0.3, e.Volume())
}
