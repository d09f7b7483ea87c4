package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/gramaria/internal/app/playback"
)

type recordingSink struct {
	mu   sync.Mutex
	cmds []Command
}

func (s *recordingSink) sink(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmds = append(s.cmds, cmd)
}

func (s *recordingSink) commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Command(nil), s.cmds...)
}

func TestRemote_ForwardsCommands(t *testing.T) {
	rec := &recordingSink{}
	e := NewRemote(rec.sink)
	t.Cleanup(func() { _ = e.Close() })

	e.SetVolume(0.5)
	e.SetAutoRepeat(true)
	e.Load(4, "https://example.com/a.mp3")
	e.Play()
	e.Seek(12.5)
	e.Pause()

	assert.Equal(t, []Command{
		{Op: OpVolume, Volume: 0.5},
		{Op: OpAutoRepeat, Enabled: true},
		{Op: OpLoad, Generation: 4, Source: "https://example.com/a.mp3"},
		{Op: OpPlay},
		{Op: OpSeek, Seconds: 12.5},
		{Op: OpPause},
	}, rec.commands())
}

func TestRemote_Deliver(t *testing.T) {
	e := NewRemote(func(Command) {})
	t.Cleanup(func() { _ = e.Close() })

	require.NoError(t, e.Deliver(playback.Notification{Kind: playback.NotifyDurationKnown, Generation: 1, Seconds: 200}))
	require.NoError(t, e.Deliver(playback.Notification{Kind: playback.NotifyEnded, Generation: 1}))

	select {
	case n := <-e.Notifications():
		assert.Equal(t, playback.NotifyDurationKnown, n.Kind)
		assert.Equal(t, 200.0, n.Seconds)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}
	select {
	case n := <-e.Notifications():
		assert.Equal(t, playback.NotifyEnded, n.Kind)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestRemote_Closed(t *testing.T) {
	rec := &recordingSink{}
	e := NewRemote(rec.sink)
	require.NoError(t, e.Close())

	e.Play()
	assert.Empty(t, rec.commands())

	err := e.Deliver(playback.Notification{Kind: playback.NotifyProgress, Generation: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEngineClosed))
}
