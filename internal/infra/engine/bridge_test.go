package engine

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/gramaria/internal/app/playback"
)

// commandRecorder is a playback.Engine that re-emits every call as the
// Command a Remote engine would have sent for it.
type commandRecorder struct {
	recordingSink
	out chan playback.Notification
}

func (r *commandRecorder) Load(generation uint64, source string) {
	r.sink(Command{Op: OpLoad, Generation: generation, Source: source})
}
func (r *commandRecorder) Play() { r.sink(Command{Op: OpPlay}) }
func (r *commandRecorder) Pause() { r.sink(Command{Op: OpPause}) }
func (r *commandRecorder) Seek(seconds float64) { r.sink(Command{Op: OpSeek, Seconds: seconds}) }
func (r *commandRecorder) SetVolume(v float64) { r.sink(Command{Op: OpVolume, Volume: v}) }
func (r *commandRecorder) SetAutoRepeat(enabled bool) {
	r.sink(Command{Op: OpAutoRepeat, Enabled: enabled})
}
func (r *commandRecorder) Notifications() <-chan playback.Notification { return r.out }
func (r *commandRecorder) Close() error { return nil }

// Commands sent by a Remote engine and applied on the client reproduce the
// original calls.
func TestApply_RoundTripsRemoteCommands(t *testing.T) {
	sent := &recordingSink{}
	remote := NewRemote(sent.sink)
	t.Cleanup(func() { _ = remote.Close() })

	remote.SetVolume(0.3)
	remote.SetAutoRepeat(true)
	remote.Load(2, "https://example.com/b.mp3")
	remote.Seek(30)
	remote.Play()
	remote.Pause()

	client := &commandRecorder{}
	for _, cmd := range sent.commands() {
		require.NoError(t, Apply(client, cmd))
	}
	assert.Equal(t, sent.commands(), client.commands())
}

func TestApply_UnknownOp(t *testing.T) {
	err := Apply(&commandRecorder{}, Command{Op: "rewind"})
	assert.True(t, errors.Is(err, ErrUnknownCommand))
}

func TestNewReport(t *testing.T) {
	tests := []struct {
		name string
		n    playback.Notification
		want Report
	}{
		{
			name: "progress",
			n:    playback.Notification{Kind: playback.NotifyProgress, Generation: 3, Seconds: 12.5},
			want: Report{Kind: "progress", Generation: 3, Seconds: 12.5},
		},
		{
			name: "duration",
			n:    playback.Notification{Kind: playback.NotifyDurationKnown, Generation: 3, Seconds: 200},
			want: Report{Kind: "duration_known", Generation: 3, Seconds: 200},
		},
		{
			name: "ended",
			n:    playback.Notification{Kind: playback.NotifyEnded, Generation: 4},
			want: Report{Kind: "ended", Generation: 4},
		},
		{
			name: "error",
			n:    playback.Notification{Kind: playback.NotifyError, Generation: 5, Err: ErrAudioUnavailable},
			want: Report{Kind: "error", Generation: 5, Error: ErrAudioUnavailable.Error()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewReport(tt.n))
		})
	}
}

func TestNewClientLocal(t *testing.T) {
	e, err := NewClientLocal()
	require.NoError(t, err)
	require.NoError(t, e.Close())
}
