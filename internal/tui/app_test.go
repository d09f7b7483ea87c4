package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/gramaria/internal/app/playback"
	"github.com/osa030/gramaria/internal/app/session"
	"github.com/osa030/gramaria/internal/domain/playlist"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/gen/music/v1/musicv1connect"
	"github.com/osa030/gramaria/internal/infra/engine"
)

// fakeClient records calls. Methods it does not override panic.
type fakeClient struct {
	musicv1connect.PlayerServiceClient

	calls  []string
	volume float64
	seek   float64
	index  int32
	err    error

	mu      sync.Mutex
	reports []*musicv1.ReportEngineEventRequest
}

func (f *fakeClient) respond(name string) (*connect.Response[musicv1.StateResponse], error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	return connect.NewResponse(&musicv1.StateResponse{State: &musicv1.SessionState{CurrentIndex: f.index, IsPlaying: true}}), nil
}

func (f *fakeClient) TogglePlayPause(context.Context, *connect.Request[musicv1.SessionRequest]) (*connect.Response[musicv1.StateResponse], error) {
	return f.respond("toggle")
}

func (f *fakeClient) Next(context.Context, *connect.Request[musicv1.SessionRequest]) (*connect.Response[musicv1.StateResponse], error) {
	return f.respond("next")
}

func (f *fakeClient) Previous(context.Context, *connect.Request[musicv1.SessionRequest]) (*connect.Response[musicv1.StateResponse], error) {
	return f.respond("prev")
}

func (f *fakeClient) ToggleShuffle(context.Context, *connect.Request[musicv1.SessionRequest]) (*connect.Response[musicv1.StateResponse], error) {
	return f.respond("shuffle")
}

func (f *fakeClient) CycleLoopMode(context.Context, *connect.Request[musicv1.SessionRequest]) (*connect.Response[musicv1.StateResponse], error) {
	return f.respond("loop")
}

func (f *fakeClient) SelectTrack(_ context.Context, req *connect.Request[musicv1.SelectTrackRequest]) (*connect.Response[musicv1.StateResponse], error) {
	f.index = req.Msg.Index
	return f.respond("select")
}

func (f *fakeClient) SetVolume(_ context.Context, req *connect.Request[musicv1.SetVolumeRequest]) (*connect.Response[musicv1.StateResponse], error) {
	f.volume = req.Msg.Volume
	return f.respond("volume")
}

func (f *fakeClient) Seek(_ context.Context, req *connect.Request[musicv1.SeekRequest]) (*connect.Response[musicv1.StateResponse], error) {
	f.seek = req.Msg.Seconds
	return f.respond("seek")
}

func (f *fakeClient) ReportEngineEvent(_ context.Context, req *connect.Request[musicv1.ReportEngineEventRequest]) (*connect.Response[musicv1.ReportEngineEventResponse], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, req.Msg)
	return connect.NewResponse(&musicv1.ReportEngineEventResponse{}), nil
}

func (f *fakeClient) reported() []*musicv1.ReportEngineEventRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*musicv1.ReportEngineEventRequest(nil), f.reports...)
}

// fakeAudio is a client-side engine that records the ops applied to it.
type fakeAudio struct {
	mu  sync.Mutex
	ops []string
	out chan playback.Notification
}

func (a *fakeAudio) record(op string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ops = append(a.ops, op)
}

func (a *fakeAudio) Load(uint64, string) { a.record(engine.OpLoad) }
func (a *fakeAudio) Play() { a.record(engine.OpPlay) }
func (a *fakeAudio) Pause() { a.record(engine.OpPause) }
func (a *fakeAudio) Seek(float64) { a.record(engine.OpSeek) }
func (a *fakeAudio) SetVolume(float64) { a.record(engine.OpVolume) }
func (a *fakeAudio) SetAutoRepeat(bool) { a.record(engine.OpAutoRepeat) }
func (a *fakeAudio) Notifications() <-chan playback.Notification { return a.out }
func (a *fakeAudio) Close() error { return nil }

func newTestModel(client *fakeClient) Model {
	pl := playlist.Gramaria()
	st := playback.DefaultState(0.5)
	st.PositionSeconds = 5
	t, _ := pl.At(0)
	initial := session.BuildSessionState("s1", st, t, 1)
	return NewModel(client, "s1", session.BuildPlaylist(pl), initial, nil)
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_KeyBindings(t *testing.T) {
	tests := []struct {
		key  string
		call string
	}{
		{key: " ", call: "toggle"},
		{key: "n", call: "next"},
		{key: "p", call: "prev"},
		{key: "s", call: "shuffle"},
		{key: "l", call: "loop"},
		{key: "+", call: "volume"},
		{key: "-", call: "volume"},
		{key: "right", call: "seek"},
		{key: "left", call: "seek"},
		{key: "3", call: "select"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			client := &fakeClient{}
			m := newTestModel(client)

			_, cmd := press(m, tt.key)
			require.NotNil(t, cmd)

			msg := cmd()
			assert.Equal(t, []string{tt.call}, client.calls)
			_, ok := msg.(stateMsg)
			assert.True(t, ok, "expected stateMsg, got %T", msg)
		})
	}
}

func TestModel_KeyArguments(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	_, cmd := press(m, "+")
	cmd()
	assert.InDelta(t, 0.55, client.volume, 1e-9)

	_, cmd = press(m, "left")
	cmd()
	assert.Equal(t, 0.0, client.seek)

	_, cmd = press(m, "right")
	cmd()
	assert.Equal(t, 15.0, client.seek)

	_, cmd = press(m, "6")
	cmd()
	assert.Equal(t, int32(5), client.index)
}

func TestModel_IgnoresOutOfRangeDigits(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	for _, key := range []string{"7", "9", "0"} {
		_, cmd := press(m, key)
		assert.Nil(t, cmd, key)
	}
	assert.Empty(t, client.calls)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(&fakeClient{})

	m, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModel_RPCError(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	m := newTestModel(client)

	m, cmd := press(m, "n")
	next, _ := m.Update(cmd())
	m = next.(Model)

	require.Error(t, m.lastError)
	assert.Contains(t, m.lastError.Error(), "boom")
}

func TestModel_Notifications(t *testing.T) {
	m := newTestModel(&fakeClient{})
	pl := playlist.Gramaria()

	st := playback.State{CurrentIndex: 2, IsPlaying: true, Volume: 0.5, PositionSeconds: 30, DurationSeconds: 120, DurationKnown: true}
	third, _ := pl.At(2)
	next, _ := m.Update(notificationMsg(&musicv1.Notification{
		Type:  musicv1.NotificationType_NOTIFICATION_TYPE_TRACK_CHANGED,
		State: session.BuildSessionState("s1", st, third, 2),
	}))
	m = next.(Model)
	assert.Equal(t, int32(2), m.state.CurrentIndex)
	assert.Equal(t, "Lumina's Light", m.state.Track.Title)

	next, _ = m.Update(notificationMsg(&musicv1.Notification{
		Type:    musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_ERROR,
		Message: "decode failed",
	}))
	m = next.(Model)
	require.Error(t, m.lastError)
	assert.Contains(t, m.lastError.Error(), "decode failed")
	assert.Equal(t, int32(2), m.state.CurrentIndex)

	next, cmd := m.Update(notificationMsg(&musicv1.Notification{Type: musicv1.NotificationType_NOTIFICATION_TYPE_SESSION_CLOSED}))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Session closed.\n", m.View())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(&fakeClient{})
	assert.Equal(t, "Loading...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Now Playing")
	assert.Contains(t, view, "Whispers of the Ancients")
	assert.Contains(t, view, "Journey Through the Glen")
	assert.Contains(t, view, "0:05")
	assert.Contains(t, view, "-:--")
	assert.Contains(t, view, "vol 50%")
	assert.Contains(t, view, "loop:off")
}

func TestWaitForUpdate(t *testing.T) {
	assert.Nil(t, waitForUpdate(nil))

	ch := make(chan tea.Msg, 1)
	ch <- stateMsg(&musicv1.SessionState{})
	cmd := waitForUpdate(ch)
	_, ok := cmd().(stateMsg)
	assert.True(t, ok)

	close(ch)
	assert.Equal(t, streamClosedMsg{}, cmd())
}

func TestApplyEngineCommand(t *testing.T) {
	audio := &fakeAudio{}
	command := func(op string) *musicv1.Notification {
		return &musicv1.Notification{
			Type:    musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_COMMAND,
			Command: &musicv1.EngineCommand{Op: op},
		}
	}

	for _, op := range []string{engine.OpVolume, engine.OpAutoRepeat, engine.OpLoad, engine.OpSeek, engine.OpPlay, engine.OpPause} {
		require.NoError(t, applyEngineCommand(audio, command(op)))
	}
	assert.Equal(t, []string{engine.OpVolume, engine.OpAutoRepeat, engine.OpLoad, engine.OpSeek, engine.OpPlay, engine.OpPause}, audio.ops)

	require.NoError(t, applyEngineCommand(audio, &musicv1.Notification{Type: musicv1.NotificationType_NOTIFICATION_TYPE_PROGRESS}))
	require.NoError(t, applyEngineCommand(nil, command(engine.OpPlay)))
	assert.Len(t, audio.ops, 6)

	err := applyEngineCommand(audio, command("rewind"))
	assert.True(t, errors.Is(err, engine.ErrUnknownCommand))
}

func TestRelayEngine(t *testing.T) {
	client := &fakeClient{}
	audio := &fakeAudio{out: make(chan playback.Notification, 2)}
	audio.out <- playback.Notification{Kind: playback.NotifyDurationKnown, Generation: 1, Seconds: 204}
	audio.out <- playback.Notification{Kind: playback.NotifyError, Generation: 1, Err: errors.New("decode failed")}
	close(audio.out)

	done := make(chan struct{})
	go func() {
		defer close(done)
		relayEngine(context.Background(), client, "s1", audio)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay should stop when the engine closes")
	}

	got := client.reported()
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].SessionId)
	assert.Equal(t, "duration_known", got[0].Kind)
	assert.Equal(t, 204.0, got[0].Seconds)
	assert.Equal(t, "error", got[1].Kind)
	assert.Equal(t, "decode failed", got[1].Error)
}
