package connect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/gramaria/internal/app/notification"
	"github.com/osa030/gramaria/internal/app/session"
	"github.com/osa030/gramaria/internal/domain/playlist"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/gen/music/v1/musicv1connect"
	"github.com/osa030/gramaria/internal/infra/config"
	"github.com/osa030/gramaria/internal/infra/engine"
)

const testAdminToken = "test-admin-token"

type testEnv struct {
	player musicv1connect.PlayerServiceClient
	admin  musicv1connect.AdminServiceClient
	anon   musicv1connect.AdminServiceClient
	mgr    *session.Manager
}

func newTestEnv(t *testing.T, engineType string, maxSessions int) *testEnv {
	t.Helper()

	cfg := &config.Config{Admin: config.AdminConfig{Token: testAdminToken}}
	factory, err := engine.NewFactory(config.EngineConfig{Type: engineType})
	require.NoError(t, err)

	mgr := session.NewManager(session.Config{
		InitialVolume: 0.5,
		EventBuffer:   64,
		MaxSessions:   maxSessions,
	}, playlist.Gramaria(), factory, notification.NewManager())

	mux := http.NewServeMux()
	mux.Handle(musicv1connect.NewPlayerServiceHandler(NewPlayerService(mgr)))
	mux.Handle(musicv1connect.NewAdminServiceHandler(
		NewAdminService(mgr),
		connect.WithInterceptors(NewAdminAuthInterceptor(cfg)),
	))

	srv := httptest.NewServer(mux)
	t.Cleanup(func() {
		mgr.Shutdown()
		srv.Close()
	})

	return &testEnv{
		player: musicv1connect.NewPlayerServiceClient(srv.Client(), srv.URL),
		admin: musicv1connect.NewAdminServiceClient(srv.Client(), srv.URL,
			connect.WithInterceptors(NewAdminTokenInterceptor(testAdminToken))),
		anon: musicv1connect.NewAdminServiceClient(srv.Client(), srv.URL),
		mgr:  mgr,
	}
}

func (e *testEnv) open(t *testing.T) *musicv1.OpenSessionResponse {
	t.Helper()
	res, err := e.player.OpenSession(context.Background(), connect.NewRequest(&musicv1.OpenSessionRequest{}))
	require.NoError(t, err)
	return res.Msg
}

func sessionReq(id string) *connect.Request[musicv1.SessionRequest] {
	return connect.NewRequest(&musicv1.SessionRequest{SessionId: id})
}

func TestPlayerService_OpenSession(t *testing.T) {
	env := newTestEnv(t, config.EngineRemote, 0)
	opened := env.open(t)

	assert.NotEmpty(t, opened.SessionId)
	assert.Equal(t, config.EngineRemote, opened.EngineType)
	require.Len(t, opened.Playlist, 6)
	assert.Equal(t, "Journey Through the Glen", opened.Playlist[5].Title)

	st := opened.State
	assert.Equal(t, int32(0), st.CurrentIndex)
	assert.False(t, st.IsPlaying)
	assert.Equal(t, 0.5, st.Volume)
	assert.Equal(t, "off", st.LoopMode)
	assert.Equal(t, "0:00", st.Position)
}

func TestPlayerService_TransportControls(t *testing.T) {
	env := newTestEnv(t, config.EngineRemote, 0)
	id := env.open(t).SessionId
	ctx := context.Background()

	res, err := env.player.TogglePlayPause(ctx, sessionReq(id))
	require.NoError(t, err)
	assert.True(t, res.Msg.State.IsPlaying)

	res, err = env.player.Next(ctx, sessionReq(id))
	require.NoError(t, err)
	assert.Equal(t, int32(1), res.Msg.State.CurrentIndex)
	assert.Equal(t, "Acoustic Lore", res.Msg.State.Track.Title)

	res, err = env.player.Previous(ctx, sessionReq(id))
	require.NoError(t, err)
	assert.Equal(t, int32(0), res.Msg.State.CurrentIndex)

	res, err = env.player.Previous(ctx, sessionReq(id))
	require.NoError(t, err)
	assert.Equal(t, int32(5), res.Msg.State.CurrentIndex)

	res, err = env.player.SelectTrack(ctx, connect.NewRequest(&musicv1.SelectTrackRequest{SessionId: id, Index: 3}))
	require.NoError(t, err)
	assert.Equal(t, int32(3), res.Msg.State.CurrentIndex)
	assert.True(t, res.Msg.State.IsPlaying)

	res, err = env.player.ToggleShuffle(ctx, sessionReq(id))
	require.NoError(t, err)
	assert.True(t, res.Msg.State.ShuffleEnabled)

	for _, want := range []string{"all", "one", "off"} {
		res, err = env.player.CycleLoopMode(ctx, sessionReq(id))
		require.NoError(t, err)
		assert.Equal(t, want, res.Msg.State.LoopMode)
	}

	res, err = env.player.SetVolume(ctx, connect.NewRequest(&musicv1.SetVolumeRequest{SessionId: id, Volume: 1.7}))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Msg.State.Volume)

	res, err = env.player.Seek(ctx, connect.NewRequest(&musicv1.SeekRequest{SessionId: id, Seconds: 42}))
	require.NoError(t, err)
	assert.Equal(t, 42.0, res.Msg.State.PositionSeconds)

	res, err = env.player.GetState(ctx, sessionReq(id))
	require.NoError(t, err)
	assert.Equal(t, int32(3), res.Msg.State.CurrentIndex)
}

func TestPlayerService_Errors(t *testing.T) {
	env := newTestEnv(t, config.EngineSimulated, 1)
	ctx := context.Background()
	id := env.open(t).SessionId

	tests := []struct {
		name string
		call func() error
		code connect.Code
	}{
		{
			name: "unknown session",
			call: func() error {
				_, err := env.player.TogglePlayPause(ctx, sessionReq("missing"))
				return err
			},
			code: connect.CodeNotFound,
		},
		{
			name: "invalid index",
			call: func() error {
				_, err := env.player.SelectTrack(ctx, connect.NewRequest(&musicv1.SelectTrackRequest{SessionId: id, Index: 6}))
				return err
			},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "too many sessions",
			call: func() error {
				_, err := env.player.OpenSession(ctx, connect.NewRequest(&musicv1.OpenSessionRequest{}))
				return err
			},
			code: connect.CodeResourceExhausted,
		},
		{
			name: "report to local engine",
			call: func() error {
				_, err := env.player.ReportEngineEvent(ctx, connect.NewRequest(&musicv1.ReportEngineEventRequest{
					SessionId: id, Kind: "ended", Generation: 1,
				}))
				return err
			},
			code: connect.CodeFailedPrecondition,
		},
		{
			name: "unknown event kind",
			call: func() error {
				_, err := env.player.ReportEngineEvent(ctx, connect.NewRequest(&musicv1.ReportEngineEventRequest{
					SessionId: id, Kind: "stalled",
				}))
				return err
			},
			code: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.code, connect.CodeOf(err))
		})
	}
}

func TestPlayerService_SubscribeAndReport(t *testing.T) {
	env := newTestEnv(t, config.EngineRemote, 0)
	opened := env.open(t)
	id := opened.SessionId

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := env.player.Subscribe(ctx, connect.NewRequest(&musicv1.SubscribeRequest{SessionId: id}))
	require.NoError(t, err)
	defer stream.Close()

	require.True(t, stream.Receive(), "expected initial state: %v", stream.Err())
	assert.Equal(t, musicv1.NotificationType_NOTIFICATION_TYPE_INITIAL_STATE, stream.Msg().Type)
	assert.Equal(t, id, stream.Msg().State.SessionId)

	require.Eventually(t, func() bool {
		return env.mgr.NotificationManager().SubscriberCount(id) == 1
	}, time.Second, 10*time.Millisecond)

	_, err = env.player.ReportEngineEvent(ctx, connect.NewRequest(&musicv1.ReportEngineEventRequest{
		SessionId: id, Kind: "duration_known", Generation: opened.State.Generation, Seconds: 125,
	}))
	require.NoError(t, err)

	for stream.Receive() {
		n := stream.Msg()
		if n.Type == musicv1.NotificationType_NOTIFICATION_TYPE_DURATION_KNOWN {
			assert.True(t, n.State.DurationKnown)
			assert.Equal(t, "2:05", n.State.Duration)
			break
		}
	}
	require.NoError(t, stream.Err())

	_, err = env.player.TogglePlayPause(ctx, sessionReq(id))
	require.NoError(t, err)

	var sawPlay bool
	for !sawPlay && stream.Receive() {
		n := stream.Msg()
		if n.Type == musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_COMMAND && n.Command.Op == engine.OpPlay {
			sawPlay = true
		}
	}
	assert.True(t, sawPlay)

	_, err = env.player.CloseSession(ctx, sessionReq(id))
	require.NoError(t, err)

	var sawClosed bool
	for stream.Receive() {
		if stream.Msg().Type == musicv1.NotificationType_NOTIFICATION_TYPE_SESSION_CLOSED {
			sawClosed = true
		}
	}
	assert.True(t, sawClosed)
}

// A remote-engine client that subscribes after OpenSession still learns
// which track to load.
func TestPlayerService_SubscribeReplaysEngineCommands(t *testing.T) {
	env := newTestEnv(t, config.EngineRemote, 0)
	opened := env.open(t)
	id := opened.SessionId
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := env.player.Subscribe(ctx, connect.NewRequest(&musicv1.SubscribeRequest{SessionId: id}))
	require.NoError(t, err)
	defer stream.Close()

	require.True(t, stream.Receive(), "expected initial state: %v", stream.Err())
	assert.Equal(t, musicv1.NotificationType_NOTIFICATION_TYPE_INITIAL_STATE, stream.Msg().Type)
	lastSeq := stream.Msg().SequenceNo

	var load *musicv1.EngineCommand
	for load == nil && stream.Receive() {
		n := stream.Msg()
		require.Equal(t, musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_COMMAND, n.Type)
		assert.Greater(t, n.SequenceNo, lastSeq)
		lastSeq = n.SequenceNo
		if n.Command.Op == engine.OpLoad {
			load = n.Command
		}
	}
	require.NotNil(t, load, "expected a replayed load command: %v", stream.Err())
	assert.Equal(t, uint64(1), load.Generation)
	assert.Equal(t, opened.Playlist[0].Source, load.Source)
}

func TestPlayerService_SubscribeUnknownSession(t *testing.T) {
	env := newTestEnv(t, config.EngineRemote, 0)

	stream, err := env.player.Subscribe(context.Background(), connect.NewRequest(&musicv1.SubscribeRequest{SessionId: "missing"}))
	require.NoError(t, err)
	defer stream.Close()

	assert.False(t, stream.Receive())
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(stream.Err()))
	assert.Equal(t, 0, env.mgr.NotificationManager().TopicCount())
}

func TestAdminService(t *testing.T) {
	env := newTestEnv(t, config.EngineRemote, 8)
	ctx := context.Background()
	first := env.open(t).SessionId
	env.open(t)

	status, err := env.admin.GetStatus(ctx, connect.NewRequest(&musicv1.GetStatusRequest{}))
	require.NoError(t, err)
	assert.Equal(t, int32(2), status.Msg.SessionCount)
	assert.Equal(t, int32(8), status.Msg.MaxSessions)
	assert.Equal(t, config.EngineRemote, status.Msg.EngineType)
	assert.NotEmpty(t, status.Msg.StartedAt)

	list, err := env.admin.ListSessions(ctx, connect.NewRequest(&musicv1.ListSessionsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Sessions, 2)
	assert.Equal(t, first, list.Msg.Sessions[0].SessionId)

	_, err = env.admin.CloseSession(ctx, connect.NewRequest(&musicv1.AdminCloseSessionRequest{SessionId: first}))
	require.NoError(t, err)
	assert.Equal(t, 1, env.mgr.Count())

	_, err = env.admin.CloseSession(ctx, connect.NewRequest(&musicv1.AdminCloseSessionRequest{SessionId: first}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestAdminService_RequiresToken(t *testing.T) {
	env := newTestEnv(t, config.EngineRemote, 0)

	_, err := env.anon.GetStatus(context.Background(), connect.NewRequest(&musicv1.GetStatusRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	wrong := connect.NewRequest(&musicv1.ListSessionsRequest{})
	wrong.Header().Set(AdminTokenHeader, "nope")
	_, err = env.anon.ListSessions(context.Background(), wrong)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}
