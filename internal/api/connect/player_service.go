// Package connect provides Connect RPC service implementations.
package connect

import (
	"context"
	"sync"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/gramaria/internal/app/playback"
	"github.com/osa030/gramaria/internal/app/session"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/gen/music/v1/musicv1connect"
	"github.com/osa030/gramaria/internal/infra/engine"
)

// PlayerService implements the PlayerService RPC.
type PlayerService struct {
	session *session.Manager
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(session *session.Manager) *PlayerService {
	return &PlayerService{
		session: session,
	}
}

// Ensure PlayerService implements the interface.
var _ musicv1connect.PlayerServiceHandler = (*PlayerService)(nil)

// OpenSession starts a playback session for a page visit.
func (s *PlayerService) OpenSession(
	ctx context.Context,
	req *connect.Request[musicv1.OpenSessionRequest],
) (*connect.Response[musicv1.OpenSessionResponse], error) {
	sess, err := s.session.Open(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&musicv1.OpenSessionResponse{
		SessionId:  sess.ID(),
		State:      sess.State(),
		Playlist:   session.BuildPlaylist(s.session.Playlist()),
		EngineType: s.session.EngineType(),
	}), nil
}

// CloseSession ends the playback session of a page visit.
func (s *PlayerService) CloseSession(
	ctx context.Context,
	req *connect.Request[musicv1.SessionRequest],
) (*connect.Response[musicv1.CloseSessionResponse], error) {
	if err := s.session.Close(req.Msg.SessionId); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&musicv1.CloseSessionResponse{}), nil
}

// GetState returns the session state.
func (s *PlayerService) GetState(
	ctx context.Context,
	req *connect.Request[musicv1.SessionRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(*playback.Controller) error { return nil })
}

// TogglePlayPause flips between playing and paused.
func (s *PlayerService) TogglePlayPause(
	ctx context.Context,
	req *connect.Request[musicv1.SessionRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(c *playback.Controller) error {
		c.TogglePlayPause()
		return nil
	})
}

// Next moves to the next track.
func (s *PlayerService) Next(
	ctx context.Context,
	req *connect.Request[musicv1.SessionRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(c *playback.Controller) error {
		c.Advance()
		return nil
	})
}

// Previous moves to the previous track.
func (s *PlayerService) Previous(
	ctx context.Context,
	req *connect.Request[musicv1.SessionRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(c *playback.Controller) error {
		c.Retreat()
		return nil
	})
}

// SelectTrack jumps to a playlist entry.
func (s *PlayerService) SelectTrack(
	ctx context.Context,
	req *connect.Request[musicv1.SelectTrackRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(c *playback.Controller) error {
		return c.SelectTrack(int(req.Msg.Index))
	})
}

// ToggleShuffle flips shuffle.
func (s *PlayerService) ToggleShuffle(
	ctx context.Context,
	req *connect.Request[musicv1.SessionRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(c *playback.Controller) error {
		c.ToggleShuffle()
		return nil
	})
}

// CycleLoopMode advances the loop mode.
func (s *PlayerService) CycleLoopMode(
	ctx context.Context,
	req *connect.Request[musicv1.SessionRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(c *playback.Controller) error {
		c.CycleLoopMode()
		return nil
	})
}

// SetVolume sets the volume. Values outside [0,1] are clamped.
func (s *PlayerService) SetVolume(
	ctx context.Context,
	req *connect.Request[musicv1.SetVolumeRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(c *playback.Controller) error {
		c.SetVolume(req.Msg.Volume)
		return nil
	})
}

// Seek jumps within the current track.
func (s *PlayerService) Seek(
	ctx context.Context,
	req *connect.Request[musicv1.SeekRequest],
) (*connect.Response[musicv1.StateResponse], error) {
	return s.apply(req.Msg.SessionId, func(c *playback.Controller) error {
		c.Seek(req.Msg.Seconds)
		return nil
	})
}

// Subscribe streams the initial state followed by session notifications
// until the client goes away or the session is closed.
func (s *PlayerService) Subscribe(
	ctx context.Context,
	req *connect.Request[musicv1.SubscribeRequest],
	stream *connect.ServerStream[musicv1.Notification],
) error {
	adapter := &notificationStreamAdapter{stream: stream}
	subscriptionID, closed, err := s.session.Subscribe(req.Msg.SessionId, adapter)
	if err != nil {
		return toConnectError(err)
	}
	defer s.session.Unsubscribe(req.Msg.SessionId, subscriptionID)

	// closed fires after the session_closed notification went out.
	select {
	case <-ctx.Done():
	case <-closed:
	case <-s.session.Done():
	}
	return nil
}

// ReportEngineEvent accepts notifications from a client-side engine.
func (s *PlayerService) ReportEngineEvent(
	ctx context.Context,
	req *connect.Request[musicv1.ReportEngineEventRequest],
) (*connect.Response[musicv1.ReportEngineEventResponse], error) {
	msg := req.Msg
	n, err := session.ParseEngineEvent(msg.Kind, msg.Generation, msg.Seconds, msg.Error)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.session.ReportEngineEvent(msg.SessionId, n); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&musicv1.ReportEngineEventResponse{}), nil
}

func (s *PlayerService) apply(id string, fn func(*playback.Controller) error) (*connect.Response[musicv1.StateResponse], error) {
	state, err := s.session.Apply(id, fn)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&musicv1.StateResponse{State: state}), nil
}

// toConnectError maps domain errors onto RPC codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, playback.ErrInvalidIndex),
		errors.Is(err, session.ErrUnknownEventKind):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, session.ErrTooManySessions):
		return connect.NewError(connect.CodeResourceExhausted, err)
	case errors.Is(err, session.ErrEngineNotRemote),
		errors.Is(err, engine.ErrEngineClosed):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, session.ErrManagerClosed):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		zlog.Error().Err(err).Msg("player service: unexpected error")
		return connect.NewError(connect.CodeInternal, err)
	}
}

// notificationStreamAdapter adapts connect.ServerStream to notification.Stream.
// Sends are serialized because a timed out send may still be in flight when
// the next broadcast starts.
type notificationStreamAdapter struct {
	mu     sync.Mutex
	stream *connect.ServerStream[musicv1.Notification]
}

func (a *notificationStreamAdapter) Send(notification *musicv1.Notification) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stream.Send(notification)
}
