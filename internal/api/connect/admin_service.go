package connect

import (
	"context"
	"time"

	"connectrpc.com/connect"
	zlog "github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/osa030/gramaria/internal/app/session"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/gen/music/v1/musicv1connect"
)

// AdminService implements the AdminService RPC.
type AdminService struct {
	session *session.Manager
}

// NewAdminService creates a new AdminService.
func NewAdminService(session *session.Manager) *AdminService {
	return &AdminService{
		session: session,
	}
}

// Ensure AdminService implements the interface.
var _ musicv1connect.AdminServiceHandler = (*AdminService)(nil)

// GetStatus returns server-wide session statistics.
func (s *AdminService) GetStatus(
	ctx context.Context,
	req *connect.Request[musicv1.GetStatusRequest],
) (*connect.Response[musicv1.GetStatusResponse], error) {
	return connect.NewResponse(&musicv1.GetStatusResponse{
		SessionCount:    int32(s.session.Count()),
		SubscriberCount: int32(s.session.NotificationManager().TotalSubscribers()),
		MaxSessions:     int32(s.session.MaxSessions()),
		EngineType:      s.session.EngineType(),
		StartedAt:       s.session.StartedAt().Format(time.RFC3339),
	}), nil
}

// ListSessions lists live sessions, oldest first.
func (s *AdminService) ListSessions(
	ctx context.Context,
	req *connect.Request[musicv1.ListSessionsRequest],
) (*connect.Response[musicv1.ListSessionsResponse], error) {
	sessions := lo.Map(s.session.List(), func(info session.Info, _ int) *musicv1.SessionInfo {
		return &musicv1.SessionInfo{
			SessionId:   info.ID,
			OpenedAt:    info.OpenedAt.Format(time.RFC3339),
			LastActive:  info.LastActive.Format(time.RFC3339),
			Subscribers: int32(info.Subscribers),
			State:       info.State,
		}
	})
	return connect.NewResponse(&musicv1.ListSessionsResponse{Sessions: sessions}), nil
}

// CloseSession force-closes a session.
func (s *AdminService) CloseSession(
	ctx context.Context,
	req *connect.Request[musicv1.AdminCloseSessionRequest],
) (*connect.Response[musicv1.AdminCloseSessionResponse], error) {
	if err := s.session.Close(req.Msg.SessionId); err != nil {
		return nil, toConnectError(err)
	}
	zlog.Info().Msgf("admin closed session: session=%s", req.Msg.SessionId)
	return connect.NewResponse(&musicv1.AdminCloseSessionResponse{}), nil
}
