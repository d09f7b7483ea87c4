// Package session provides the session manager, which owns one playback
// session per page visit.
package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/gramaria/internal/app/notification"
	"github.com/osa030/gramaria/internal/app/playback"
	"github.com/osa030/gramaria/internal/app/session/registry"
	"github.com/osa030/gramaria/internal/domain/playlist"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/infra/config"
	"github.com/osa030/gramaria/internal/infra/engine"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrTooManySessions  = errors.New("too many sessions")
	ErrManagerClosed    = errors.New("session manager is closed")
	ErrEngineNotRemote  = errors.New("session engine does not accept reported events")
	ErrUnknownEventKind = errors.New("unknown engine event kind")
)

const defaultReapInterval = time.Minute

// Config holds session manager configuration.
type Config struct {
	InitialVolume float64
	EventBuffer   int
	MaxSessions   int
	IdleTimeout   time.Duration // Zero disables the idle reaper
	ReapInterval  time.Duration // Defaults to a quarter of IdleTimeout, at most a minute
}

// ConfigFrom builds the manager configuration from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		InitialVolume: cfg.Session.InitialVolume,
		EventBuffer:   cfg.Session.EventBuffer,
		MaxSessions:   cfg.Session.MaxSessions,
		IdleTimeout:   cfg.IdleTimeout(),
	}
}

// Info summarizes a live session.
type Info struct {
	ID          string
	OpenedAt    time.Time
	LastActive  time.Time
	Subscribers int
	State       *musicv1.SessionState
}

// reportable is implemented by engines that receive notifications from the
// client.
type reportable interface {
	Deliver(playback.Notification) error
}

// Manager manages playback sessions.
type Manager struct {
	config       Config
	playlist     *playlist.Playlist
	factory      engine.Factory
	notification *notification.Manager
	sessions     *registry.Registry[*Session]
	startedAt    time.Time
	now          func() time.Time

	mu     sync.Mutex
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewManager creates a session manager and starts the idle reaper.
func NewManager(cfg Config, pl *playlist.Playlist, factory engine.Factory, notif *notification.Manager) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		config:       cfg,
		playlist:     pl,
		factory:      factory,
		notification: notif,
		sessions:     registry.New[*Session](cfg.MaxSessions),
		startedAt:    time.Now(),
		now:          time.Now,
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}

	if cfg.IdleTimeout > 0 {
		interval := cfg.ReapInterval
		if interval <= 0 {
			interval = min(cfg.IdleTimeout/4, defaultReapInterval)
		}
		m.wg.Add(1)
		go m.reapLoop(interval)
	}

	return m
}

// Open starts a session for a new page visit: an engine from the factory
// and a controller over the playlist, in the page-entry state.
func (m *Manager) Open(ctx context.Context) (*Session, error) {
	if m.isClosed() {
		return nil, ErrManagerClosed
	}
	if limit := m.sessions.Limit(); limit > 0 && m.sessions.Count() >= limit {
		return nil, errors.Wrapf(ErrTooManySessions, "limit %d", limit)
	}

	s := newSession(registry.NewID(), m.now())

	eng, err := m.factory.New(s.enqueueCommand)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s engine", m.factory.Type())
	}
	s.engine = eng
	s.controller = playback.NewController(m.playlist, eng, playback.Config{
		InitialVolume: m.config.InitialVolume,
		EventBuffer:   m.config.EventBuffer,
	})

	if err := m.register(s); err != nil {
		_ = s.controller.Close()
		return nil, err
	}
	go m.pump(s)

	zlog.Info().Msgf("session opened: session=%s engine=%s active=%d", s.id, m.factory.Type(), m.sessions.Count())
	return s, nil
}

// Close ends the session of a page visit.
func (m *Manager) Close(id string) error {
	s, err := m.sessions.Remove(id)
	if err != nil {
		return errors.Wrapf(ErrSessionNotFound, "session %s", id)
	}
	m.closeSession(s, "closed")
	return nil
}

// Get returns a live session.
func (m *Manager) Get(id string) (*Session, error) {
	s, err := m.sessions.Get(id)
	if err != nil {
		return nil, errors.Wrapf(ErrSessionNotFound, "session %s", id)
	}
	return s, nil
}

// Apply runs fn against the session controller, marks the session active
// and returns the resulting state.
func (m *Manager) Apply(id string, fn func(*playback.Controller) error) (*musicv1.SessionState, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	s.touch(m.now())

	if err := fn(s.controller); err != nil {
		return nil, err
	}
	return s.State(), nil
}

// Touch marks a session active.
func (m *Manager) Touch(id string) {
	if s, err := m.sessions.Get(id); err == nil {
		s.touch(m.now())
	}
}

// Subscribe attaches stream to a session. The stream first receives the
// initial state and the engine instructions needed to catch up, then every
// notification broadcast afterwards. closed fires once the session is gone.
func (m *Manager) Subscribe(id string, stream notification.Stream) (subscriptionID string, closed <-chan struct{}, err error) {
	s, err := m.Get(id)
	if err != nil {
		return "", nil, err
	}
	subscriptionID, closed, err = m.notification.Subscribe(s.id, stream, s.InitialNotifications)
	if errors.Is(err, notification.ErrTopicNotFound) {
		// Closed between Get and Subscribe.
		return "", nil, errors.Wrapf(ErrSessionNotFound, "session %s", id)
	}
	if err != nil {
		return "", nil, err
	}
	return subscriptionID, closed, nil
}

// Unsubscribe detaches a stream. Idle time counts from the moment the last
// viewer left.
func (m *Manager) Unsubscribe(id, subscriptionID string) {
	m.notification.Unsubscribe(subscriptionID)
	m.Touch(id)
}

// ReportEngineEvent feeds a notification from a client-side engine.
func (m *Manager) ReportEngineEvent(id string, n playback.Notification) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	r, ok := s.engine.(reportable)
	if !ok {
		return errors.Wrapf(ErrEngineNotRemote, "engine type %s", m.factory.Type())
	}
	s.touch(m.now())
	return r.Deliver(n)
}

// ParseEngineEvent converts a reported event into an engine notification.
func ParseEngineEvent(kind string, generation uint64, seconds float64, message string) (playback.Notification, error) {
	k, ok := playback.ParseNotificationKind(kind)
	if !ok {
		return playback.Notification{}, errors.Wrapf(ErrUnknownEventKind, "kind %q", kind)
	}
	n := playback.Notification{Kind: k, Generation: generation, Seconds: seconds}
	if k == playback.NotifyError {
		if message == "" {
			message = "engine error"
		}
		n.Err = errors.New(message)
	}
	return n, nil
}

// List returns all live sessions, oldest first.
func (m *Manager) List() []Info {
	sessions := m.sessions.All()
	slices.SortFunc(sessions, func(a, b *Session) int {
		return a.openedAt.Compare(b.openedAt)
	})

	infos := make([]Info, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, Info{
			ID:          s.id,
			OpenedAt:    s.openedAt,
			LastActive:  s.LastActive(),
			Subscribers: m.notification.SubscriberCount(s.id),
			State:       s.State(),
		})
	}
	return infos
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	return m.sessions.Count()
}

// MaxSessions returns the session limit.
func (m *Manager) MaxSessions() int {
	return m.sessions.Limit()
}

// EngineType returns the type of engine sessions are created with.
func (m *Manager) EngineType() string {
	return m.factory.Type()
}

// Playlist returns the playlist sessions play from.
func (m *Manager) Playlist() *playlist.Playlist {
	return m.playlist
}

// StartedAt returns when the manager was created.
func (m *Manager) StartedAt() time.Time {
	return m.startedAt
}

// NotificationManager returns the notification manager.
func (m *Manager) NotificationManager() *notification.Manager {
	return m.notification
}

// Done is closed by Shutdown.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Shutdown closes every session and stops the reaper.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	m.cancel()
	for _, s := range m.sessions.RemoveAll() {
		m.closeSession(s, "server shutting down")
	}
	close(m.done)
	m.wg.Wait()
	m.notification.Close()

	zlog.Info().Msg("session manager shut down")
}

// register adds s to the registry and accounts for its pump. Holding mu
// keeps Shutdown from missing a session opened concurrently.
func (m *Manager) register(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}

	if err := m.sessions.Add(s.id, s); err != nil {
		if errors.Is(err, registry.ErrFull) {
			return errors.Wrap(ErrTooManySessions, err.Error())
		}
		return errors.Wrap(err, "failed to register session")
	}
	m.notification.OpenTopic(s.id)
	m.wg.Add(1)
	return nil
}

func (m *Manager) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// closeSession stops the pump, releases the controller and engine, and
// tells subscribers the session is gone.
func (m *Manager) closeSession(s *Session, reason string) {
	close(s.done)
	<-s.stopped

	state := s.State()
	if err := s.controller.Close(); err != nil {
		zlog.Warn().Err(err).Msgf("session: failed to close controller: session=%s", s.id)
	}

	m.notification.Broadcast(s.id, &musicv1.Notification{
		Type:    musicv1.NotificationType_NOTIFICATION_TYPE_SESSION_CLOSED,
		State:   state,
		Message: reason,
	})
	m.notification.CloseTopic(s.id)

	zlog.Info().Msgf("session closed: session=%s reason=%s active=%d", s.id, reason, m.sessions.Count())
}

// pump serializes engine notifications into the controller and fans out
// controller events and remote engine commands to subscribers.
func (m *Manager) pump(s *Session) {
	defer m.wg.Done()
	defer close(s.stopped)

	notifications := s.engine.Notifications()
	events := s.controller.Events()

	for {
		select {
		case <-s.done:
			return

		case n, ok := <-notifications:
			if !ok {
				notifications = nil
				continue
			}
			s.controller.HandleNotification(n)

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			m.notification.Broadcast(s.id, &musicv1.Notification{
				Type:    notificationType(ev.Type),
				State:   BuildSessionState(s.id, ev.State, ev.Track, ev.Generation),
				Message: ev.Message,
			})

		case cmd := <-s.commands:
			m.notification.Broadcast(s.id, &musicv1.Notification{
				Type:    musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_COMMAND,
				Command: buildEngineCommand(cmd),
			})
		}
	}
}

func (m *Manager) reapLoop(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.reapIdle()
		}
	}
}

// reapIdle closes sessions without subscribers that have been inactive for
// longer than the idle timeout.
func (m *Manager) reapIdle() {
	now := m.now()
	for _, s := range m.sessions.All() {
		if m.notification.SubscriberCount(s.id) > 0 {
			continue
		}
		if now.Sub(s.LastActive()) < m.config.IdleTimeout {
			continue
		}
		if _, err := m.sessions.Remove(s.id); err != nil {
			continue
		}
		m.closeSession(s, "idle timeout")
	}
}
