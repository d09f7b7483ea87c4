package session

import (
	"sync"
	"sync/atomic"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/gramaria/internal/app/playback"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/infra/engine"
)

const commandBuffer = 256

// Session is the playback session of one page visit.
type Session struct {
	id         string
	controller *playback.Controller
	engine     playback.Engine
	openedAt   time.Time
	lastActive atomic.Int64 // unix nanos

	// Commands from a remote engine, delivered to subscribers by the pump.
	commands chan engine.Command
	replay   engineReplay

	done    chan struct{}
	stopped chan struct{}
}

func newSession(id string, now time.Time) *Session {
	s := &Session{
		id:       id,
		openedAt: now,
		commands: make(chan engine.Command, commandBuffer),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	s.lastActive.Store(now.UnixNano())
	return s
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Controller returns the playback controller of the session.
func (s *Session) Controller() *playback.Controller {
	return s.controller
}

// OpenedAt returns when the session was opened.
func (s *Session) OpenedAt() time.Time {
	return s.openedAt
}

// LastActive returns when the session last received a command.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// Done is closed once the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// State returns the wire representation of the session state.
func (s *Session) State() *musicv1.SessionState {
	st, t, gen := s.controller.Snapshot()
	return BuildSessionState(s.id, st, t, gen)
}

// InitialNotifications returns what a new subscriber receives first: the
// current state, then the instructions that bring a client-side engine to
// it. Sequence numbers are assigned by the notification manager.
func (s *Session) InitialNotifications() []*musicv1.Notification {
	st, t, gen := s.controller.Snapshot()
	ns := []*musicv1.Notification{{
		Type:  musicv1.NotificationType_NOTIFICATION_TYPE_INITIAL_STATE,
		State: BuildSessionState(s.id, st, t, gen),
	}}
	for _, cmd := range s.replay.commands(st.PositionSeconds) {
		ns = append(ns, &musicv1.Notification{
			Type:    musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_COMMAND,
			Command: buildEngineCommand(cmd),
		})
	}
	return ns
}

func (s *Session) touch(now time.Time) {
	s.lastActive.Store(now.UnixNano())
}

// enqueueCommand is the engine command sink. It runs under the controller
// lock, so it never blocks.
func (s *Session) enqueueCommand(cmd engine.Command) {
	s.replay.record(cmd)
	select {
	case s.commands <- cmd:
	default:
		zlog.Warn().Msgf("session: command buffer full, dropping command: session=%s op=%s", s.id, cmd.Op)
	}
}

// engineReplay keeps the latest instruction of each kind sent to a remote
// engine. Commands broadcast while nobody listens are lost, so a subscriber
// that attaches later is brought up to date from here.
type engineReplay struct {
	mu      sync.Mutex
	volume  *engine.Command
	repeat  *engine.Command
	load    *engine.Command
	playing bool
}

func (r *engineReplay) record(cmd engine.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch cmd.Op {
	case engine.OpVolume:
		r.volume = &cmd
	case engine.OpAutoRepeat:
		r.repeat = &cmd
	case engine.OpLoad:
		r.load = &cmd
		r.playing = false
	case engine.OpPlay:
		r.playing = true
	case engine.OpPause:
		r.playing = false
	}
}

// commands returns the replay sequence: volume, auto repeat, the current
// load, a seek to position when past the start, and play when playing.
func (r *engineReplay) commands(position float64) []engine.Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cmds []engine.Command
	if r.volume != nil {
		cmds = append(cmds, *r.volume)
	}
	if r.repeat != nil {
		cmds = append(cmds, *r.repeat)
	}
	if r.load == nil {
		return cmds
	}
	cmds = append(cmds, *r.load)
	if position > 0 {
		cmds = append(cmds, engine.Command{Op: engine.OpSeek, Seconds: position})
	}
	if r.playing {
		cmds = append(cmds, engine.Command{Op: engine.OpPlay})
	}
	return cmds
}
