package engine

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/gramaria/internal/app/playback"
)

// ErrUnknownCommand is returned by Apply for an op it does not know.
var ErrUnknownCommand = errors.New("unknown engine command")

// Apply carries out a command issued by a server-side Remote engine on eng.
// It is the client half of Remote.
func Apply(eng playback.Engine, cmd Command) error {
	switch cmd.Op {
	case OpLoad:
		eng.Load(cmd.Generation, cmd.Source)
	case OpPlay:
		eng.Play()
	case OpPause:
		eng.Pause()
	case OpSeek:
		eng.Seek(cmd.Seconds)
	case OpVolume:
		eng.SetVolume(cmd.Volume)
	case OpAutoRepeat:
		eng.SetAutoRepeat(cmd.Enabled)
	default:
		return errors.Wrapf(ErrUnknownCommand, "op %q", cmd.Op)
	}
	return nil
}

// Report is the wire form of an engine notification sent back to a
// server-side Remote engine.
type Report struct {
	Kind       string
	Generation uint64
	Seconds    float64
	Error      string
}

// NewReport converts a notification of a client-side engine.
func NewReport(n playback.Notification) Report {
	r := Report{
		Kind:       n.Kind.String(),
		Generation: n.Generation,
		Seconds:    n.Seconds,
	}
	if n.Err != nil {
		r.Error = n.Err.Error()
	}
	return r
}

// NewClientLocal creates a local speaker engine with default settings, for
// clients that play what a remote engine instructs.
func NewClientLocal() (*Local, error) {
	var s LocalSettings
	if err := decodeSettings(nil, &s); err != nil {
		return nil, errors.Wrap(err, "invalid local engine settings")
	}
	return NewLocal(s), nil
}
