package engine

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/osa030/gramaria/internal/app/playback"
)

// Remote is an engine that lives in the client. Commands are handed to the
// sink; the client reports progress back through Deliver.
type Remote struct {
	mu     sync.Mutex
	sink   CommandSink
	out    *outbox
	closed bool
}

// NewRemote creates a remote engine that forwards commands to sink.
func NewRemote(sink CommandSink) *Remote {
	return &Remote{
		sink: sink,
		out:  newOutbox(),
	}
}

func (e *Remote) Load(generation uint64, source string) {
	e.send(Command{Op: OpLoad, Generation: generation, Source: source})
}

func (e *Remote) Play() {
	e.send(Command{Op: OpPlay})
}

func (e *Remote) Pause() {
	e.send(Command{Op: OpPause})
}

func (e *Remote) Seek(seconds float64) {
	e.send(Command{Op: OpSeek, Seconds: seconds})
}

func (e *Remote) SetVolume(v float64) {
	e.send(Command{Op: OpVolume, Volume: v})
}

func (e *Remote) SetAutoRepeat(enabled bool) {
	e.send(Command{Op: OpAutoRepeat, Enabled: enabled})
}

func (e *Remote) Notifications() <-chan playback.Notification {
	return e.out.C()
}

// Deliver feeds a notification reported by the client.
func (e *Remote) Deliver(n playback.Notification) error {
	if !e.out.push(n) {
		return errors.Wrapf(ErrEngineClosed, "dropping %s notification", n.Kind)
	}
	return nil
}

func (e *Remote) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	e.out.close()
	return nil
}

func (e *Remote) send(cmd Command) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.sink(cmd)
}
