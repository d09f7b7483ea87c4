//go:build !((linux && cgo) || windows || darwin)

package engine

import (
	"sync"

	"github.com/osa030/gramaria/internal/app/playback"
)

// AudioAvailable indicates whether the local engine can produce sound.
// Audio requires cgo for the native sound libraries.
const AudioAvailable = false

// Local is a stand-in for builds without audio support. Every load fails
// with ErrAudioUnavailable.
type Local struct {
	mu     sync.Mutex
	out    *outbox
	closed bool
}

// NewLocal creates a local engine that cannot play.
func NewLocal(LocalSettings) *Local {
	return &Local{out: newOutbox()}
}

func (e *Local) Load(generation uint64, source string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.out.push(playback.Notification{
		Kind:       playback.NotifyError,
		Generation: generation,
		Err:        ErrAudioUnavailable,
	})
}

func (e *Local) Play() {}
func (e *Local) Pause() {}
func (e *Local) Seek(float64) {}
func (e *Local) SetVolume(float64) {}
func (e *Local) SetAutoRepeat(bool) {}

func (e *Local) Notifications() <-chan playback.Notification {
	return e.out.C()
}

func (e *Local) Close() error {
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
