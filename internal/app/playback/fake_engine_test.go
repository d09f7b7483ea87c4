package playback

import (
	"fmt"
	"sync"

	"github.com/osa030/gramaria/internal/domain/playlist"
	"github.com/osa030/gramaria/internal/domain/track"
)

// fakeEngine records every command it receives.
type fakeEngine struct {
	mu         sync.Mutex
	commands   []string
	loaded     string
	generation uint64
	volume     float64
	autoRepeat bool
	position   float64
	closed     bool
	notifyCh   chan Notification
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{notifyCh: make(chan Notification, 16)}
}

func (e *fakeEngine) record(cmd string) {
	e.commands = append(e.commands, cmd)
}

func (e *fakeEngine) Load(generation uint64, source string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation = generation
	e.loaded = source
	e.position = 0
	e.record(fmt.Sprintf("load:%d", generation))
}

func (e *fakeEngine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.record("play")
}

func (e *fakeEngine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.record("pause")
}

func (e *fakeEngine) Seek(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = seconds
	e.record(fmt.Sprintf("seek:%g", seconds))
}

func (e *fakeEngine) SetVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = v
	e.record(fmt.Sprintf("volume:%g", v))
}

func (e *fakeEngine) SetAutoRepeat(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoRepeat = enabled
	e.record(fmt.Sprintf("repeat:%t", enabled))
}

func (e *fakeEngine) Notifications() <-chan Notification {
	return e.notifyCh
}

func (e *fakeEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

func (e *fakeEngine) lastCommand() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.commands) == 0 {
		return ""
	}
	return e.commands[len(e.commands)-1]
}

func (e *fakeEngine) reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commands = nil
}

func (e *fakeEngine) history() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.commands))
	copy(out, e.commands)
	return out
}

func testPlaylist(n int) *playlist.Playlist {
	tracks := make([]track.Track, n)
	for i := range tracks {
		tracks[i] = track.Track{
			Title:  fmt.Sprintf("Track %d", i),
			Source: fmt.Sprintf("https://example.com/track-%d.mp3", i),
		}
	}
	return playlist.MustNew("test", tracks)
}
