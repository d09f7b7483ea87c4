package engine

import (
	"math"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/gramaria/internal/app/playback"
)

// SimulatedSettings configures the simulated engine.
type SimulatedSettings struct {
	// Used for sources that have no entry in Durations.
	DefaultDurationSec float64 `mapstructure:"default_duration_sec" default:"180" validate:"gt=0"`
	// Per-source durations. A negative value simulates a stream whose
	// duration never becomes known.
	Durations          map[string]float64 `mapstructure:"durations"`
	ProgressIntervalMs int                `mapstructure:"progress_interval_ms" default:"1000" validate:"gte=10,lte=60000"`
	// Playback speed multiplier, handy for demos.
	Speed float64 `mapstructure:"speed" default:"1" validate:"gt=0,lte=1000"`
}

// Simulated is a media engine driven by the wall clock. It produces the
// notifications a real engine would without decoding any audio.
type Simulated struct {
	mu sync.Mutex

	settings SimulatedSettings
	out      *outbox

	generation uint64
	source     string
	loaded     bool
	duration   float64 // negative while unknown
	position   float64
	playing    bool
	autoRepeat bool
	volume     float64
	lastTick   time.Time

	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// NewSimulated creates a simulated engine and starts its clock.
func NewSimulated(settings SimulatedSettings) *Simulated {
	if settings.ProgressIntervalMs <= 0 {
		settings.ProgressIntervalMs = 1000
	}
	if settings.Speed <= 0 {
		settings.Speed = 1
	}

	e := &Simulated{
		settings: settings,
		out:      newOutbox(),
		duration: -1,
		volume:   1,
		done:     make(chan struct{}),
	}

	e.wg.Add(1)
	go e.run(time.Duration(settings.ProgressIntervalMs) * time.Millisecond)
	return e
}

// Load replaces the current resource. The duration is reported right away
// unless the source is configured as unknown.
func (e *Simulated) Load(generation uint64, source string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.generation = generation
	e.source = source
	e.loaded = true
	e.position = 0
	e.playing = false
	e.duration = e.durationFor(source)

	zlog.Debug().Msgf("simulated engine: loaded: generation=%d source=%s duration=%.1f", generation, source, e.duration)

	if e.duration >= 0 {
		e.out.push(playback.Notification{
			Kind:       playback.NotifyDurationKnown,
			Generation: generation,
			Seconds:    e.duration,
		})
	}
}

func (e *Simulated) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.loaded || e.playing {
		return
	}
	e.playing = true
	e.lastTick = time.Now()
}

func (e *Simulated) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.playing {
		return
	}
	e.advanceLocked(time.Now())
	e.playing = false
}

func (e *Simulated) Seek(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	if e.duration >= 0 {
		seconds = math.Min(seconds, e.duration)
	}
	e.position = seconds
	e.lastTick = time.Now()
}

func (e *Simulated) SetVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = v
}

func (e *Simulated) SetAutoRepeat(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoRepeat = enabled
}

func (e *Simulated) Notifications() <-chan playback.Notification {
	return e.out.C()
}

// Volume returns the last volume set.
func (e *Simulated) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// Close stops the clock and closes the notification channel.
func (e *Simulated) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	close(e.done)
	e.wg.Wait()
	e.out.close()
	return nil
}

func (e *Simulated) run(interval time.Duration) {
	defer e.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return
		case now := <-ticker.C:
			e.tick(now)
		}
	}
}

func (e *Simulated) tick(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.playing {
		return
	}

	e.advanceLocked(now)

	if e.duration >= 0 && e.position >= e.duration {
		if e.autoRepeat {
			e.position = 0
			e.push(playback.NotifyProgress, 0)
			return
		}
		e.position = e.duration
		e.playing = false
		e.push(playback.NotifyProgress, e.duration)
		e.push(playback.NotifyEnded, 0)
		return
	}

	e.push(playback.NotifyProgress, e.position)
}

// advanceLocked moves the position by the wall-clock time since the last tick.
func (e *Simulated) advanceLocked(now time.Time) {
	elapsed := now.Sub(e.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	e.position += elapsed.Seconds() * e.settings.Speed
	e.lastTick = now
}

func (e *Simulated) push(kind playback.NotificationKind, seconds float64) {
	e.out.push(playback.Notification{Kind: kind, Generation: e.generation, Seconds: seconds})
}

func (e *Simulated) durationFor(source string) float64 {
	if d, ok := e.settings.Durations[source]; ok {
		if d < 0 {
			return -1
		}
		return d
	}
	return e.settings.DefaultDurationSec
}
