package playback

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/osa030/gramaria/internal/domain/playlist"
	"github.com/osa030/gramaria/internal/domain/track"
)

// Errors
var (
	ErrInvalidIndex = errors.New("track index out of range")
)

const defaultEventBuffer = 64

// Config holds controller configuration.
type Config struct {
	InitialVolume float64    // Volume applied on page entry, clamped to [0,1]
	EventBuffer   int        // Capacity of the event channel
	Rand          *rand.Rand // Source for shuffle picks; nil seeds from the clock
}

// DefaultConfig returns the page-entry defaults.
func DefaultConfig() Config {
	return Config{
		InitialVolume: 0.5,
		EventBuffer:   defaultEventBuffer,
	}
}

// Controller owns the playback session state for one page visit and
// mediates between the transport UI and the media engine.
type Controller struct {
	mu sync.RWMutex

	playlist *playlist.Playlist
	engine   Engine
	state    State

	// Incremented on every load; engine notifications for older
	// generations are dropped.
	generation uint64

	rng     *rand.Rand
	eventCh chan Event
	closed  bool
}

// NewController creates a controller in the page-entry state and loads
// the first track into the engine without starting playback.
func NewController(pl *playlist.Playlist, engine Engine, config Config) *Controller {
	if config.EventBuffer <= 0 {
		config.EventBuffer = defaultEventBuffer
	}
	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &Controller{
		playlist:   pl,
		engine:     engine,
		state:      DefaultState(config.InitialVolume),
		generation: 1,
		rng:        rng,
		eventCh:    make(chan Event, config.EventBuffer),
	}

	first, _ := pl.At(0)
	engine.SetVolume(c.state.Volume)
	engine.SetAutoRepeat(false)
	engine.Load(c.generation, first.Source)

	return c
}

// Events returns the event channel. It is closed by Close.
func (c *Controller) Events() <-chan Event {
	return c.eventCh
}

// State returns a snapshot of the session state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentTrack returns the track at the current index.
func (c *Controller) CurrentTrack() track.Track {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, _ := c.playlist.At(c.state.CurrentIndex)
	return t
}

// Snapshot returns the state together with the current track and the
// generation, read under one lock.
func (c *Controller) Snapshot() (State, track.Track, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, _ := c.playlist.At(c.state.CurrentIndex)
	return c.state, t, c.generation
}

// Playlist returns the playlist the session plays from.
func (c *Controller) Playlist() *playlist.Playlist {
	return c.playlist
}

// Generation returns the generation of the currently loaded track.
func (c *Controller) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// TogglePlayPause flips the play intent and commands the engine accordingly.
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.state.IsPlaying = !c.state.IsPlaying
	if c.state.IsPlaying {
		c.engine.Play()
	} else {
		c.engine.Pause()
	}
	c.sendEventLocked(EventStateChanged)
}

// SelectTrack jumps to the track at index and starts playing it.
// An out-of-range index is rejected and leaves the state untouched.
func (c *Controller) SelectTrack(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}

	if !c.playlist.Valid(index) {
		return errors.Wrapf(ErrInvalidIndex, "index %d, playlist length %d", index, c.playlist.Len())
	}
	c.changeTrackLocked(index)
	return nil
}

// Advance moves to the next track according to the shuffle policy.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.advanceLocked()
}

// Retreat moves to the previous track. Under shuffle it picks another
// random track because no play history is kept.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	next := PreviousIndex(c.state.CurrentIndex, c.playlist.Len(), c.state.ShuffleEnabled, c.rng.Intn)
	c.changeTrackLocked(next)
}

// SetShuffle enables or disables shuffle.
func (c *Controller) SetShuffle(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.ShuffleEnabled = enabled
	c.sendEventLocked(EventStateChanged)
}

// ToggleShuffle flips shuffle and returns the new value.
func (c *Controller) ToggleShuffle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.state.ShuffleEnabled
	}
	c.state.ShuffleEnabled = !c.state.ShuffleEnabled
	c.sendEventLocked(EventStateChanged)
	return c.state.ShuffleEnabled
}

// SetLoopMode sets the loop policy. LoopOne turns on engine auto-repeat,
// every other mode turns it off. Unknown modes are treated as LoopOff.
func (c *Controller) SetLoopMode(mode LoopMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.setLoopModeLocked(mode)
}

// CycleLoopMode advances OFF -> ALL -> ONE -> OFF and returns the new mode.
func (c *Controller) CycleLoopMode() LoopMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.state.LoopMode
	}
	c.setLoopModeLocked(c.state.LoopMode.Next())
	return c.state.LoopMode
}

// SetVolume clamps v to [0,1], stores it and forwards it to the engine.
func (c *Controller) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.Volume = clampUnit(v)
	c.engine.SetVolume(c.state.Volume)
	c.sendEventLocked(EventStateChanged)
}

// Seek jumps to seconds, clamped to [0, duration] when the duration is known.
func (c *Controller) Seek(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	if c.state.DurationKnown {
		seconds = math.Min(seconds, c.state.DurationSeconds)
	} else if math.IsInf(seconds, 1) {
		seconds = 0
	}

	c.state.PositionSeconds = seconds
	c.engine.Seek(seconds)
	c.sendEventLocked(EventStateChanged)
}

// OnTrackNaturallyEnded applies the end-of-track policy.
func (c *Controller) OnTrackNaturallyEnded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.onTrackEndedLocked()
}

// OnEngineProgress records the position reported by the engine.
func (c *Controller) OnEngineProgress(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.onProgressLocked(seconds)
}

// OnEngineDurationKnown records the duration reported by the engine.
func (c *Controller) OnEngineDurationKnown(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.onDurationLocked(seconds)
}

// HandleNotification applies an engine notification. Notifications about a
// resource other than the one most recently loaded are dropped.
func (c *Controller) HandleNotification(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if n.Generation != c.generation {
		zlog.Debug().Msgf("playback: dropping stale notification: kind=%s generation=%d current=%d",
			n.Kind, n.Generation, c.generation)
		return
	}

	switch n.Kind {
	case NotifyProgress:
		c.onProgressLocked(n.Seconds)
	case NotifyDurationKnown:
		c.onDurationLocked(n.Seconds)
	case NotifyEnded:
		c.onTrackEndedLocked()
	case NotifyError:
		t, _ := c.playlist.At(c.state.CurrentIndex)
		msg := "engine error"
		if n.Err != nil {
			msg = n.Err.Error()
		}
		zlog.Warn().Err(n.Err).Msgf("playback: engine failure: track=%s source=%s", t.Title, t.Source)
		c.sendEventWithMessageLocked(EventEngineError, msg)
	default:
		zlog.Debug().Msgf("playback: ignoring notification of unknown kind %d", n.Kind)
	}
}

// Close releases the engine and closes the event channel.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}

	c.closed = true
	close(c.eventCh)
	if err := c.engine.Close(); err != nil {
		return errors.Wrap(err, "failed to close engine")
	}
	return nil
}

func (c *Controller) advanceLocked() {
	next := NextIndex(c.state.CurrentIndex, c.playlist.Len(), c.state.ShuffleEnabled, c.rng.Intn)
	c.changeTrackLocked(next)
}

// changeTrackLocked loads and plays the track at index.
// Must be called with lock held.
func (c *Controller) changeTrackLocked(index int) {
	c.generation++
	c.state.CurrentIndex = index
	c.state.PositionSeconds = 0
	c.state.DurationSeconds = 0
	c.state.DurationKnown = false
	c.state.IsPlaying = true

	t, _ := c.playlist.At(index)
	zlog.Debug().Msgf("playback: loading track: index=%d title=%s generation=%d", index, t.Title, c.generation)

	c.engine.Load(c.generation, t.Source)
	c.engine.Play()
	c.sendEventLocked(EventTrackChanged)
}

// onTrackEndedLocked decides what happens after a natural end of track.
// Must be called with lock held.
func (c *Controller) onTrackEndedLocked() {
	if c.state.LoopMode == LoopOne {
		// The engine repeats the track itself.
		return
	}

	last := c.state.CurrentIndex == c.playlist.Len()-1
	if c.state.LoopMode == LoopOff && !c.state.ShuffleEnabled && last {
		c.state.IsPlaying = false
		c.state.PositionSeconds = 0
		c.engine.Pause()
		c.engine.Seek(0)
		zlog.Debug().Msg("playback: reached end of playlist, stopping")
		c.sendEventLocked(EventPlaybackStopped)
		return
	}

	c.advanceLocked()
}

func (c *Controller) onProgressLocked(seconds float64) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return
	}
	c.state.PositionSeconds = math.Max(seconds, 0)
	c.sendEventLocked(EventProgress)
}

func (c *Controller) onDurationLocked(seconds float64) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		// Live or unresolved resources report no usable duration.
		return
	}
	c.state.DurationSeconds = seconds
	c.state.DurationKnown = true
	c.sendEventLocked(EventDurationKnown)
}

func (c *Controller) setLoopModeLocked(mode LoopMode) {
	if mode != LoopAll && mode != LoopOne {
		mode = LoopOff
	}
	c.state.LoopMode = mode
	c.engine.SetAutoRepeat(mode == LoopOne)
	c.sendEventLocked(EventStateChanged)
}

// sendEventLocked sends an event without blocking.
// Must be called with lock held.
func (c *Controller) sendEventLocked(t EventType) {
	c.sendEventWithMessageLocked(t, "")
}

func (c *Controller) sendEventWithMessageLocked(t EventType, msg string) {
	if c.closed {
		return
	}
	tr, _ := c.playlist.At(c.state.CurrentIndex)
	select {
	case c.eventCh <- Event{Type: t, State: c.state, Track: tr, Generation: c.generation, Message: msg}:
	default:
		// Channel full, drop event. Subscribers resync from the next one.
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return lo.Clamp(v, 0, 1)
}
