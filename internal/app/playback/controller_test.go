package playback

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, n int) (*Controller, *fakeEngine) {
	t.Helper()
	engine := newFakeEngine()
	cfg := DefaultConfig()
	cfg.Rand = rand.New(rand.NewSource(42))
	cfg.EventBuffer = 1024
	c := NewController(testPlaylist(n), engine, cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c, engine
}

func TestNewController_Defaults(t *testing.T) {
	c, engine := newTestController(t, 6)

	s := c.State()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.False(t, s.IsPlaying)
	assert.Equal(t, 0.5, s.Volume)
	assert.False(t, s.ShuffleEnabled)
	assert.Equal(t, LoopOff, s.LoopMode)
	assert.False(t, s.DurationKnown)
	assert.Zero(t, s.PositionSeconds)

	assert.Equal(t, []string{"volume:0.5", "repeat:false", "load:1"}, engine.history())
	assert.Equal(t, "https://example.com/track-0.mp3", engine.loaded)
	assert.Equal(t, uint64(1), c.Generation())
	assert.Equal(t, "Track 0", c.CurrentTrack().Title)
}

func TestController_TogglePlayPause(t *testing.T) {
	c, engine := newTestController(t, 3)
	engine.reset()

	c.TogglePlayPause()
	assert.True(t, c.State().IsPlaying)
	assert.Equal(t, "play", engine.lastCommand())

	c.TogglePlayPause()
	assert.False(t, c.State().IsPlaying)
	assert.Equal(t, "pause", engine.lastCommand())
}

func TestController_AdvanceSequentialCycles(t *testing.T) {
	for n := 1; n <= 7; n++ {
		c, _ := newTestController(t, n)
		for step := 1; step <= 2*n; step++ {
			c.Advance()
			assert.Equal(t, step%n, c.State().CurrentIndex, "n=%d step=%d", n, step)
			assert.True(t, c.State().IsPlaying)
		}
	}
}

func TestController_AdvanceScenarioSixTracks(t *testing.T) {
	c, _ := newTestController(t, 6)

	var seen []int
	for i := 0; i < 5; i++ {
		c.Advance()
		seen = append(seen, c.State().CurrentIndex)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)

	c.Advance()
	assert.Equal(t, 0, c.State().CurrentIndex)
}

func TestController_RetreatSequentialWraps(t *testing.T) {
	c, _ := newTestController(t, 4)

	c.Retreat()
	assert.Equal(t, 3, c.State().CurrentIndex)
	c.Retreat()
	assert.Equal(t, 2, c.State().CurrentIndex)
}

func TestController_ShuffleNeverRepeats(t *testing.T) {
	for n := 2; n <= 6; n++ {
		c, _ := newTestController(t, n)
		c.SetShuffle(true)

		for i := 0; i < 200; i++ {
			before := c.State().CurrentIndex
			if i%2 == 0 {
				c.Advance()
			} else {
				c.Retreat()
			}
			after := c.State().CurrentIndex
			assert.NotEqual(t, before, after, "n=%d call=%d", n, i)
			assert.True(t, after >= 0 && after < n)
		}
	}
}

func TestController_ShuffleSingleTrack(t *testing.T) {
	c, _ := newTestController(t, 1)
	c.SetShuffle(true)

	c.Advance()
	assert.Equal(t, 0, c.State().CurrentIndex)
	c.Retreat()
	assert.Equal(t, 0, c.State().CurrentIndex)
}

func TestController_SelectTrackResets(t *testing.T) {
	c, engine := newTestController(t, 6)

	c.OnEngineDurationKnown(200)
	c.OnEngineProgress(42)
	require.True(t, c.State().DurationKnown)

	engine.reset()
	require.NoError(t, c.SelectTrack(3))

	s := c.State()
	assert.Equal(t, 3, s.CurrentIndex)
	assert.True(t, s.IsPlaying)
	assert.False(t, s.DurationKnown)
	assert.Zero(t, s.Duration())
	assert.Zero(t, s.PositionSeconds)
	assert.Equal(t, []string{"load:2", "play"}, engine.history())
	assert.Equal(t, "https://example.com/track-3.mp3", engine.loaded)

	// Selecting the current track again still resets.
	c.OnEngineDurationKnown(100)
	c.OnEngineProgress(10)
	require.NoError(t, c.SelectTrack(3))
	assert.False(t, c.State().DurationKnown)
	assert.Zero(t, c.State().PositionSeconds)
}

func TestController_SelectTrackInvalidIndex(t *testing.T) {
	c, engine := newTestController(t, 3)
	require.NoError(t, c.SelectTrack(1))
	before := c.State()
	engine.reset()

	for _, idx := range []int{-1, 3, 100} {
		err := c.SelectTrack(idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidIndex))
	}
	assert.Equal(t, before, c.State())
	assert.Empty(t, engine.history())
}

func TestController_OnTrackNaturallyEnded(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		shuffle     bool
		loop        LoopMode
		wantPlaying bool
		wantIndex   int // -1 means "any index other than start"
		wantStopped bool
	}{
		{name: "middle track advances", start: 2, loop: LoopOff, wantPlaying: true, wantIndex: 3},
		{name: "last track stops", start: 5, loop: LoopOff, wantPlaying: false, wantIndex: 5, wantStopped: true},
		{name: "last track with loop all wraps", start: 5, loop: LoopAll, wantPlaying: true, wantIndex: 0},
		{name: "last track with shuffle continues", start: 5, shuffle: true, loop: LoopOff, wantPlaying: true, wantIndex: -1},
		{name: "middle track with shuffle continues", start: 1, shuffle: true, loop: LoopAll, wantPlaying: true, wantIndex: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, engine := newTestController(t, 6)
			require.NoError(t, c.SelectTrack(tt.start))
			c.SetShuffle(tt.shuffle)
			c.SetLoopMode(tt.loop)
			c.OnEngineProgress(180)
			engine.reset()

			c.OnTrackNaturallyEnded()

			s := c.State()
			assert.Equal(t, tt.wantPlaying, s.IsPlaying)
			if tt.wantIndex >= 0 {
				assert.Equal(t, tt.wantIndex, s.CurrentIndex)
			} else {
				assert.NotEqual(t, tt.start, s.CurrentIndex)
			}
			if tt.wantStopped {
				assert.Zero(t, s.PositionSeconds)
				assert.Equal(t, []string{"pause", "seek:0"}, engine.history())
			}
		})
	}
}

func TestController_OnTrackNaturallyEndedLoopOneIsNoop(t *testing.T) {
	for _, start := range []int{0, 3, 5} {
		for _, shuffle := range []bool{false, true} {
			c, engine := newTestController(t, 6)
			require.NoError(t, c.SelectTrack(start))
			c.SetShuffle(shuffle)
			c.SetLoopMode(LoopOne)
			c.OnEngineDurationKnown(120)
			c.OnEngineProgress(60)
			before := c.State()
			engine.reset()

			c.OnTrackNaturallyEnded()

			assert.Equal(t, before, c.State())
			assert.Empty(t, engine.history())
		}
	}
}

func TestController_LoopModeCycle(t *testing.T) {
	c, engine := newTestController(t, 2)
	engine.reset()

	assert.Equal(t, LoopAll, c.CycleLoopMode())
	assert.Equal(t, "repeat:false", engine.lastCommand())
	assert.Equal(t, LoopOne, c.CycleLoopMode())
	assert.Equal(t, "repeat:true", engine.lastCommand())
	assert.Equal(t, LoopOff, c.CycleLoopMode())
	assert.Equal(t, "repeat:false", engine.lastCommand())
	assert.Equal(t, LoopOff, c.State().LoopMode)
}

func TestController_SetLoopModeUnknownFallsBackToOff(t *testing.T) {
	c, engine := newTestController(t, 2)
	c.SetLoopMode(LoopOne)
	c.SetLoopMode(LoopMode(42))
	assert.Equal(t, LoopOff, c.State().LoopMode)
	assert.False(t, engine.autoRepeat)
}

func TestController_ToggleShuffle(t *testing.T) {
	c, _ := newTestController(t, 2)
	assert.True(t, c.ToggleShuffle())
	assert.True(t, c.State().ShuffleEnabled)
	assert.False(t, c.ToggleShuffle())
}

func TestController_SetVolumeClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: -0.3, want: 0},
		{in: 1.7, want: 1},
		{in: 0.25, want: 0.25},
		{in: 0, want: 0},
		{in: 1, want: 1},
		{in: math.NaN(), want: 0},
		{in: math.Inf(1), want: 1},
	}

	for _, tt := range tests {
		c, engine := newTestController(t, 1)
		c.SetVolume(tt.in)
		assert.Equal(t, tt.want, c.State().Volume, "in=%v", tt.in)
		assert.Equal(t, tt.want, engine.volume, "in=%v", tt.in)
	}
}

func TestController_Seek(t *testing.T) {
	t.Run("unknown duration clamps only below", func(t *testing.T) {
		c, engine := newTestController(t, 1)
		c.Seek(-5)
		assert.Zero(t, c.State().PositionSeconds)
		c.Seek(500)
		assert.Equal(t, 500.0, c.State().PositionSeconds)
		assert.Equal(t, 500.0, engine.position)
	})

	t.Run("known duration clamps above", func(t *testing.T) {
		c, engine := newTestController(t, 1)
		c.OnEngineDurationKnown(120)
		c.Seek(500)
		assert.Equal(t, 120.0, c.State().PositionSeconds)
		assert.Equal(t, 120.0, engine.position)
		c.Seek(30.5)
		assert.Equal(t, 30.5, c.State().PositionSeconds)
	})

	t.Run("nan seeks to start", func(t *testing.T) {
		c, _ := newTestController(t, 1)
		c.Seek(math.NaN())
		assert.Zero(t, c.State().PositionSeconds)
	})
}

func TestController_EngineSync(t *testing.T) {
	c, _ := newTestController(t, 2)

	c.OnEngineDurationKnown(math.NaN())
	assert.False(t, c.State().DurationKnown)
	c.OnEngineDurationKnown(math.Inf(1))
	assert.False(t, c.State().DurationKnown)

	c.OnEngineDurationKnown(95.5)
	assert.True(t, c.State().DurationKnown)
	assert.Equal(t, 95.5, c.State().Duration())

	c.OnEngineProgress(12.25)
	assert.Equal(t, 12.25, c.State().PositionSeconds)
	c.OnEngineProgress(-1)
	assert.Zero(t, c.State().PositionSeconds)
}

func TestController_HandleNotificationDropsStale(t *testing.T) {
	c, _ := newTestController(t, 3)
	stale := c.Generation()

	require.NoError(t, c.SelectTrack(1))
	current := c.Generation()
	require.NotEqual(t, stale, current)

	c.HandleNotification(Notification{Kind: NotifyDurationKnown, Generation: stale, Seconds: 300})
	c.HandleNotification(Notification{Kind: NotifyProgress, Generation: stale, Seconds: 250})
	c.HandleNotification(Notification{Kind: NotifyEnded, Generation: stale})

	s := c.State()
	assert.Equal(t, 1, s.CurrentIndex)
	assert.False(t, s.DurationKnown)
	assert.Zero(t, s.PositionSeconds)

	c.HandleNotification(Notification{Kind: NotifyDurationKnown, Generation: current, Seconds: 180})
	c.HandleNotification(Notification{Kind: NotifyProgress, Generation: current, Seconds: 3})
	s = c.State()
	assert.Equal(t, 180.0, s.Duration())
	assert.Equal(t, 3.0, s.PositionSeconds)

	c.HandleNotification(Notification{Kind: NotifyEnded, Generation: current})
	assert.Equal(t, 2, c.State().CurrentIndex)
}

func TestController_EngineErrorKeepsOptimisticState(t *testing.T) {
	c, _ := newTestController(t, 3)
	c.TogglePlayPause()
	before := c.State()

	c.HandleNotification(Notification{
		Kind:       NotifyError,
		Generation: c.Generation(),
		Err:        errors.New("resource unreachable"),
	})
	assert.Equal(t, before, c.State())

	var found bool
	for len(c.Events()) > 0 {
		ev := <-c.Events()
		if ev.Type == EventEngineError {
			found = true
			assert.Equal(t, "resource unreachable", ev.Message)
		}
	}
	assert.True(t, found)
}

func TestController_Events(t *testing.T) {
	c, _ := newTestController(t, 3)

	c.TogglePlayPause()
	c.Advance()
	c.OnEngineDurationKnown(60)
	c.OnEngineProgress(1)

	var types []EventType
	for len(c.Events()) > 0 {
		types = append(types, (<-c.Events()).Type)
	}
	assert.Equal(t, []EventType{EventStateChanged, EventTrackChanged, EventDurationKnown, EventProgress}, types)
}

func TestController_EventsDropWhenFull(t *testing.T) {
	engine := newFakeEngine()
	cfg := DefaultConfig()
	cfg.EventBuffer = 2
	c := NewController(testPlaylist(2), engine, cfg)
	defer c.Close()

	for i := 0; i < 10; i++ {
		c.OnEngineProgress(float64(i))
	}
	assert.Len(t, c.Events(), 2)
	assert.Equal(t, 9.0, c.State().PositionSeconds)
}

func TestController_Close(t *testing.T) {
	engine := newFakeEngine()
	c := NewController(testPlaylist(2), engine, DefaultConfig())

	require.NoError(t, c.Close())
	assert.True(t, engine.closed)
	require.NoError(t, c.Close())

	// Operations after close are ignored.
	c.TogglePlayPause()
	c.Advance()
	assert.False(t, c.State().IsPlaying)
	assert.Equal(t, 0, c.State().CurrentIndex)

	_, ok := <-c.Events()
	assert.False(t, ok)
}

func TestController_SnapshotAndEventGeneration(t *testing.T) {
	c, _ := newTestController(t, 3)

	require.NoError(t, c.SelectTrack(2))
	st, tr, gen := c.Snapshot()
	assert.Equal(t, 2, st.CurrentIndex)
	assert.Equal(t, "Track 2", tr.Title)
	assert.Equal(t, uint64(2), gen)

	ev := <-c.Events()
	assert.Equal(t, EventTrackChanged, ev.Type)
	assert.Equal(t, uint64(2), ev.Generation)
	assert.Equal(t, "Track 2", ev.Track.Title)
}
