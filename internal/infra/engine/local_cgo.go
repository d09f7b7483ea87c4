//go:build (linux && cgo) || windows || darwin

package engine

import (
	"bytes"
	"context"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/gramaria/internal/app/playback"
)

// AudioAvailable indicates whether the local engine can produce sound.
const AudioAvailable = true

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerRate beep.SampleRate
)

// initSpeaker initializes the shared speaker once. Every local engine
// mixes into the same output.
func initSpeaker(settings LocalSettings) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = beep.SampleRate(settings.SampleRate)
		bufferSize := speakerRate.N(time.Duration(settings.BufferMs) * time.Millisecond)
		speakerErr = speaker.Init(speakerRate, bufferSize)
	})
	return speakerRate, speakerErr
}

// Local decodes mp3 resources and plays them through the host speaker.
type Local struct {
	mu sync.Mutex

	settings LocalSettings
	client   *http.Client
	out      *outbox

	generation uint64
	cancelLoad context.CancelFunc

	streamer beep.StreamSeekCloser
	format   beep.Format
	rate     beep.SampleRate
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	active   bool // a sequence for the current stream is queued on the speaker

	// Intents received before the resource finished decoding.
	wantPlay    bool
	pendingSeek float64
	autoRepeat  bool
	level       float64

	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// NewLocal creates a local speaker engine.
func NewLocal(settings LocalSettings) *Local {
	e := &Local{
		settings: settings,
		client:   &http.Client{Timeout: settings.fetchTimeout()},
		out:      newOutbox(),
		level:    1,
		done:     make(chan struct{}),
	}

	e.wg.Add(1)
	go e.reportProgress(time.Duration(settings.ProgressIntervalMs) * time.Millisecond)
	return e
}

func (e *Local) Load(generation uint64, source string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	if e.cancelLoad != nil {
		e.cancelLoad()
	}
	e.stopLocked()
	e.generation = generation
	e.wantPlay = false
	e.pendingSeek = 0

	ctx, cancel := context.WithCancel(context.Background())
	e.cancelLoad = cancel

	e.wg.Add(1)
	go e.load(ctx, generation, source)
}

func (e *Local) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.wantPlay = true
	if e.streamer != nil && !e.active {
		e.startLocked(e.generation)
		return
	}
	e.setPausedLocked(false)
}

func (e *Local) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.wantPlay = false
	e.setPausedLocked(true)
}

func (e *Local) Seek(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		e.pendingSeek = seconds
		return
	}
	if err := e.seekLocked(seconds); err != nil {
		e.pushLocked(playback.Notification{Kind: playback.NotifyError, Err: err})
	}
}

func (e *Local) SetVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.level = v
	if e.volume != nil {
		speaker.Lock()
		applyLevel(e.volume, v)
		speaker.Unlock()
	}
}

func (e *Local) SetAutoRepeat(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoRepeat = enabled
}

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
	if e.cancelLoad != nil {
		e.cancelLoad()
	}
	e.stopLocked()
	e.mu.Unlock()

	close(e.done)
	e.wg.Wait()
	e.out.close()
	return nil
}

// load fetches and decodes the resource, then hands it to the speaker.
func (e *Local) load(ctx context.Context, generation uint64, source string) {
	defer e.wg.Done()

	rate, err := initSpeaker(e.settings)
	if err != nil {
		e.fail(generation, errors.Wrap(err, "failed to initialize speaker"))
		return
	}

	data, err := fetchSource(ctx, e.client, source, e.settings.MaxBytes)
	if err != nil {
		if ctx.Err() == nil {
			e.fail(generation, err)
		}
		return
	}

	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		e.fail(generation, errors.Wrapf(err, "failed to decode %s", source))
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || generation != e.generation {
		streamer.Close()
		return
	}

	e.streamer = streamer
	e.format = format
	e.rate = rate

	if e.pendingSeek > 0 {
		if err := e.seekLocked(e.pendingSeek); err != nil {
			zlog.Warn().Err(err).Msgf("local engine: pending seek failed: generation=%d", generation)
		}
	}

	e.pushLocked(playback.Notification{
		Kind:       playback.NotifyDurationKnown,
		Generation: generation,
		Seconds:    format.SampleRate.D(streamer.Len()).Seconds(),
	})
	e.startLocked(generation)

	zlog.Debug().Msgf("local engine: decoded: generation=%d source=%s", generation, source)
}

// startLocked queues the current stream on the speaker behind a fresh
// resampler, pause control and volume effect.
func (e *Local) startLocked(generation uint64) {
	e.ctrl = &beep.Ctrl{Streamer: beep.Resample(4, e.format.SampleRate, e.rate, e.streamer), Paused: !e.wantPlay}
	e.volume = &effects.Volume{Streamer: e.ctrl, Base: 2}
	applyLevel(e.volume, e.level)
	e.active = true

	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		// Runs on the speaker goroutine with the speaker lock held.
		go e.onStreamEnd(generation)
	})))
}

func (e *Local) onStreamEnd(generation uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || generation != e.generation || e.streamer == nil {
		return
	}
	e.active = false

	if e.autoRepeat {
		speaker.Lock()
		err := e.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			e.pushLocked(playback.Notification{Kind: playback.NotifyError, Generation: generation, Err: err})
			return
		}
		e.startLocked(generation)
		return
	}

	e.wantPlay = false
	e.pushLocked(playback.Notification{Kind: playback.NotifyEnded, Generation: generation})
}

func (e *Local) reportProgress(interval time.Duration) {
	defer e.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			e.mu.Lock()
			if e.streamer != nil && e.ctrl != nil && e.wantPlay {
				speaker.Lock()
				pos := e.streamer.Position()
				speaker.Unlock()
				e.pushLocked(playback.Notification{
					Kind:       playback.NotifyProgress,
					Generation: e.generation,
					Seconds:    e.format.SampleRate.D(pos).Seconds(),
				})
			}
			e.mu.Unlock()
		}
	}
}

func (e *Local) fail(generation uint64, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if generation != e.generation {
		return
	}
	e.pushLocked(playback.Notification{Kind: playback.NotifyError, Generation: generation, Err: err})
}

func (e *Local) seekLocked(seconds float64) error {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	samples := e.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	if samples >= e.streamer.Len() {
		samples = e.streamer.Len() - 1
	}
	if samples < 0 {
		samples = 0
	}

	speaker.Lock()
	defer speaker.Unlock()
	return errors.Wrap(e.streamer.Seek(samples), "seek failed")
}

func (e *Local) setPausedLocked(paused bool) {
	if e.ctrl == nil {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = paused
	speaker.Unlock()
}

// stopLocked silences and releases the current stream.
func (e *Local) stopLocked() {
	speaker.Lock()
	if e.ctrl != nil {
		// A nil streamer drains the sequence so the speaker drops it.
		e.ctrl.Streamer = nil
	}
	if e.streamer != nil {
		e.streamer.Close()
	}
	speaker.Unlock()
	e.streamer = nil
	e.ctrl = nil
	e.volume = nil
	e.active = false
}

func (e *Local) pushLocked(n playback.Notification) {
	if n.Generation == 0 {
		n.Generation = e.generation
	}
	e.out.push(n)
}

// applyLevel maps a linear [0,1] level onto the exponential volume effect.
func applyLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(level)
}
