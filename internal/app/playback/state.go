// Package playback provides the playback session controller.
package playback

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// LoopMode represents the loop policy applied when a track ends.
type LoopMode int

const (
	LoopOff LoopMode = iota // Stop after the last track
	LoopAll                 // Wrap to the first track after the last
	LoopOne                 // Repeat the current track (handled by the engine)
)

// String returns the string representation of the loop mode.
func (m LoopMode) String() string {
	switch m {
	case LoopOff:
		return "off"
	case LoopAll:
		return "all"
	case LoopOne:
		return "one"
	default:
		return "unknown"
	}
}

// Next returns the loop mode that follows m in the OFF -> ALL -> ONE cycle.
func (m LoopMode) Next() LoopMode {
	switch m {
	case LoopOff:
		return LoopAll
	case LoopAll:
		return LoopOne
	default:
		return LoopOff
	}
}

// ParseLoopMode converts a string to a LoopMode.
func ParseLoopMode(s string) (LoopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return LoopOff, nil
	case "all":
		return LoopAll, nil
	case "one":
		return LoopOne, nil
	default:
		return LoopOff, errors.Newf("unknown loop mode: %q", s)
	}
}

// State is a snapshot of the session state owned by the Controller.
type State struct {
	CurrentIndex    int
	IsPlaying       bool
	PositionSeconds float64
	DurationSeconds float64 // Only meaningful when DurationKnown is true
	DurationKnown   bool
	Volume          float64
	ShuffleEnabled  bool
	LoopMode        LoopMode
}

// DefaultState returns the state of a freshly entered page.
func DefaultState(volume float64) State {
	return State{
		CurrentIndex: 0,
		IsPlaying:    false,
		Volume:       clampUnit(volume),
		LoopMode:     LoopOff,
	}
}

// Duration returns the track duration, or 0 while it is unknown.
func (s State) Duration() float64 {
	if !s.DurationKnown {
		return 0
	}
	return s.DurationSeconds
}

// ProgressPercent returns playback progress as a percentage (0-100).
func (s State) ProgressPercent() float64 {
	d := s.Duration()
	if d <= 0 {
		return 0
	}
	p := s.PositionSeconds / d * 100
	if p > 100 {
		return 100
	}
	return p
}

// FormatTime renders seconds as m:ss. Non-finite and non-positive values render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "0:00"
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
