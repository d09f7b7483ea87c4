package playback

import "github.com/osa030/gramaria/internal/domain/track"

// EventType represents a playback event type.
type EventType int

const (
	EventStateChanged    EventType = iota // Play/pause, shuffle, loop, volume or seek changed
	EventTrackChanged                     // Current track changed
	EventProgress                         // Engine reported a new position
	EventDurationKnown                    // Engine reported the track duration
	EventPlaybackStopped                  // Last track ended with no wrap and no shuffle
	EventEngineError                      // Engine reported a load/playback failure
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventStateChanged:
		return "state_changed"
	case EventTrackChanged:
		return "track_changed"
	case EventProgress:
		return "progress"
	case EventDurationKnown:
		return "duration_known"
	case EventPlaybackStopped:
		return "playback_stopped"
	case EventEngineError:
		return "engine_error"
	default:
		return "unknown"
	}
}

// Event represents a playback event.
type Event struct {
	Type       EventType
	State      State       // State after the change
	Track      track.Track // Track at State.CurrentIndex
	Generation uint64      // Generation of the loaded track
	Message    string      // Error text for EventEngineError
}
