package playback

// Engine is the media engine that decodes and renders audio.
//
// Commands are fire-and-forget: an engine never blocks the caller and reports
// failures asynchronously as NotifyError notifications.
type Engine interface {
	// Load replaces the current resource. Every notification about the new
	// resource must carry the given generation.
	Load(generation uint64, source string)
	Play()
	Pause()
	Seek(seconds float64)
	SetVolume(v float64)
	// SetAutoRepeat makes the engine restart the track on completion instead
	// of emitting NotifyEnded.
	SetAutoRepeat(enabled bool)
	Notifications() <-chan Notification
	Close() error
}

// NotificationKind identifies an engine notification.
type NotificationKind int

const (
	NotifyProgress      NotificationKind = iota // Position update while playing
	NotifyDurationKnown                         // Duration resolved after load
	NotifyEnded                                 // Natural end of track
	NotifyError                                 // Load or playback failure
)

// String returns the string representation of the notification kind.
func (k NotificationKind) String() string {
	switch k {
	case NotifyProgress:
		return "progress"
	case NotifyDurationKnown:
		return "duration_known"
	case NotifyEnded:
		return "ended"
	case NotifyError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseNotificationKind converts a string to a NotificationKind.
func ParseNotificationKind(s string) (NotificationKind, bool) {
	switch s {
	case "progress":
		return NotifyProgress, true
	case "duration_known":
		return NotifyDurationKnown, true
	case "ended":
		return NotifyEnded, true
	case "error":
		return NotifyError, true
	default:
		return 0, false
	}
}

// Notification is a state-change report emitted by an Engine.
type Notification struct {
	Kind       NotificationKind
	Generation uint64  // Generation of the resource the notification is about
	Seconds    float64 // Position or duration
	Err        error   // Set for NotifyError
}
