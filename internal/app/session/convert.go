package session

import (
	"github.com/samber/lo"

	"github.com/osa030/gramaria/internal/app/playback"
	"github.com/osa030/gramaria/internal/domain/playlist"
	"github.com/osa030/gramaria/internal/domain/track"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/infra/engine"
)

// BuildTrackInfo converts a playlist entry.
func BuildTrackInfo(index int, t track.Track) *musicv1.TrackInfo {
	return &musicv1.TrackInfo{
		Index:    int32(index),
		Title:    t.Title,
		Source:   t.Source,
		CoverArt: t.CoverArt,
	}
}

// BuildPlaylist converts every entry of pl.
func BuildPlaylist(pl *playlist.Playlist) []*musicv1.TrackInfo {
	return lo.Map(pl.Tracks(), func(t track.Track, i int) *musicv1.TrackInfo {
		return BuildTrackInfo(i, t)
	})
}

// BuildSessionState converts a controller snapshot.
func BuildSessionState(sessionID string, st playback.State, t track.Track, generation uint64) *musicv1.SessionState {
	return &musicv1.SessionState{
		SessionId:       sessionID,
		CurrentIndex:    int32(st.CurrentIndex),
		Track:           BuildTrackInfo(st.CurrentIndex, t),
		IsPlaying:       st.IsPlaying,
		PositionSeconds: st.PositionSeconds,
		DurationSeconds: st.Duration(),
		DurationKnown:   st.DurationKnown,
		ProgressPercent: st.ProgressPercent(),
		Position:        playback.FormatTime(st.PositionSeconds),
		Duration:        playback.FormatTime(st.Duration()),
		Volume:          st.Volume,
		ShuffleEnabled:  st.ShuffleEnabled,
		LoopMode:        st.LoopMode.String(),
		Generation:      generation,
	}
}

func buildEngineCommand(cmd engine.Command) *musicv1.EngineCommand {
	return &musicv1.EngineCommand{
		Op:         cmd.Op,
		Generation: cmd.Generation,
		Source:     cmd.Source,
		Seconds:    cmd.Seconds,
		Volume:     cmd.Volume,
		Enabled:    cmd.Enabled,
	}
}

// notificationType maps a controller event to its stream notification type.
func notificationType(t playback.EventType) musicv1.NotificationType {
	switch t {
	case playback.EventTrackChanged:
		return musicv1.NotificationType_NOTIFICATION_TYPE_TRACK_CHANGED
	case playback.EventProgress:
		return musicv1.NotificationType_NOTIFICATION_TYPE_PROGRESS
	case playback.EventDurationKnown:
		return musicv1.NotificationType_NOTIFICATION_TYPE_DURATION_KNOWN
	case playback.EventPlaybackStopped:
		return musicv1.NotificationType_NOTIFICATION_TYPE_PLAYBACK_STOPPED
	case playback.EventEngineError:
		return musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_ERROR
	default:
		return musicv1.NotificationType_NOTIFICATION_TYPE_STATE_CHANGED
	}
}
