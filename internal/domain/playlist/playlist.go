// Package playlist provides the Playlist domain entity.
package playlist

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/gramaria/internal/domain/track"
)

var ErrEmptyPlaylist = errors.New("playlist must contain at least one track")

// Playlist is a fixed, ordered sequence of tracks.
// It is immutable once created and never empty.
type Playlist struct {
	name   string
	tracks []track.Track
}

// New creates a playlist from the given tracks.
// The slice is copied so later changes by the caller are not observed.
func New(name string, tracks []track.Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}
	for i, t := range tracks {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid track at index %d", i)
		}
	}

	copied := make([]track.Track, len(tracks))
	copy(copied, tracks)
	return &Playlist{name: name, tracks: copied}, nil
}

// MustNew is like New but panics on error. Only for compiled-in data.
func MustNew(name string, tracks []track.Track) *Playlist {
	p, err := New(name, tracks)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the playlist name.
func (p *Playlist) Name() string {
	return p.name
}

// Len returns the number of tracks. Always >= 1.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Valid reports whether index addresses a track.
func (p *Playlist) Valid(index int) bool {
	return index >= 0 && index < len(p.tracks)
}

// At returns the track at index.
func (p *Playlist) At(index int) (track.Track, bool) {
	if !p.Valid(index) {
		return track.Track{}, false
	}
	return p.tracks[index], true
}

// Tracks returns a copy of all tracks in order.
func (p *Playlist) Tracks() []track.Track {
	result := make([]track.Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}
