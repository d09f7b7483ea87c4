// Package track provides the Track domain entity.
package track

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrEmptyTitle    = errors.New("track title is required")
	ErrInvalidSource = errors.New("track source must be an absolute http, https or file URI")
	ErrInvalidCover  = errors.New("track cover art must be an absolute URI")
)

// Track represents one playable audio item.
// A track has no ID of its own; its identity is its position in the playlist.
type Track struct {
	Title    string // Display title
	Source   string // Audio resource locator handed to the media engine
	CoverArt string // Cover art image URI (optional)
}

// Validate checks that the track can be handed to a media engine.
func (t Track) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}

	u, err := url.Parse(t.Source)
	if err != nil {
		return errors.Wrapf(ErrInvalidSource, "source %q: %v", t.Source, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return errors.Wrapf(ErrInvalidSource, "source %q has no host", t.Source)
		}
	case "file":
		if u.Path == "" {
			return errors.Wrapf(ErrInvalidSource, "source %q has no path", t.Source)
		}
	default:
		return errors.Wrapf(ErrInvalidSource, "source %q", t.Source)
	}

	if t.CoverArt != "" {
		c, err := url.Parse(t.CoverArt)
		if err != nil || !c.IsAbs() {
			return errors.Wrapf(ErrInvalidCover, "cover art %q", t.CoverArt)
		}
	}

	return nil
}
