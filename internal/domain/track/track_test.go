package track

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestTrack_Validate(t *testing.T) {
	tests := []struct {
		name    string
		track   Track
		wantErr error
	}{
		{
			name: "valid https track",
			track: Track{
				Title:    "Whispers of the Ancients",
				Source:   "https://example.com/music/whispers.mp3",
				CoverArt: "https://example.com/art/whispers.png",
			},
		},
		{
			name: "valid file track without cover",
			track: Track{
				Title:  "Local Song",
				Source: "file:///srv/music/local.mp3",
			},
		},
		{
			name:    "empty title",
			track:   Track{Title: "  ", Source: "https://example.com/a.mp3"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "relative source",
			track:   Track{Title: "Song", Source: "music/a.mp3"},
			wantErr: ErrInvalidSource,
		},
		{
			name:    "unsupported scheme",
			track:   Track{Title: "Song", Source: "ftp://example.com/a.mp3"},
			wantErr: ErrInvalidSource,
		},
		{
			name:    "http without host",
			track:   Track{Title: "Song", Source: "https:///a.mp3"},
			wantErr: ErrInvalidSource,
		},
		{
			name:    "relative cover art",
			track:   Track{Title: "Song", Source: "https://example.com/a.mp3", CoverArt: "cover.png"},
			wantErr: ErrInvalidCover,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.track.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}
