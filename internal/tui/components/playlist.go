package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/tui/styles"
)

// Playlist lists every track and marks the active one
type Playlist struct{}

// NewPlaylist creates a new Playlist component
func NewPlaylist() *Playlist {
	return &Playlist{}
}

// Render renders the playlist panel. current is the active index.
func (p *Playlist) Render(tracks []*musicv1.TrackInfo, current int, width int) string {
	lines := make([]string, 0, len(tracks))
	for i, t := range tracks {
		marker := "  "
		style := styles.Subtitle
		if i == current {
			marker = styles.Highlight.Render("♪ ")
			style = styles.Title
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", marker, styles.Dim.Render(fmt.Sprintf("%d.", i+1)), style.Render(t.Title)))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("Empty playlist"))
	}

	return styles.Panel.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.PanelTitle("Playlist"),
		"",
		strings.Join(lines, "\n"),
	))
}
