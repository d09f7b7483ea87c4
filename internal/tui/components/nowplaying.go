package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/tui/styles"
)

// NowPlaying displays the current track and transport indicators
type NowPlaying struct{}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying() *NowPlaying {
	return &NowPlaying{}
}

// Render renders the now playing panel
func (n *NowPlaying) Render(state *musicv1.SessionState, width int) string {
	var content string
	if state == nil || state.Track == nil {
		content = styles.Muted.Render("Waiting for session state...")
	} else {
		content = n.renderTrack(state, width-4)
	}

	return styles.Panel.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.PanelTitle("Now Playing"),
		"",
		content,
	))
}

func (n *NowPlaying) renderTrack(state *musicv1.SessionState, width int) string {
	icon := styles.StatusIcon(state.IsPlaying)
	title := styles.Title.Render(state.Track.Title)

	cover := ""
	if state.Track.CoverArt != "" {
		cover = styles.Dim.Render("  " + state.Track.CoverArt)
	}

	// Account for times on either side
	progressWidth := width - 14
	if progressWidth < 10 {
		progressWidth = 10
	}
	total := state.Duration
	if !state.DurationKnown {
		total = "-:--"
	}
	progress := fmt.Sprintf("%5s %s %s", state.Position, styles.ProgressBar(state.ProgressPercent, progressWidth), total)

	return lipgloss.JoinVertical(lipgloss.Left,
		icon+" "+title,
		cover,
		"",
		progress,
		"",
		n.renderIndicators(state),
	)
}

func (n *NowPlaying) renderIndicators(state *musicv1.SessionState) string {
	loop := "loop:" + state.LoopMode
	return fmt.Sprintf("%s  %s  %s",
		styles.Toggle("shuffle", state.ShuffleEnabled),
		styles.Toggle(loop, state.LoopMode != "off"),
		styles.Muted.Render(fmt.Sprintf("vol %d%%", int(state.Volume*100+0.5))),
	)
}
