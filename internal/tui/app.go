// Package tui provides an interactive terminal player for a session.
package tui

import (
	"context"
	"strconv"
	"time"

	"connectrpc.com/connect"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"github.com/osa030/gramaria/internal/app/playback"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/gen/music/v1/musicv1connect"
	"github.com/osa030/gramaria/internal/infra/engine"
	"github.com/osa030/gramaria/internal/tui/components"
	"github.com/osa030/gramaria/internal/tui/styles"
)

const (
	rpcTimeout  = 5 * time.Second
	volumeStep  = 0.05
	seekStep    = 10.0
	errorExpiry = 5 * time.Second
)

// Model is the main TUI model
type Model struct {
	client    musicv1connect.PlayerServiceClient
	sessionID string
	tracks    []*musicv1.TrackInfo
	updates   <-chan tea.Msg

	width  int
	height int

	state *musicv1.SessionState

	nowPlaying   *components.NowPlaying
	playlistView *components.Playlist

	lastError   error
	errorExpiry time.Time

	closed   bool
	quitting bool
}

// NewModel creates a new TUI model. updates carries stream notifications;
// it may be nil when no stream is attached.
func NewModel(client musicv1connect.PlayerServiceClient, sessionID string, tracks []*musicv1.TrackInfo, initial *musicv1.SessionState, updates <-chan tea.Msg) Model {
	return Model{
		client:       client,
		sessionID:    sessionID,
		tracks:       tracks,
		updates:      updates,
		state:        initial,
		nowPlaying:   components.NewNowPlaying(),
		playlistView: components.NewPlaylist(),
	}
}

// Messages
type notificationMsg *musicv1.Notification
type stateMsg *musicv1.SessionState
type errMsg error
type streamClosedMsg struct{ err error }

// waitForUpdate delivers the next stream message.
func waitForUpdate(updates <-chan tea.Msg) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return streamClosedMsg{}
		}
		return msg
	}
}

// Listen forwards the session stream into updates until ctx ends or the
// stream closes. updates is closed on return. When audio is set, engine
// commands on the stream are carried out on it.
func Listen(ctx context.Context, client musicv1connect.PlayerServiceClient, sessionID string, audio playback.Engine, updates chan<- tea.Msg) {
	defer close(updates)

	stream, err := client.Subscribe(ctx, connect.NewRequest(&musicv1.SubscribeRequest{SessionId: sessionID}))
	if err != nil {
		updates <- streamClosedMsg{err: err}
		return
	}
	defer stream.Close()

	for stream.Receive() {
		var msg tea.Msg = notificationMsg(stream.Msg())
		if err := applyEngineCommand(audio, stream.Msg()); err != nil {
			msg = errMsg(err)
		}
		select {
		case updates <- msg:
		case <-ctx.Done():
			return
		}
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		select {
		case updates <- streamClosedMsg{err: err}:
		case <-ctx.Done():
		}
	}
}

// applyEngineCommand carries out an engine_command notification on audio.
// Other notifications, or a nil audio, are ignored.
func applyEngineCommand(audio playback.Engine, n *musicv1.Notification) error {
	if audio == nil || n.Type != musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_COMMAND || n.Command == nil {
		return nil
	}
	c := n.Command
	return engine.Apply(audio, engine.Command{
		Op:         c.Op,
		Generation: c.Generation,
		Source:     c.Source,
		Seconds:    c.Seconds,
		Volume:     c.Volume,
		Enabled:    c.Enabled,
	})
}

// relayEngine reports the notifications of audio to the session until the
// engine closes or ctx ends.
func relayEngine(ctx context.Context, client musicv1connect.PlayerServiceClient, sessionID string, audio playback.Engine) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-audio.Notifications():
			if !ok {
				return
			}
			r := engine.NewReport(n)
			reqCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
			// A lost report is superseded by the next progress tick.
			_, _ = client.ReportEngineEvent(reqCtx, connect.NewRequest(&musicv1.ReportEngineEventRequest{
				SessionId:  sessionID,
				Kind:       r.Kind,
				Generation: r.Generation,
				Seconds:    r.Seconds,
				Error:      r.Error,
			}))
			cancel()
		}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case notificationMsg:
		n := (*musicv1.Notification)(msg)
		if n.State != nil {
			m.state = n.State
		}
		switch n.Type {
		case musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_ERROR:
			m.setError(errors.Newf("engine: %s", n.Message))
		case musicv1.NotificationType_NOTIFICATION_TYPE_SESSION_CLOSED:
			m.closed = true
			m.quitting = true
			return m, tea.Quit
		}
		return m, waitForUpdate(m.updates)

	case stateMsg:
		if time.Now().After(m.errorExpiry) {
			m.lastError = nil
		}
		if msg != nil {
			m.state = msg
		}
		return m, nil

	case errMsg:
		m.setError(msg)
		return m, nil

	case streamClosedMsg:
		if msg.err != nil {
			m.setError(errors.Wrap(msg.err, "stream"))
		}
		m.closed = true
		return m, nil
	}

	return m, nil
}

func (m *Model) setError(err error) {
	m.lastError = err
	m.errorExpiry = time.Now().Add(errorExpiry)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ":
		return m, m.call(m.client.TogglePlayPause)
	case "n":
		return m, m.call(m.client.Next)
	case "p":
		return m, m.call(m.client.Previous)
	case "s":
		return m, m.call(m.client.ToggleShuffle)
	case "l":
		return m, m.call(m.client.CycleLoopMode)
	case "+", "=":
		return m, m.setVolume(volumeStep)
	case "-":
		return m, m.setVolume(-volumeStep)
	case "right":
		return m, m.seek(seekStep)
	case "left":
		return m, m.seek(-seekStep)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.tracks) {
		return m, m.selectTrack(int32(n - 1))
	}
	return m, nil
}

type sessionCall func(context.Context, *connect.Request[musicv1.SessionRequest]) (*connect.Response[musicv1.StateResponse], error)

func (m Model) call(fn sessionCall) tea.Cmd {
	req := connect.NewRequest(&musicv1.SessionRequest{SessionId: m.sessionID})
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		return stateResult(fn(ctx, req))
	}
}

func (m Model) selectTrack(index int32) tea.Cmd {
	req := connect.NewRequest(&musicv1.SelectTrackRequest{SessionId: m.sessionID, Index: index})
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		return stateResult(m.client.SelectTrack(ctx, req))
	}
}

func (m Model) setVolume(delta float64) tea.Cmd {
	if m.state == nil {
		return nil
	}
	// The server clamps to [0,1].
	req := connect.NewRequest(&musicv1.SetVolumeRequest{SessionId: m.sessionID, Volume: m.state.Volume + delta})
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		return stateResult(m.client.SetVolume(ctx, req))
	}
}

func (m Model) seek(delta float64) tea.Cmd {
	if m.state == nil {
		return nil
	}
	target := m.state.PositionSeconds + delta
	if target < 0 {
		target = 0
	}
	req := connect.NewRequest(&musicv1.SeekRequest{SessionId: m.sessionID, Seconds: target})
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		return stateResult(m.client.Seek(ctx, req))
	}
}

func stateResult(res *connect.Response[musicv1.StateResponse], err error) tea.Msg {
	if err != nil {
		return errMsg(err)
	}
	return stateMsg(res.Msg.State)
}

// View renders the player
func (m Model) View() string {
	if m.quitting {
		if m.closed {
			return "Session closed.\n"
		}
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	width := m.width - 2
	current := -1
	if m.state != nil {
		current = int(m.state.CurrentIndex)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.nowPlaying.Render(m.state, width),
		m.playlistView.Render(m.tracks, current, width),
		m.renderStatusBar(),
	)
}

func (m Model) renderStatusBar() string {
	status := styles.Dim.Render("q:quit  space:play/pause  n:next  p:prev  s:shuffle  l:loop  +/-:volume  ←/→:seek  1-9:select")

	if m.lastError != nil {
		status = styles.ErrorText.Render("Error: " + m.lastError.Error())
	} else if m.closed {
		status = styles.Muted.Render("Disconnected from session. q:quit")
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

// Run starts the TUI for an open session and blocks until the user quits
// or the session closes. audio, when set, plays what a remote engine
// instructs and is closed on return.
func Run(ctx context.Context, client musicv1connect.PlayerServiceClient, sessionID string, tracks []*musicv1.TrackInfo, initial *musicv1.SessionState, audio playback.Engine) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if audio != nil {
		defer audio.Close()
		go relayEngine(ctx, client, sessionID, audio)
	}

	updates := make(chan tea.Msg, 16)
	go Listen(ctx, client, sessionID, audio, updates)

	p := tea.NewProgram(NewModel(client, sessionID, tracks, initial, updates), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
