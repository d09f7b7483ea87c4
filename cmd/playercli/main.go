// Package main provides the player CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	"github.com/osa030/gramaria/internal/app/playback"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/gen/music/v1/musicv1connect"
	"github.com/osa030/gramaria/internal/infra/config"
	"github.com/osa030/gramaria/internal/infra/engine"
	"github.com/osa030/gramaria/internal/tui"
)

var (
	app     = kingpin.New("gramaria-playercli", "Music of Gramaria player client")
	server  = app.Flag("server", "Server address").Default("http://localhost:8080").String()
	session = app.Flag("session", "Session ID (or set SESSION_ID env)").Envar("SESSION_ID").String()

	openCmd    = app.Command("open", "Open a playback session and print its ID")
	closeCmd   = app.Command("close", "Close the playback session")
	stateCmd   = app.Command("state", "Show the session state")
	toggleCmd  = app.Command("toggle", "Toggle play/pause")
	nextCmd    = app.Command("next", "Skip to the next track")
	prevCmd    = app.Command("prev", "Go to the previous track")
	shuffleCmd = app.Command("shuffle", "Toggle shuffle")
	loopCmd    = app.Command("loop", "Cycle loop mode (off, all, one)")

	selectCmd   = app.Command("select", "Jump to a track")
	selectIndex = selectCmd.Arg("number", "Track number (1-based)").Required().Int()

	volumeCmd   = app.Command("volume", "Set the volume")
	volumePct   = volumeCmd.Arg("percent", "Volume in percent (0-100)").Required().Float64()
	seekCmd     = app.Command("seek", "Seek within the current track")
	seekSeconds = seekCmd.Arg("seconds", "Target position in seconds").Required().Float64()

	subscribeCmd = app.Command("subscribe", "Print session notifications")

	tuiCmd     = app.Command("tui", "Open a session in the interactive player").Alias("ui")
	tuiNoAudio = tuiCmd.Flag("no-audio", "Do not play audio for a remote engine session").Bool()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	client := musicv1connect.NewPlayerServiceClient(
		http.DefaultClient,
		*server,
	)

	ctx := context.Background()

	switch command {
	case openCmd.FullCommand():
		open(ctx, client)
		return
	case tuiCmd.FullCommand():
		runTUI(ctx, client)
		return
	}

	if *session == "" {
		fmt.Println("Error: session ID is required (use --session or SESSION_ID env)")
		os.Exit(1)
	}
	id := *session

	switch command {
	case closeCmd.FullCommand():
		if _, err := client.CloseSession(ctx, sessionReq(id)); err != nil {
			fail(err)
		}
		fmt.Printf("Session %s closed\n", id)
	case stateCmd.FullCommand():
		printState(client.GetState(ctx, sessionReq(id)))
	case toggleCmd.FullCommand():
		printState(client.TogglePlayPause(ctx, sessionReq(id)))
	case nextCmd.FullCommand():
		printState(client.Next(ctx, sessionReq(id)))
	case prevCmd.FullCommand():
		printState(client.Previous(ctx, sessionReq(id)))
	case shuffleCmd.FullCommand():
		printState(client.ToggleShuffle(ctx, sessionReq(id)))
	case loopCmd.FullCommand():
		printState(client.CycleLoopMode(ctx, sessionReq(id)))
	case selectCmd.FullCommand():
		printState(client.SelectTrack(ctx, connect.NewRequest(&musicv1.SelectTrackRequest{
			SessionId: id,
			Index:     int32(*selectIndex - 1),
		})))
	case volumeCmd.FullCommand():
		printState(client.SetVolume(ctx, connect.NewRequest(&musicv1.SetVolumeRequest{
			SessionId: id,
			Volume:    *volumePct / 100,
		})))
	case seekCmd.FullCommand():
		printState(client.Seek(ctx, connect.NewRequest(&musicv1.SeekRequest{
			SessionId: id,
			Seconds:   *seekSeconds,
		})))
	case subscribeCmd.FullCommand():
		subscribe(ctx, client, id)
	}
}

func sessionReq(id string) *connect.Request[musicv1.SessionRequest] {
	return connect.NewRequest(&musicv1.SessionRequest{SessionId: id})
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}

func open(ctx context.Context, client musicv1connect.PlayerServiceClient) {
	resp, err := client.OpenSession(ctx, connect.NewRequest(&musicv1.OpenSessionRequest{}))
	if err != nil {
		fail(err)
	}

	fmt.Printf("Session opened! ID: %s (engine: %s)\n", resp.Msg.SessionId, resp.Msg.EngineType)
	fmt.Println("\nPlaylist:")
	for _, t := range resp.Msg.Playlist {
		fmt.Printf("  %d. %s\n", t.Index+1, t.Title)
	}
	fmt.Printf("\nexport SESSION_ID=%s\n", resp.Msg.SessionId)
}

func printState(resp *connect.Response[musicv1.StateResponse], err error) {
	if err != nil {
		fail(err)
	}
	fmt.Println(formatState(resp.Msg.State))
}

func formatState(st *musicv1.SessionState) string {
	if st == nil {
		return "(no state)"
	}
	title := ""
	if st.Track != nil {
		title = st.Track.Title
	}
	status := "⏸ paused"
	if st.IsPlaying {
		status = "▶ playing"
	}
	duration := st.Duration
	if !st.DurationKnown {
		duration = "-:--"
	}
	return fmt.Sprintf("%s  %d. %s  [%s / %s]  vol %.0f%%  shuffle:%v  loop:%s",
		status, st.CurrentIndex+1, title, st.Position, duration, st.Volume*100, st.ShuffleEnabled, st.LoopMode)
}

func subscribe(ctx context.Context, client musicv1connect.PlayerServiceClient, id string) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stream, err := client.Subscribe(ctx, connect.NewRequest(&musicv1.SubscribeRequest{SessionId: id}))
	if err != nil {
		fail(err)
	}
	defer stream.Close()

	fmt.Println("Subscribed. Press Ctrl+C to exit.")

	for stream.Receive() {
		n := stream.Msg()
		switch n.Type {
		case musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_COMMAND:
			if c := n.Command; c != nil {
				fmt.Printf("[%d] %s: op=%s gen=%d source=%s seconds=%.1f volume=%.2f enabled=%v\n",
					n.SequenceNo, n.Type, c.Op, c.Generation, c.Source, c.Seconds, c.Volume, c.Enabled)
			}
		case musicv1.NotificationType_NOTIFICATION_TYPE_ENGINE_ERROR:
			fmt.Printf("[%d] %s: %s\n", n.SequenceNo, n.Type, n.Message)
		case musicv1.NotificationType_NOTIFICATION_TYPE_SESSION_CLOSED:
			fmt.Printf("[%d] %s\n", n.SequenceNo, n.Type)
			return
		default:
			fmt.Printf("[%d] %s: %s\n", n.SequenceNo, n.Type, formatState(n.State))
		}
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		fail(err)
	}
}

func runTUI(ctx context.Context, client musicv1connect.PlayerServiceClient) {
	resp, err := client.OpenSession(ctx, connect.NewRequest(&musicv1.OpenSessionRequest{}))
	if err != nil {
		fail(err)
	}
	id := resp.Msg.SessionId

	// A remote engine session plays wherever its subscriber is.
	var audio playback.Engine
	if resp.Msg.EngineType == config.EngineRemote && !*tuiNoAudio {
		local, err := engine.NewClientLocal()
		if err != nil {
			_, _ = client.CloseSession(context.Background(), sessionReq(id))
			fail(err)
		}
		audio = local
	}

	runErr := tui.Run(ctx, client, id, resp.Msg.Playlist, resp.Msg.State, audio)

	// Leaving the player ends the visit. The session may already be gone.
	_, _ = client.CloseSession(context.Background(), sessionReq(id))

	if runErr != nil {
		fail(runErr)
	}
}
