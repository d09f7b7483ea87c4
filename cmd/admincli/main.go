// Package main provides the admin CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	apiconnect "github.com/osa030/gramaria/internal/api/connect"
	musicv1 "github.com/osa030/gramaria/internal/gen/music/v1"
	"github.com/osa030/gramaria/internal/gen/music/v1/musicv1connect"
)

var (
	app    = kingpin.New("gramaria-admincli", "Music of Gramaria admin client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").String()
	token  = app.Flag("token", "Admin token (or set ADMIN_TOKEN env)").Envar("ADMIN_TOKEN").String()

	// status command
	statusCmd = app.Command("status", "Get server status")

	// list-sessions command
	listCmd = app.Command("list-sessions", "List live playback sessions").Alias("list")

	// close command
	closeCmd     = app.Command("close", "Close a playback session")
	closeSession = closeCmd.Arg("session-id", "Session ID (UUID)").Required().String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *token == "" {
		fmt.Println("Error: admin token is required (use --token or ADMIN_TOKEN env)")
		os.Exit(1)
	}

	client := musicv1connect.NewAdminServiceClient(
		http.DefaultClient,
		*server,
		connect.WithInterceptors(apiconnect.NewAdminTokenInterceptor(*token)),
	)

	ctx := context.Background()

	switch command {
	case statusCmd.FullCommand():
		status(ctx, client)
	case listCmd.FullCommand():
		listSessions(ctx, client)
	case closeCmd.FullCommand():
		closeOne(ctx, client, *closeSession)
	}
}

func status(ctx context.Context, client musicv1connect.AdminServiceClient) {
	resp, err := client.GetStatus(ctx, connect.NewRequest(&musicv1.GetStatusRequest{}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	s := resp.Msg
	fmt.Println("\n=== SERVER STATUS ===")
	fmt.Printf("Engine: %s\n", s.EngineType)
	fmt.Printf("Sessions: %d / %d\n", s.SessionCount, s.MaxSessions)
	fmt.Printf("Subscribers: %d\n", s.SubscriberCount)
	fmt.Printf("Started At: %s\n", s.StartedAt)
}

func listSessions(ctx context.Context, client musicv1connect.AdminServiceClient) {
	resp, err := client.ListSessions(ctx, connect.NewRequest(&musicv1.ListSessionsRequest{}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if len(resp.Msg.Sessions) == 0 {
		fmt.Println("No live sessions")
		return
	}

	fmt.Printf("\n=== SESSIONS (%d) ===\n", len(resp.Msg.Sessions))
	for _, info := range resp.Msg.Sessions {
		fmt.Printf("\n%s\n", info.SessionId)
		fmt.Printf("  Opened: %s  Last active: %s  Subscribers: %d\n", info.OpenedAt, info.LastActive, info.Subscribers)
		if st := info.State; st != nil {
			title := ""
			if st.Track != nil {
				title = st.Track.Title
			}
			playing := "paused"
			if st.IsPlaying {
				playing = "playing"
			}
			fmt.Printf("  Track %d: %s [%s] %s / %s\n", st.CurrentIndex+1, title, playing, st.Position, st.Duration)
			fmt.Printf("  Volume: %.0f%%  Shuffle: %v  Loop: %s\n", st.Volume*100, st.ShuffleEnabled, st.LoopMode)
		}
	}
}

func closeOne(ctx context.Context, client musicv1connect.AdminServiceClient, sessionID string) {
	_, err := client.CloseSession(ctx, connect.NewRequest(&musicv1.AdminCloseSessionRequest{SessionId: sessionID}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Session %s closed\n", sessionID)
}
