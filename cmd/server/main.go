// Package main provides the server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiconnect "github.com/osa030/gramaria/internal/api/connect"
	"github.com/osa030/gramaria/internal/app/notification"
	"github.com/osa030/gramaria/internal/app/playback"
	"github.com/osa030/gramaria/internal/app/session"
	"github.com/osa030/gramaria/internal/domain/playlist"
	"github.com/osa030/gramaria/internal/gen/music/v1/musicv1connect"
	"github.com/osa030/gramaria/internal/infra/config"
	"github.com/osa030/gramaria/internal/infra/engine"
	"github.com/osa030/gramaria/internal/infra/logger"
)

var (
	app        = kingpin.New("gramaria-server", "Music of Gramaria playback server")
	configPath = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()

	// list-engines command
	listEnginesCmd = app.Command("list-engines", "List available media engines and exit")

	// show-playlist command
	showPlaylistCmd = app.Command("show-playlist", "Print the playlist and exit")
)

func init() {
	// start command (default) - no need to store the command
	app.Command("start", "Start the server (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	switch command {
	case listEnginesCmd.FullCommand():
		printEngines()
		return
	case showPlaylistCmd.FullCommand():
		printPlaylist(playlist.Gramaria())
		return
	}

	loggerConfig := logger.Config{
		Output: "stdout",
		Level:  "info",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		os.Exit(1)
	}
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	factory, err := engine.NewFactory(cfg.Engine)
	if err != nil {
		return fmt.Errorf("failed to create engine factory: %w", err)
	}
	if cfg.Engine.Type == config.EngineLocal && !engine.AudioAvailable {
		zlog.Warn().Msg("Local engine selected but this build has no audio support; every track will report an error")
	}

	sessionMgr := session.NewManager(session.ConfigFrom(cfg), playlist.Gramaria(), factory, notification.NewManager())

	playerService := apiconnect.NewPlayerService(sessionMgr)
	adminService := apiconnect.NewAdminService(sessionMgr)

	mux := http.NewServeMux()

	playerPath, playerHandler := musicv1connect.NewPlayerServiceHandler(playerService)

	adminAuthInterceptor := apiconnect.NewAdminAuthInterceptor(cfg)
	adminPath, adminHandler := musicv1connect.NewAdminServiceHandler(
		adminService,
		connect.WithInterceptors(adminAuthInterceptor),
	)

	mux.Handle(playerPath, playerHandler)
	mux.Handle(adminPath, adminHandler)

	serverAddr := cfg.Server.Addr
	// Create server with h2c (HTTP/2 cleartext) support
	server := &http.Server{
		Addr:    serverAddr,
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}

	serverErrCh := make(chan error, 1)
	serverStartedCh := make(chan struct{})

	go func() {
		zlog.Info().Msgf("Starting server: addr=%s engine=%s max_sessions=%d", serverAddr, factory.Type(), cfg.Session.MaxSessions)
		close(serverStartedCh)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	<-serverStartedCh
	// Give the server a moment to fully initialize
	time.Sleep(100 * time.Millisecond)

	executeHooks(cfg.Server.Hooks.OnStarted, "on_started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case err := <-serverErrCh:
		sessionMgr.Shutdown()
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close sessions first to terminate active streams
	sessionMgr.Shutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")

	executeHooks(cfg.Server.Hooks.OnStopped, "on_stopped")

	return nil
}

// printEngines prints available media engines.
func printEngines() {
	fmt.Println("Available Engines:")
	for _, t := range engine.Types() {
		fmt.Printf("  %-12s - %s\n", t.Name, t.Description)
	}
	if !engine.AudioAvailable {
		fmt.Println("\n  (this build has no audio support; the local engine reports errors)")
	}
}

// printPlaylist prints the playlist.
func printPlaylist(pl *playlist.Playlist) {
	fmt.Printf("%s (%d tracks)\n", pl.Name(), pl.Len())
	for i, t := range pl.Tracks() {
		fmt.Printf("  %d. %s\n", i+1, t.Title)
		fmt.Printf("     audio: %s\n", t.Source)
		if t.CoverArt != "" {
			fmt.Printf("     cover: %s\n", t.CoverArt)
		}
	}
	fmt.Printf("\nPage entry: track 1, paused, volume %.0f%%, shuffle off, loop %s\n",
		playback.DefaultConfig().InitialVolume*100, playback.LoopOff)
}

// executeHooks runs a list of shell commands.
func executeHooks(hooks []string, stage string) {
	if len(hooks) == 0 {
		return
	}

	zlog.Info().Msgf("Executing %s hooks (%d commands)", stage, len(hooks))

	for _, hook := range hooks {
		zlog.Info().Msgf("Executing hook: %s", hook)
		// Use sh -c to allow shell features like redirection or pipes
		cmd := exec.Command("sh", "-c", hook)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			zlog.Error().Err(err).Msgf("Failed to execute hook: %s", hook)
		}
	}
}
