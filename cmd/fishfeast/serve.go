package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fishfeast/internal/platform/feed"
	"github.com/vovakirdan/fishfeast/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeFeed   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Fish Feast SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. Scores are stored per-server
(all users share the same run history and best score).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fishfeast/host_key

Examples:
  fishfeast serve                           # Listen on :23234 with auto-generated key
  fishfeast serve --ssh :2222               # Listen on port 2222
  fishfeast serve --host-key ./my_host_key  # Use specific host key
  fishfeast serve --feed :8080              # Also stream every session to spectators

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting (0 = default)")
	serveCmd.Flags().StringVar(&flagServeFeed, "feed", "", "Serve a spectator WebSocket feed on this address")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagServeFeed != "" {
		cfg.Feed.Address = flagServeFeed
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	var hub *feed.Hub
	if cfg.Feed.Address != "" {
		hub = feed.NewHub(logger)
		go func() {
			if err := feed.Serve(ctx, cfg.Feed.Address, hub); err != nil {
				logger.Error("spectator feed stopped", "err", err)
			}
		}()
	}

	sshCfg := tui.DefaultSSHServerConfig()
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.Game = cfg
	sshCfg.Store = store
	sshCfg.Hub = hub
	sshCfg.Logger = logger

	server, err := tui.NewSSHServer(sshCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Listening on %s, connect with: ssh -p <port> localhost\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
