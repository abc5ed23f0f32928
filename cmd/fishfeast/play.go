package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fishfeast/internal/core"
	"github.com/vovakirdan/fishfeast/internal/platform/feed"
	"github.com/vovakirdan/fishfeast/internal/platform/tui"
)

var flagPlayFeed string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Fish Feast",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer (or drag with the mouse)
  Enter/Space  - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Spectators can watch a JSON snapshot stream when --feed is set:
  fishfeast play --feed :8080      # ws://localhost:8080/ws

Examples:
  fishfeast play
  fishfeast play --seed 42
  fishfeast play --log-file fish.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayFeed, "feed", "", "Serve a spectator WebSocket feed on this address")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagPlayFeed != "" {
		cfg.Feed.Address = flagPlayFeed
	}

	// The terminal owns stdout and stderr while playing
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	var hub *feed.Hub
	if cfg.Feed.Address != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub = feed.NewHub(logger)
		go func() {
			if err := feed.Serve(ctx, cfg.Feed.Address, hub); err != nil {
				logger.Error("spectator feed stopped", "err", err)
			}
		}()
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Frame.TickRate,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Hub:    hub,
		Player: playerName(),
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
