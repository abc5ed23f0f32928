package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fishfeast/internal/platform/tui"
	"github.com/vovakirdan/fishfeast/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and top runs",
	Long: `Display the best score and the top runs recorded so far.

Examples:
  fishfeast scores
  fishfeast scores --limit 25
  fishfeast scores --interactive   # Browse runs in a table
  fishfeast scores --clear         # Forget every run and the best score`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs and the best score")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(cfg.Storage.BestKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		log.Info("scores cleared", "path", cfg.Storage.Path)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunBoard(store, cfg.Storage.BestKey, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Fish Feast - Top Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fishfeast play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-6s  %-12s  %s\n", "Rank", "Score", "Wave", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-6s  %-12s  %s\n", "----", "-----", "----", "----", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		d := time.Duration(r.DurationMS) * time.Millisecond
		fmt.Printf("  %-4d  %-8d  %-4d  %-6s  %-12s  %s\n",
			i+1, r.Score, r.Wave,
			fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
			player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.LoadBest(cfg.Storage.BestKey); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
