package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-jump/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x300 desktop window and play there.

Controls:
  Space/Up/W or click  - Jump
  Click, R or Enter    - Restart after game over
  Q/Esc                - Quit

The window needs a binary built with the ebiten tag:
  go build -tags ebiten ./cmd/dinojump`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	gameCfg := loadGameConfig(logger)

	var scores window.ScoreStore
	store := openStore(logger)
	if store != nil {
		scores = store
	}

	runErr := window.Run(scores, gameCfg, flagFPS, flagSeed, logger)

	if store != nil {
		store.Close()
	}

	if errors.Is(runErr, window.ErrUnavailable) {
		fmt.Fprintln(os.Stderr, "This binary was built without the desktop window.")
		fmt.Fprintln(os.Stderr, "Rebuild with: go build -tags ebiten ./cmd/dinojump")
		os.Exit(1)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
