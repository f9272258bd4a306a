// dinojump is a one-button runner: jump the obstacles, beat your best.
//
// Usage:
//
//	dinojump play            - Play in the terminal
//	dinojump window          - Play in a desktop window (needs -tags ebiten)
//	dinojump serve           - Start SSH server for remote play
//	dinojump scores          - Show best score and top runs
//	dinojump config          - Print the default game config
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible obstacles
//	--db <path>        - Set database path (default: ~/.dinojump/scores.db)
//	--config <path>    - Use a custom game config YAML
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-jump/internal/config"
	"github.com/vovakirdan/dino-jump/internal/storage"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinojump",
	Short: "Dino Jump - jump the obstacles, beat your best",
	Long: `Dino Jump is a single-screen runner. Obstacles scroll in from the
right; jump over them to score. One hit ends the run, and your best
score is kept between runs.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View best score and top runs
  config   - Print the default game config

Examples:
  dinojump play
  dinojump play --seed 42
  dinojump serve --ssh :2222
  dinojump config > ~/.dinojump/configs/dino.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a file logger, or a discarding one when no log file
// was requested. The terminal belongs to the game while it runs.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	path, err := config.ExpandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dinojump",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore opens the score database. A failure is reported and the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without score storage", "error", err)
		return nil
	}
	return store
}

// loadGameConfig loads the tuning, exiting on a bad custom file.
func loadGameConfig(logger *log.Logger) config.DinoConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("game config loaded", "path", flagConfig, "speed", cfg.Physics.GameSpeed, "spawn_chance", cfg.Obstacles.SpawnChance)
	return cfg
}
