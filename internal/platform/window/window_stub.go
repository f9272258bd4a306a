//go:build !ebiten

package window

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-jump/internal/config"
)

// Run reports that the desktop window is not compiled in.
func Run(ScoreStore, config.DinoConfig, int, int64, *log.Logger) error {
	return ErrUnavailable
}
