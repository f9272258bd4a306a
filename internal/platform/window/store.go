// Package window plays the game in a native 800x300 desktop window with
// ebiten. The real implementation needs the ebiten build tag; without it
// Run returns ErrUnavailable so headless builds need no graphics stack.
package window

import (
	"errors"

	"github.com/vovakirdan/dino-jump/internal/dino"
)

// ErrUnavailable is returned when the binary was built without the
// ebiten tag.
var ErrUnavailable = errors.New("window: build with -tags ebiten for the desktop window")

// ScoreStore is the persistence the window needs: the best score and a
// history of finished runs.
type ScoreStore interface {
	dino.ScoreKeeper
	SaveScore(score int) (int64, error)
}
