package window

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-jump/internal/config"
	"github.com/vovakirdan/dino-jump/internal/core"
	"github.com/vovakirdan/dino-jump/internal/dino"
)

// Input is what the player pressed during one frame.
type Input struct {
	Quit    bool // q or escape
	Restart bool // r or enter
	Jump    bool // space, up or w
	Click   bool // left click inside the field
}

// Action resolves one frame of input against the session phase. A click
// restarts an ended session and jumps in a running one.
func (in Input) Action(running bool) core.Action {
	switch {
	case in.Quit:
		return core.ActionQuit
	case !running && (in.Click || in.Restart):
		return core.ActionRestart
	case running && (in.Click || in.Jump):
		return core.ActionJump
	}
	return core.ActionNone
}

// session drives one game for the window, independent of ebiten.
type session struct {
	game   *dino.Game
	store  ScoreStore
	logger *log.Logger
}

func newSession(store ScoreStore, cfg config.DinoConfig, logger *log.Logger, opts ...dino.Option) *session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var keeper dino.ScoreKeeper
	if store != nil {
		keeper = store
	}
	opts = append([]dino.Option{dino.WithLogger(logger)}, opts...)
	return &session{
		game:   dino.New(cfg, keeper, opts...),
		store:  store,
		logger: logger,
	}
}

// update applies one frame of input and advances the game. It reports
// whether the window should close.
func (s *session) update(in Input) bool {
	switch in.Action(s.game.Running()) {
	case core.ActionQuit:
		s.game.Finish()
		return true
	case core.ActionRestart:
		s.game.Restart()
		return false
	case core.ActionJump:
		s.game.Jump()
	}

	res := s.game.Step()
	if res.Crashed && s.store != nil && res.State.Score > 0 {
		if _, err := s.store.SaveScore(res.State.Score); err != nil {
			s.logger.Warn("could not save run", "score", res.State.Score, "error", err)
		}
	}
	return false
}
