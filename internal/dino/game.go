// Package dino implements the session controller of a Chrome Dino-style
// runner: the player jumps over obstacles that scroll in from the right,
// a collision ends the session and the best score survives restarts.
//
// The controller is driven from outside. A frontend calls Step once per
// frame while Running, forwards jump and restart requests between frames,
// and calls Render with whatever surface it draws on.
package dino

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-jump/internal/config"
	"github.com/vovakirdan/dino-jump/internal/core"
)

const gameOverText = "Game Over! Click to restart"

// ScoreKeeper persists the best score between processes.
type ScoreKeeper interface {
	// BestScore returns the stored best score, 0 if none was stored.
	BestScore() (int, error)
	// SetBestScore stores a new best score.
	SetBestScore(score int) error
}

// RandSource produces the per-frame spawn draw in [0, 1).
type RandSource interface {
	Float64() float64
}

// Canvas is the drawing surface a frame is rendered onto.
// Coordinates are in field units.
type Canvas interface {
	Clear()
	FillRect(r core.Rect, c core.Color)
	HLine(x0, x1, y float64, c core.Color)
	Text(x, y float64, text string, c core.Color)
}

// State is a snapshot of the session for frontends.
type State struct {
	Score int
	Best  int
	Phase Phase
}

// StepResult is returned by Step after each frame.
type StepResult struct {
	State   State
	Passed  int  // Obstacles that left the field this frame
	Crashed bool // The session ended this frame
	NewBest bool // The session ended with a new best score
}

// Game is the session controller. It owns all state of one player's
// sessions; it is not safe for concurrent use.
type Game struct {
	cfg       config.DinoConfig
	player    Player
	obstacles []Obstacle
	score     int
	best      int
	phase     Phase
	frame     int

	keeper ScoreKeeper
	rng    RandSource
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithRand replaces the spawn RNG.
func WithRand(r RandSource) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSeed seeds the default spawn RNG. A zero seed uses the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Running session. The best score is read from keeper once;
// a nil keeper disables persistence.
func New(cfg config.DinoConfig, keeper ScoreKeeper, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		keeper: keeper,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		WithSeed(0)(g)
	}

	g.best = g.loadBest()
	g.resetPlayer()
	g.phase = PhaseRunning
	return g
}

func (g *Game) loadBest() int {
	if g.keeper == nil {
		return 0
	}
	best, err := g.keeper.BestScore()
	if err != nil {
		g.logger.Warn("could not read best score", "error", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

func (g *Game) resetPlayer() {
	g.player = Player{
		X: g.cfg.Player.X,
		Y: g.cfg.Player.GroundY,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
}

// Jump launches the player. It is accepted only while Running and the
// player is on the ground; the return value reports whether it was.
func (g *Game) Jump() bool {
	if g.phase != PhaseRunning || g.player.Airborne {
		return false
	}
	g.player.Airborne = true
	g.player.Velocity = g.cfg.Physics.JumpImpulse
	return true
}

// Step advances the session by one frame. It does nothing once Ended.
func (g *Game) Step() StepResult {
	if g.phase != PhaseRunning {
		return StepResult{State: g.State()}
	}
	g.frame++

	g.applyPhysics()
	g.maybeSpawn()
	passed, crashed := g.advanceObstacles()
	g.score += passed

	res := StepResult{Passed: passed, Crashed: crashed}
	if crashed {
		res.NewBest = g.end()
	}
	res.State = g.State()
	return res
}

func (g *Game) applyPhysics() {
	if !g.player.Airborne {
		return
	}
	g.player.Velocity += g.cfg.Physics.Gravity
	g.player.Y += g.player.Velocity

	if g.player.Y >= g.cfg.Player.GroundY {
		g.player.Y = g.cfg.Player.GroundY
		g.player.Airborne = false
		g.player.Velocity = 0
	}
}

// maybeSpawn draws once per frame, whether or not an obstacle results.
// There is no minimum gap between obstacles.
func (g *Game) maybeSpawn() {
	if g.rng.Float64() >= g.cfg.Obstacles.SpawnChance {
		return
	}
	g.obstacles = append(g.obstacles, Obstacle{
		X: g.cfg.Field.Width,
		Y: g.cfg.Player.GroundY + g.cfg.Player.Height - g.cfg.Obstacles.Height,
		W: g.cfg.Obstacles.Width,
		H: g.cfg.Obstacles.Height,
	})
}

// advanceObstacles moves every obstacle, checks each one against the
// player, then rebuilds the collection without the ones that left the
// field. Collision is checked before removal.
func (g *Game) advanceObstacles() (passed int, crashed bool) {
	for i := range g.obstacles {
		g.obstacles[i].X -= g.cfg.Physics.GameSpeed
	}

	pr := g.player.Rect()
	for _, o := range g.obstacles {
		if pr.Intersects(o.Rect()) {
			crashed = true
		}
	}

	kept := make([]Obstacle, 0, len(g.obstacles))
	for _, o := range g.obstacles {
		if o.OffField() {
			passed++
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept
	return passed, crashed
}

// end moves the session to Ended and records a new best score.
func (g *Game) end() bool {
	g.phase = PhaseEnded
	newBest := g.recordBest()
	g.logger.Info("session ended", "score", g.score, "best", g.best, "frames", g.frame, "new_best", newBest)
	return newBest
}

// recordBest raises and persists the best score if the current score
// beats it. Write failures are logged and not retried.
func (g *Game) recordBest() bool {
	if g.score <= g.best {
		return false
	}
	g.best = g.score
	if g.keeper != nil {
		if err := g.keeper.SetBestScore(g.best); err != nil {
			g.logger.Warn("could not store best score", "best", g.best, "error", err)
		}
	}
	return true
}

// Restart begins a new session. It only acts while Ended and returns
// whether it did.
func (g *Game) Restart() bool {
	if g.phase != PhaseEnded {
		return false
	}
	g.obstacles = nil
	g.score = 0
	g.frame = 0
	g.resetPlayer()
	g.phase = PhaseRunning
	g.logger.Debug("session restarted", "best", g.best)
	return true
}

// Finish records the score of a session that is being abandoned, such as
// when the player quits mid-run. It reports whether a new best was stored.
func (g *Game) Finish() bool {
	if g.phase != PhaseRunning {
		return false
	}
	return g.recordBest()
}

// Render draws the current frame. It does not change any state.
func (g *Game) Render(c Canvas) {
	c.Clear()
	c.FillRect(g.player.Rect(), core.ColorPlayer)
	for _, o := range g.obstacles {
		c.FillRect(o.Rect(), core.ColorObstacle)
	}
	c.HLine(0, g.cfg.Field.Width, g.cfg.Field.GroundLine, core.ColorGround)

	if g.phase == PhaseEnded {
		c.Text(g.cfg.Field.Width*0.3125, g.cfg.Field.Height/2, gameOverText, core.ColorBanner)
	}
}

// State returns the current session snapshot.
func (g *Game) State() State {
	return State{
		Score: g.score,
		Best:  g.BestScore(),
		Phase: g.phase,
	}
}

// Running reports whether frames should keep being scheduled.
func (g *Game) Running() bool {
	return g.phase == PhaseRunning
}

// Score returns the current session's score.
func (g *Game) Score() int {
	return g.score
}

// BestScore returns the best score including the session in progress.
func (g *Game) BestScore() int {
	return max(g.best, g.score)
}

// ScoreText is the score display line.
func (g *Game) ScoreText() string {
	return fmt.Sprintf("Score: %d", g.score)
}

// BestText is the best score display line.
func (g *Game) BestText() string {
	return fmt.Sprintf("High Score: %d", g.BestScore())
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns a copy of the obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	out := make([]Obstacle, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// Field returns the play-field size in field units.
func (g *Game) Field() (w, h float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Frame returns the number of frames stepped in the current session.
func (g *Game) Frame() int {
	return g.frame
}
