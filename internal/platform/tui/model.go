package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-jump/internal/config"
	"github.com/vovakirdan/dino-jump/internal/core"
	"github.com/vovakirdan/dino-jump/internal/dino"
)

// hudRows is the number of rows above the play field.
const hudRows = 1

// ScoreStore is the persistence the play screen needs: the best score for
// the game itself and a history of finished runs.
type ScoreStore interface {
	dino.ScoreKeeper
	SaveScore(score int) (int64, error)
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game     *dino.Game
	screen   *core.Screen
	view     *core.Viewport
	store    ScoreStore
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a play-screen model. store may be nil, in which case
// nothing is persisted.
func NewModel(store ScoreStore, rt core.RuntimeConfig, cfg config.DinoConfig, logger *log.Logger, opts ...dino.Option) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var keeper dino.ScoreKeeper
	if store != nil {
		keeper = store
	}
	gameOpts := append([]dino.Option{dino.WithSeed(rt.Seed), dino.WithLogger(logger)}, opts...)
	game := dino.New(cfg, keeper, gameOpts...)

	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0))
	fw, fh := game.Field()

	m := Model{
		game:   game,
		screen: screen,
		view:   core.NewViewport(screen, fieldRegion(screen), fw, fh),
		store:  store,
		config: rt,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	m.help.Width = rt.ScreenW
	return m
}

// fieldRegion is the part of the screen below the HUD.
func fieldRegion(s *core.Screen) core.CellRect {
	return core.NewCellRect(0, hudRows, s.Width(), max(s.Height()-hudRows, 0))
}

// Game returns the session controller driven by this model.
func (m Model) Game() *dino.Game {
	return m.game
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		if m.game.Finish() {
			m.logger.Info("quit during a record run", "best", m.game.BestScore())
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.game.Jump()
	case core.ActionRestart:
		return m.restart()
	}

	return m, nil
}

// handleMouse maps a left click on the play field to jump while running
// and to restart after game over.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if _, _, ok := m.view.ToField(msg.X, msg.Y); !ok {
		return m, nil
	}
	if m.game.Running() {
		m.game.Jump()
		return m, nil
	}
	return m.restart()
}

// restart leaves the game-over state and resumes the frame loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.game.Restart() {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// handleResize rescales the play field without touching the session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.view.SetRegion(fieldRegion(m.screen))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances one frame and schedules the next while running.
// Scheduling stops when the session ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.game.Running() {
		return m, nil
	}

	res := m.game.Step()
	if res.Crashed {
		m.recordRun(res.State.Score)
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// recordRun appends a finished run to the history. Failures are logged.
func (m Model) recordRun(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(score); err != nil {
		m.logger.Warn("could not save run", "score", score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("dino_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the HUD and the play field into the screen buffer.
func (m Model) draw() {
	m.screen.DrawHLine(0, 0, m.screen.Width(), ' ', core.ColorDefault)
	m.screen.DrawText(1, 0, m.game.ScoreText(), core.ColorText)
	best := m.game.BestText()
	m.screen.DrawText(m.screen.Width()-len(best)-1, 0, best, core.ColorText)

	m.game.Render(m.view)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program for the game.
func Run(store ScoreStore, rt core.RuntimeConfig, cfg config.DinoConfig, logger *log.Logger) error {
	model := NewModel(store, rt, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
