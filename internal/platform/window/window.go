//go:build ebiten

package window

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dino-jump/internal/config"
	"github.com/vovakirdan/dino-jump/internal/core"
	"github.com/vovakirdan/dino-jump/internal/dino"
)

// hudHeight is the strip above the play field holding the score lines.
const hudHeight = 20

var palette = map[core.Color]color.Color{
	core.ColorDefault:  color.RGBA{0x20, 0x21, 0x24, 0xff},
	core.ColorPlayer:   color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	core.ColorObstacle: color.RGBA{0x99, 0x99, 0x99, 0xff},
	core.ColorGround:   color.RGBA{0xbb, 0xbb, 0xbb, 0xff},
	core.ColorText:     color.White,
	core.ColorBanner:   color.White,
}

// canvas draws field units 1:1 as pixels below the HUD strip.
type canvas struct {
	img *ebiten.Image
}

func (c canvas) Clear() {
	c.img.Fill(palette[core.ColorDefault])
}

func (c canvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y+hudHeight), float32(r.W), float32(r.H), palette[col], false)
}

func (c canvas) HLine(x0, x1, y float64, col core.Color) {
	vector.StrokeLine(c.img, float32(x0), float32(y+hudHeight), float32(x1), float32(y+hudHeight), 1, palette[col], false)
}

func (c canvas) Text(x, y float64, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.img, text, int(x), int(y)+hudHeight)
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	*session
}

// New constructs a Game. store may be nil.
func New(store ScoreStore, cfg config.DinoConfig, seed int64, logger *log.Logger) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{session: newSession(store, cfg, logger, dino.WithSeed(seed))}
}

// fieldClicked reports a left click inside the play field.
func (g *Game) fieldClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	w, h := g.game.Field()
	return x >= 0 && float64(x) < w && y >= hudHeight && float64(y-hudHeight) < h
}

// Update reads this frame's input and advances the session.
func (g *Game) Update() error {
	in := Input{
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Jump: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW),
		Click: g.fieldClicked(),
	}
	if g.update(in) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.game.Render(canvas{img: screen})
	ebitenutil.DebugPrintAt(screen, g.game.ScoreText(), 8, 2)
	w, _ := g.game.Field()
	best := g.game.BestText()
	ebitenutil.DebugPrintAt(screen, best, int(w)-8-6*len(best), 2)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.game.Field()
	return int(w), int(h) + hudHeight
}

// Run opens a window and plays until it is closed.
func Run(store ScoreStore, cfg config.DinoConfig, tickRate int, seed int64, logger *log.Logger) error {
	g := New(store, cfg, seed, logger)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Dino Jump")
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}
	return ebiten.RunGame(g)
}
