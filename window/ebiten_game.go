// Package window runs the scene in a desktop window through ebiten.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-actors/config"
	"ebiten-actors/input"
	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

// App is the scene driven by the window
type App interface {
	HandleEvents(in *input.State)
	Update(dt float64)
	Render(canvas render.Canvas)
	Resize(width, height int)
	Running() bool
}

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyEscape:         input.KeyEscape,
	ebiten.KeyF1:             input.KeyF1,
	ebiten.KeyI:              input.KeyI,
	ebiten.KeyW:              input.KeyW,
	ebiten.KeyTab:            input.KeyTab,
	ebiten.KeyArrowUp:        input.KeyUp,
	ebiten.KeyArrowDown:      input.KeyDown,
	ebiten.KeyArrowLeft:      input.KeyLeft,
	ebiten.KeyArrowRight:     input.KeyRight,
	ebiten.KeyQ:              input.KeyQ,
	ebiten.KeyE:              input.KeyE,
	ebiten.KeyEqual:          input.KeyPlus,
	ebiten.KeyNumpadAdd:      input.KeyPlus,
	ebiten.KeyMinus:          input.KeyMinus,
	ebiten.KeyNumpadSubtract: input.KeyMinus,
}

// Game implements ebiten.Game interface.
type Game struct {
	app    App
	canvas *EbitenCanvas
	in     *input.State
	dt     float64
	width  int
	height int
}

// NewGame wraps app for ebiten.RunGame
func NewGame(app App, cfg config.Config) *Game {
	return &Game{
		app:    app,
		canvas: NewEbitenCanvas(),
		in:     input.NewState(),
		dt:     1 / float64(cfg.TPS),
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
	}
}

// Update polls input and advances the scene by one tick
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.in.Pointer = vmath.V(float64(x), float64(y))
	g.in.PointerInside = ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.width && y < g.height

	for key, k := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			g.in.Press(k)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		g.in.CloseRequested = true
	}

	g.app.HandleEvents(g.in)
	g.app.Update(g.dt)
	g.in.EndFrame()

	if !g.app.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Begin(screen)
	g.app.Render(g.canvas)
}

// Layout follows the outside size so the view tracks window resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.in.Width, g.in.Height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Stats reports the measured frame and tick rates
func Stats() string {
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Run opens the window and blocks until the app stops or the window closes
func Run(cfg config.Config, app App, logger zerolog.Logger) error {
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	logger.Info().
		Int("width", cfg.WindowWidth).
		Int("height", cfg.WindowHeight).
		Int("tps", cfg.TPS).
		Msg("opening window")

	if err := ebiten.RunGame(NewGame(app, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return eris.Wrap(err, "game loop failed")
	}
	return nil
}
