// Package terminal runs the scene inside a terminal through tcell. World
// pixels are mapped onto character cells and the mouse drives the pointer.
package terminal

import (
	"context"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-actors/config"
	"ebiten-actors/input"
	"ebiten-actors/render"
)

// App is the scene driven by the terminal loop
type App interface {
	HandleEvents(in *input.State)
	Update(dt float64)
	Render(canvas render.Canvas)
	Size() (width, height int)
	Running() bool
}

// Loop polls terminal events and drives the app at a fixed tick
type Loop struct {
	screen tcell.Screen
	canvas *render.TerminalCanvas
	app    App
	in     *input.State
	dt     float64
	tick   time.Duration
	logger zerolog.Logger
}

// NewLoop creates a loop on an initialized screen
func NewLoop(screen tcell.Screen, cfg config.Config, app App, logger zerolog.Logger) *Loop {
	w, h := app.Size()
	return &Loop{
		screen: screen,
		canvas: render.NewTerminalCanvas(screen, w, h),
		app:    app,
		in:     input.NewState(),
		dt:     1 / float64(cfg.TPS),
		tick:   time.Second / time.Duration(cfg.TPS),
		logger: logger.With().Str("component", "terminal").Logger(),
	}
}

// Run opens the terminal screen and blocks until the app stops or ctx is done
func Run(ctx context.Context, cfg config.Config, app App, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "failed to initialize terminal screen")
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	return NewLoop(screen, cfg, app, logger).Run(ctx)
}

// Run processes events and frames until the app stops or ctx is done
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	stop := make(chan struct{})
	defer close(stop)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-stop:
				return
			}
		}
	}()

	l.logger.Info().Dur("tick", l.tick).Msg("terminal loop started")
	for l.app.Running() {
		select {
		case <-ctx.Done():
			l.logger.Info().Msg("terminal loop interrupted")
			return nil
		case ev := <-eventChan:
			l.HandleEvent(ev)
		case <-ticker.C:
			l.Frame()
		}
	}
	l.logger.Info().Msg("terminal loop finished")
	return nil
}

// HandleEvent folds one terminal event into this frame's input
func (l *Loop) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			l.in.CloseRequested = true
			return
		}
		if k := translateKey(ev); k != input.KeyUnknown {
			l.in.Press(k)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		l.in.Pointer = l.canvas.ToWorld(x, y)
		l.in.PointerInside = true
	case *tcell.EventResize:
		l.screen.Sync()
		l.canvas.Fit(l.app.Size())
	}
}

// Frame runs one handle events, update, render step
func (l *Loop) Frame() {
	l.app.HandleEvents(l.in)
	l.app.Update(l.dt)
	l.in.EndFrame()

	l.app.Render(l.canvas)
	l.screen.Show()
}

// Canvas returns the canvas frames are drawn on
func (l *Loop) Canvas() *render.TerminalCanvas {
	return l.canvas
}

func translateKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyF1:
		return input.KeyF1
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'i':
			return input.KeyI
		case 'w':
			return input.KeyW
		case 'q':
			return input.KeyQ
		case 'e':
			return input.KeyE
		case '+', '=':
			return input.KeyPlus
		case '-', '_':
			return input.KeyMinus
		}
	}
	return input.KeyUnknown
}
