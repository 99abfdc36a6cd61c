// Package app drives the scene: it owns the world and its actors and runs
// the initialize, (handle events, update, render), cleanup lifecycle on
// behalf of a window backend.
package app

import (
	"errors"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-actors/config"
	"ebiten-actors/ecs"
	"ebiten-actors/input"
	"ebiten-actors/render"
	"ebiten-actors/screens"
	"ebiten-actors/spawners"
	"ebiten-actors/systems"
	"ebiten-actors/vmath"
)

// Option customizes a BaseApp
type Option func(*BaseApp)

// WithTonePlayer sets the device used for actor audio
func WithTonePlayer(p systems.TonePlayer) Option {
	return func(a *BaseApp) { a.tonePlayer = p }
}

// WithTexture provides the track texture directly instead of loading
// cfg.TrackTexture
func WithTexture(tex *render.Texture) Option {
	return func(a *BaseApp) { a.trackTexture = tex }
}

// WithStats sets the provider of the FPS line shown by the inspector
func WithStats(stats func() string) Option {
	return func(a *BaseApp) { a.stats = stats }
}

// BaseApp owns the world and the scene actors for the lifetime of the run loop
type BaseApp struct {
	cfg    config.Config
	logger zerolog.Logger

	world        *ecs.World
	screenStack  *screens.ScreenStack
	renderSystem *systems.RenderSystem
	messageLog   *systems.MessageLog
	inspector    *screens.InspectorScreen

	Track    *ecs.Entity
	Circle   *ecs.Entity
	Triangle *ecs.Entity

	tonePlayer   systems.TonePlayer
	trackTexture *render.Texture
	stats        func() string

	pointer      vmath.Vec2
	pointerKnown bool
	width        int
	height       int
	initialized  bool
	running      bool
}

// New creates an uninitialized app
func New(cfg config.Config, logger zerolog.Logger, opts ...Option) *BaseApp {
	a := &BaseApp{
		cfg:    cfg,
		logger: logger.With().Str("component", "app").Logger(),
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Initialize builds the world, its systems and the actors
func (a *BaseApp) Initialize() error {
	if a.initialized {
		return eris.New("app already initialized")
	}
	if err := a.cfg.Validate(); err != nil {
		return eris.Wrap(err, "invalid configuration")
	}

	a.world = ecs.NewWorld()
	a.messageLog = systems.NewMessageLog()

	messageSystem := systems.NewMessageSystem(a.messageLog)
	messageSystem.Initialize(a.world)
	audioSystem := systems.NewAudioSystem(a.tonePlayer, a.logger)
	audioSystem.Initialize(a.world)

	// Steering must run before the sync so shapes are drawn where they moved to
	a.world.AddSystem(systems.NewSteeringSystem(a, a.logger))
	a.world.AddSystem(systems.NewTransformSyncSystem())
	a.world.AddSystem(audioSystem)
	a.world.AddSystem(messageSystem)

	a.renderSystem = systems.NewRenderSystem(config.MustColor(a.cfg.Background))
	a.renderSystem.ShowWaypoints = a.cfg.ShowWaypoints

	if a.trackTexture == nil && a.cfg.TrackTexture != "" {
		tex, err := render.LoadTexture(a.cfg.TrackTexture)
		if err != nil {
			a.logger.Warn().Err(err).Msg("track texture unavailable, drawing a plain track")
		} else {
			a.trackTexture = tex
		}
	}

	spawner := spawners.NewActorSpawner(a.world, a.cfg, a.logger)
	a.Track = spawner.CreateTrack(a.trackTexture)
	a.Circle = spawner.CreateCircle()
	a.Triangle = spawner.CreateTriangle()

	a.screenStack = screens.NewScreenStack()
	a.screenStack.Push(screens.NewSceneScreen(a.world, a.renderSystem))
	a.inspector = screens.NewInspectorScreen(a.world, a.renderSystem, a.messageLog, a.stats)

	a.messageLog.Add("Move the pointer near the circle to make it chase you.")
	a.messageLog.Add("F1: inspector  W: routes  Esc: quit")

	a.initialized = true
	a.running = true
	a.logger.Info().Int("actors", len(a.world.GetAllEntities())).Msg("scene initialized")
	return nil
}

// HandleEvents consumes the frame's input
func (a *BaseApp) HandleEvents(in *input.State) {
	if !a.running {
		return
	}

	a.pointer, a.pointerKnown = in.Pointer, in.PointerInside
	if in.Resized() {
		a.Resize(in.Width, in.Height)
	}
	if in.CloseRequested {
		a.Stop()
		return
	}

	if in.JustPressed(input.KeyF1) || in.JustPressed(input.KeyI) {
		a.ToggleInspector()
		return
	}

	err := a.screenStack.Update(in)
	switch {
	case err == nil:
	case errors.Is(err, screens.ErrQuit):
		a.Stop()
	default:
		a.logger.Error().Err(err).Msg("screen update failed")
	}
}

// ToggleInspector shows or hides the inspector overlay
func (a *BaseApp) ToggleInspector() {
	if a.InspectorOpen() {
		a.screenStack.Pop()
		return
	}
	a.screenStack.Push(a.inspector)
	a.screenStack.Layout(a.width, a.height)
}

// InspectorOpen reports whether the inspector overlay is shown
func (a *BaseApp) InspectorOpen() bool {
	return a.screenStack != nil && a.screenStack.Peek() == screens.Screen(a.inspector)
}

// Update advances the scene by dt seconds
func (a *BaseApp) Update(dt float64) {
	if !a.running {
		return
	}
	a.world.Update(dt)
}

// Render draws the scene and any overlays
func (a *BaseApp) Render(canvas render.Canvas) {
	if !a.initialized {
		return
	}
	a.screenStack.Draw(canvas)
}

// Resize records a new window size; the view follows it
func (a *BaseApp) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == a.width && height == a.height) {
		return
	}
	a.width, a.height = width, height
	if a.screenStack != nil {
		a.screenStack.Layout(width, height)
	}
	a.logger.Debug().Int("width", width).Int("height", height).Msg("window resized")
}

// Size returns the current view size
func (a *BaseApp) Size() (width, height int) {
	return a.width, a.height
}

// Pointer implements systems.PointerSource
func (a *BaseApp) Pointer() (vmath.Vec2, bool) {
	return a.pointer, a.pointerKnown
}

// Running reports whether the loop should keep going
func (a *BaseApp) Running() bool {
	return a.running
}

// Stop ends the run loop after the current frame
func (a *BaseApp) Stop() {
	if a.running {
		a.logger.Info().Msg("closing scene")
	}
	a.running = false
}

// World returns the scene world
func (a *BaseApp) World() *ecs.World {
	return a.world
}

// MessageLog returns the log shown by the inspector
func (a *BaseApp) MessageLog() *systems.MessageLog {
	return a.messageLog
}

// Cleanup releases the scene. The app cannot be used afterwards.
func (a *BaseApp) Cleanup() {
	if !a.initialized {
		return
	}
	for _, e := range a.world.GetAllEntities() {
		a.world.RemoveEntity(e.ID)
	}
	a.Track, a.Circle, a.Triangle = nil, nil, nil
	a.running = false
	a.initialized = false
	a.logger.Info().Msg("scene cleaned up")
}

