package screens

import (
	"ebiten-actors/ecs"
	"ebiten-actors/input"
	"ebiten-actors/render"
	"ebiten-actors/systems"
)

// SceneScreen draws the world. It sits at the bottom of the stack.
type SceneScreen struct {
	*BaseScreen
	world        *ecs.World
	renderSystem *systems.RenderSystem
}

// NewSceneScreen creates the scene screen
func NewSceneScreen(world *ecs.World, renderSystem *systems.RenderSystem) *SceneScreen {
	return &SceneScreen{
		BaseScreen:   NewBaseScreen(),
		world:        world,
		renderSystem: renderSystem,
	}
}

// Update handles scene-level keys: W toggles patrol routes, Esc quits
func (s *SceneScreen) Update(in *input.State) error {
	if in.JustPressed(input.KeyW) {
		s.renderSystem.ToggleWaypoints()
	}
	if in.JustPressed(input.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw renders the world
func (s *SceneScreen) Draw(canvas render.Canvas) {
	s.renderSystem.Draw(s.world, canvas)
}
