package ecs

import "ebiten-actors/render"

// ComponentID tags the behavioral role of a component
type ComponentID uint

// Component is the base interface for all components.
// Update runs once per frame, Render draws onto the canvas (most
// data-only components leave it empty).
type Component interface {
	ID() ComponentID
	Update(dt float64)
	Render(canvas render.Canvas)
}
