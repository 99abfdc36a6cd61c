package components

import (
	"ebiten-actors/ecs"
	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

// Seek makes an entity follow the pointer
type Seek struct {
	Speed float64
	Range float64
}

// NewSeek creates a pointer seek behavior
func NewSeek(speed, rng float64) *Seek {
	return &Seek{Speed: speed, Range: rng}
}

// ID implements ecs.Component
func (*Seek) ID() ecs.ComponentID { return SeekID }

// Update implements ecs.Component; movement is driven by the steering system
func (*Seek) Update(float64) {}

// Render implements ecs.Component
func (*Seek) Render(render.Canvas) {}

// Step returns the next position. Without a known pointer the entity stays put.
func (s *Seek) Step(pos, pointer vmath.Vec2, pointerKnown bool, dt float64) vmath.Vec2 {
	if !pointerKnown {
		return pos
	}
	return vmath.MoveTowards(pos, pointer, s.Speed, dt, s.Range)
}
