package components

import (
	"ebiten-actors/ecs"
	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

// Transform stores an entity's position, rotation (degrees) and scale
type Transform struct {
	Position vmath.Vec2
	Rotation float64
	Scale    vmath.Vec2
}

// NewTransform creates a transform at position with no rotation and unit scale
func NewTransform(position vmath.Vec2) *Transform {
	return &Transform{
		Position: position,
		Scale:    vmath.V(1, 1),
	}
}

// ID implements ecs.Component
func (*Transform) ID() ecs.ComponentID { return TransformID }

// Update implements ecs.Component
func (*Transform) Update(float64) {}

// Render implements ecs.Component
func (*Transform) Render(render.Canvas) {}

// SetPosition moves the transform to position
func (t *Transform) SetPosition(position vmath.Vec2) {
	t.Position = position
}

// SetRotation sets the rotation in degrees
func (t *Transform) SetRotation(deg float64) {
	t.Rotation = deg
}

// SetScale sets the scale factors
func (t *Transform) SetScale(scale vmath.Vec2) {
	t.Scale = scale
}

// Move offsets the position
func (t *Transform) Move(offset vmath.Vec2) {
	t.Position = t.Position.Add(offset)
}

// Seek moves toward target at speed px/s, holding still within rng of it
func (t *Transform) Seek(target vmath.Vec2, speed, dt, rng float64) {
	t.Position = vmath.MoveTowards(t.Position, target, speed, dt, rng)
}
