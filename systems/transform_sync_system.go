package systems

import (
	"ebiten-actors/components"
	"ebiten-actors/ecs"
)

// TransformSyncSystem copies each Transform onto the entity's shape so the
// shape is drawn where the transform says
type TransformSyncSystem struct{}

// NewTransformSyncSystem creates a new transform sync system
func NewTransformSyncSystem() *TransformSyncSystem {
	return &TransformSyncSystem{}
}

// Update implements ecs.System
func (s *TransformSyncSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.GetAllEntities() {
		transform, ok := ecs.GetComponent[*components.Transform](entity)
		if !ok {
			continue
		}
		shape, ok := ecs.GetComponent[*components.ShapeFactory](entity)
		if !ok {
			continue
		}

		shape.SetPosition(transform.Position)
		shape.SetRotation(transform.Rotation)
		shape.SetScale(transform.Scale)
	}
}
