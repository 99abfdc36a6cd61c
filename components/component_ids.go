package components

import (
	"ebiten-actors/ecs"
)

// Component IDs. Values are persisted in logs and must not be renumbered;
// 2 is retired.
const (
	None          ecs.ComponentID = 0
	TransformID   ecs.ComponentID = 1
	SpriteID      ecs.ComponentID = 3 // reserved
	PhysicsID     ecs.ComponentID = 4 // reserved
	AudioSourceID ecs.ComponentID = 5
	ShapeID       ecs.ComponentID = 6
	PatrolID      ecs.ComponentID = 7
	SeekID        ecs.ComponentID = 8
)
