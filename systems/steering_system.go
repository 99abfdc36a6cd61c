package systems

import (
	"github.com/rs/zerolog"

	"ebiten-actors/components"
	"ebiten-actors/ecs"
	"ebiten-actors/vmath"
)

// PointerSource reports the pointer position in world pixels.
// ok is false while the pointer is outside the window.
type PointerSource interface {
	Pointer() (pos vmath.Vec2, ok bool)
}

// SteeringSystem drives Patrol and Seek components. It moves the
// entity's Transform, or its shape when the entity has no Transform.
type SteeringSystem struct {
	pointer PointerSource
	logger  zerolog.Logger
}

// NewSteeringSystem creates a steering system reading the pointer from src
func NewSteeringSystem(src PointerSource, logger zerolog.Logger) *SteeringSystem {
	return &SteeringSystem{
		pointer: src,
		logger:  logger.With().Str("system", "steering").Logger(),
	}
}

// Update implements ecs.System
func (s *SteeringSystem) Update(world *ecs.World, dt float64) {
	pointer, known := s.pointer.Pointer()

	for _, entity := range world.GetAllEntities() {
		if !entity.Active {
			continue
		}
		patrol, hasPatrol := ecs.GetComponent[*components.Patrol](entity)
		seek, hasSeek := ecs.GetComponent[*components.Seek](entity)
		if !hasPatrol && !hasSeek {
			continue
		}

		pos, ok := position(entity)
		if !ok {
			continue
		}

		if hasPatrol {
			step := patrol.Step(pos, pointer, known, dt)
			pos = step.Position
			if step.ModeChanged {
				s.logger.Debug().Str("actor", entity.Name).Stringer("mode", patrol.Mode).Msg("steering mode changed")
				world.EmitEvent(SteeringModeChangedEvent{EntityID: entity.ID, Name: entity.Name, Mode: patrol.Mode})
			}
			if step.Reached {
				s.logger.Debug().Str("actor", entity.Name).Int("waypoint", step.ReachedIndex).Msg("waypoint reached")
				world.EmitEvent(WaypointReachedEvent{
					EntityID: entity.ID,
					Name:     entity.Name,
					Index:    step.ReachedIndex,
					Position: pos,
				})
			}
		}
		if hasSeek {
			pos = seek.Step(pos, pointer, known, dt)
		}

		setPosition(entity, pos)
	}
}

// position reads the entity position from its Transform, falling back to its shape
func position(entity *ecs.Entity) (vmath.Vec2, bool) {
	if t, ok := ecs.GetComponent[*components.Transform](entity); ok {
		return t.Position, true
	}
	if f, ok := ecs.GetComponent[*components.ShapeFactory](entity); ok && f.Shape() != nil {
		return f.Position(), true
	}
	return vmath.Vec2{}, false
}

func setPosition(entity *ecs.Entity, pos vmath.Vec2) {
	if t, ok := ecs.GetComponent[*components.Transform](entity); ok {
		t.SetPosition(pos)
		return
	}
	if f, ok := ecs.GetComponent[*components.ShapeFactory](entity); ok {
		f.SetPosition(pos)
	}
}
