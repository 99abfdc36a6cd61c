package systems

import (
	"ebiten-actors/components"
	"ebiten-actors/ecs"
	"ebiten-actors/vmath"
)

// Event type constants
const (
	EventWaypointReached ecs.EventType = "waypoint_reached"
	EventSteeringMode    ecs.EventType = "steering_mode"
	EventActorSpawned    ecs.EventType = "actor_spawned"
)

// WaypointReachedEvent is emitted when a patrolling entity arrives at a waypoint
type WaypointReachedEvent struct {
	EntityID ecs.EntityID
	Name     string
	Index    int // Index of the waypoint that was reached
	Position vmath.Vec2
}

// Type returns the event type
func (e WaypointReachedEvent) Type() ecs.EventType {
	return EventWaypointReached
}

// SteeringModeChangedEvent is emitted when a patrol switches between
// patrolling and chasing the pointer
type SteeringModeChangedEvent struct {
	EntityID ecs.EntityID
	Name     string
	Mode     components.SteeringMode
}

// Type returns the event type
func (e SteeringModeChangedEvent) Type() ecs.EventType {
	return EventSteeringMode
}

// ActorSpawnedEvent is emitted once an actor is fully assembled
type ActorSpawnedEvent struct {
	EntityID ecs.EntityID
	Name     string
}

// Type returns the event type
func (e ActorSpawnedEvent) Type() ecs.EventType {
	return EventActorSpawned
}
