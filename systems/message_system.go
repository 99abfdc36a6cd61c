package systems

import (
	"fmt"

	"ebiten-actors/ecs"
)

// MessageLog stores scene messages shown by the inspector overlay
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []string{}
}

// MessageSystem turns scene events into log lines
type MessageSystem struct {
	log *MessageLog
}

// NewMessageSystem creates a message system writing to log
func NewMessageSystem(log *MessageLog) *MessageSystem {
	return &MessageSystem{log: log}
}

// Initialize subscribes to the events worth reporting
func (s *MessageSystem) Initialize(world *ecs.World) {
	em := world.GetEventManager()
	em.Subscribe(EventWaypointReached, func(e ecs.Event) {
		ev := e.(WaypointReachedEvent)
		s.log.Add(fmt.Sprintf("%s reached waypoint %d", ev.Name, ev.Index))
	})
	em.Subscribe(EventSteeringMode, func(e ecs.Event) {
		ev := e.(SteeringModeChangedEvent)
		s.log.Add(fmt.Sprintf("%s is now %s", ev.Name, ev.Mode))
	})
	em.Subscribe(EventActorSpawned, func(e ecs.Event) {
		ev := e.(ActorSpawnedEvent)
		s.log.Add(fmt.Sprintf("spawned %s", ev.Name))
	})
}

// Update implements ecs.System
func (s *MessageSystem) Update(*ecs.World, float64) {}
