package systems

import (
	"time"

	"github.com/rs/zerolog"

	"ebiten-actors/components"
	"ebiten-actors/ecs"
)

// TonePlayer plays a short synthesized tone on an audio device
type TonePlayer interface {
	PlayTone(freq float64, d time.Duration) error
}

// AudioSystem plays an entity's AudioSource when it reaches a waypoint
type AudioSystem struct {
	player TonePlayer
	logger zerolog.Logger
}

// NewAudioSystem creates a new audio system. A nil player keeps the scene silent.
func NewAudioSystem(player TonePlayer, logger zerolog.Logger) *AudioSystem {
	return &AudioSystem{
		player: player,
		logger: logger.With().Str("system", "audio").Logger(),
	}
}

// Initialize subscribes to waypoint events
func (s *AudioSystem) Initialize(world *ecs.World) {
	world.GetEventManager().Subscribe(EventWaypointReached, func(e ecs.Event) {
		ev := e.(WaypointReachedEvent)
		s.play(world.GetEntity(ev.EntityID))
	})
}

// Update implements ecs.System
func (s *AudioSystem) Update(*ecs.World, float64) {}

func (s *AudioSystem) play(entity *ecs.Entity) {
	if s.player == nil || entity == nil {
		return
	}
	source, ok := ecs.GetComponent[*components.AudioSource](entity)
	if !ok || source.Muted {
		return
	}
	if err := s.player.PlayTone(source.Frequency, source.Duration); err != nil {
		s.logger.Warn().Err(err).Str("actor", entity.Name).Msg("failed to play tone")
	}
}
