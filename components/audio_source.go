package components

import (
	"time"

	"ebiten-actors/ecs"
	"ebiten-actors/render"
)

// AudioSource describes the blip an entity emits on audible events
type AudioSource struct {
	Frequency float64
	Duration  time.Duration
	Muted     bool
}

// NewAudioSource creates an audio source
func NewAudioSource(frequency float64, duration time.Duration) *AudioSource {
	return &AudioSource{Frequency: frequency, Duration: duration}
}

// ID implements ecs.Component
func (*AudioSource) ID() ecs.ComponentID { return AudioSourceID }

// Update implements ecs.Component
func (*AudioSource) Update(float64) {}

// Render implements ecs.Component
func (*AudioSource) Render(render.Canvas) {}
