package spawners

import (
	"image/color"
	"time"

	"github.com/rs/zerolog"

	"ebiten-actors/components"
	"ebiten-actors/config"
	"ebiten-actors/ecs"
	"ebiten-actors/render"
	"ebiten-actors/systems"
	"ebiten-actors/vmath"
)

// Actor names
const (
	TrackName    = "Track"
	CircleName   = "Circle"
	TriangleName = "Triangle"
)

// Tags used for lookups
const (
	TagActor  = "actor"
	TagTrack  = "track"
	TagPatrol = "patrol"
	TagSeeker = "seeker"
)

// waypointInset keeps the patrol route this far from the window edges
const waypointInset = 100.0

// toneDuration is how long the waypoint blip lasts
const toneDuration = 60 * time.Millisecond

// ActorSpawner manages the creation of scene actors
type ActorSpawner struct {
	world  *ecs.World
	cfg    config.Config
	logger zerolog.Logger
}

// NewActorSpawner creates a new actor spawner
func NewActorSpawner(world *ecs.World, cfg config.Config, logger zerolog.Logger) *ActorSpawner {
	return &ActorSpawner{
		world:  world,
		cfg:    cfg,
		logger: logger.With().Str("component", "spawner").Logger(),
	}
}

// CreateActor creates a named actor with a Transform and a shape of the
// given type. The shape origin is its center so rotation and scale pivot
// around the actor position.
func (s *ActorSpawner) CreateActor(name string, shapeType components.ShapeType, pos vmath.Vec2) *ecs.Entity {
	actor := s.world.CreateEntity(name)
	s.world.TagEntity(actor.ID, TagActor)

	transform := components.NewTransform(pos)
	actor.AddComponent(transform)

	factory := components.NewShapeFactory()
	if shape := factory.CreateShape(shapeType); shape != nil {
		min, max := render.Bounds(shape.Points())
		factory.SetOrigin(min.Add(max).Scale(0.5))
		factory.SetPosition(pos)
	}
	actor.AddComponent(factory)

	return actor
}

// CreateTrack creates the background actor covering the whole window.
// With a texture the track is drawn untinted, otherwise in the track color.
func (s *ActorSpawner) CreateTrack(tex *render.Texture) *ecs.Entity {
	w, h := float64(s.cfg.WindowWidth), float64(s.cfg.WindowHeight)
	track := s.CreateActor(TrackName, components.ShapeRectangle, vmath.V(w/2, h/2))
	s.world.TagEntity(track.ID, TagTrack)

	transform, _ := ecs.GetComponent[*components.Transform](track)
	transform.SetScale(vmath.V(w/components.RectangleWidth, h/components.RectangleHeight))

	factory, _ := ecs.GetComponent[*components.ShapeFactory](track)
	factory.SetScale(transform.Scale)
	if tex != nil {
		factory.SetTexture(tex)
		factory.SetFillColor(color.White)
	} else {
		factory.SetFillColor(config.MustColor(s.cfg.TrackColor))
	}

	s.spawned(track)
	return track
}

// CreateCircle creates the patrolling circle. It chases the pointer while
// it is within the proximity radius and blips on every waypoint.
func (s *ActorSpawner) CreateCircle() *ecs.Entity {
	waypoints := s.Waypoints()
	circle := s.CreateActor(CircleName, components.ShapeCircle, waypoints[0])
	s.world.TagEntity(circle.ID, TagPatrol)

	factory, _ := ecs.GetComponent[*components.ShapeFactory](circle)
	factory.SetFillColor(config.MustColor(s.cfg.CircleColor))

	circle.AddComponent(components.NewPatrol(waypoints, s.cfg.PatrolSpeed, s.cfg.ArriveRange, s.cfg.ProximityRadius))
	if s.cfg.Audio {
		circle.AddComponent(components.NewAudioSource(s.cfg.ToneFrequency, toneDuration))
	}

	s.spawned(circle)
	return circle
}

// CreateTriangle creates the triangle that follows the pointer
func (s *ActorSpawner) CreateTriangle() *ecs.Entity {
	pos := vmath.V(float64(s.cfg.WindowWidth)/2, float64(s.cfg.WindowHeight)/2)
	triangle := s.CreateActor(TriangleName, components.ShapeTriangle, pos)
	s.world.TagEntity(triangle.ID, TagSeeker)

	factory, _ := ecs.GetComponent[*components.ShapeFactory](triangle)
	factory.SetFillColor(config.MustColor(s.cfg.TriangleColor))

	triangle.AddComponent(components.NewSeek(s.cfg.SeekSpeed, s.cfg.ArriveRange))

	s.spawned(triangle)
	return triangle
}

// Waypoints returns the patrol route: the window corners, inset, clockwise
// from the top-left
func (s *ActorSpawner) Waypoints() []vmath.Vec2 {
	w, h := float64(s.cfg.WindowWidth), float64(s.cfg.WindowHeight)
	inset := waypointInset
	if w < 4*inset || h < 4*inset {
		inset = 0.25 * min(w, h)
	}
	return []vmath.Vec2{
		vmath.V(inset, inset),
		vmath.V(w-inset, inset),
		vmath.V(w-inset, h-inset),
		vmath.V(inset, h-inset),
	}
}

func (s *ActorSpawner) spawned(actor *ecs.Entity) {
	s.logger.Info().Str("actor", actor.Name).Uint64("id", uint64(actor.ID)).Int("components", len(actor.Components())).Msg("actor created")
	s.world.EmitEvent(systems.ActorSpawnedEvent{EntityID: actor.ID, Name: actor.Name})
}
