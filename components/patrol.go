package components

import (
	"ebiten-actors/ecs"
	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

// SteeringMode is the active behavior of a patrolling entity
type SteeringMode int

const (
	// Patrolling cycles through the waypoints
	Patrolling SteeringMode = iota
	// Chasing seeks the pointer while it is within the proximity radius
	Chasing
)

// String returns the mode name
func (m SteeringMode) String() string {
	if m == Chasing {
		return "chasing"
	}
	return "patrolling"
}

// PatrolStep is the outcome of one patrol frame
type PatrolStep struct {
	Position vmath.Vec2
	// Reached is set when a waypoint was reached this frame; ReachedIndex
	// is the waypoint that was reached
	Reached      bool
	ReachedIndex int
	// ModeChanged is set when Mode differs from the previous frame
	ModeChanged bool
}

// Patrol cycles an entity through an ordered list of waypoints. While the
// pointer is closer than Proximity the entity chases it instead.
// A zero Proximity disables chasing.
type Patrol struct {
	Waypoints   []vmath.Vec2
	Index       int
	Speed       float64
	ArriveRange float64
	Proximity   float64
	Mode        SteeringMode
}

// NewPatrol creates a patrol starting at the first waypoint
func NewPatrol(waypoints []vmath.Vec2, speed, arriveRange, proximity float64) *Patrol {
	points := make([]vmath.Vec2, len(waypoints))
	copy(points, waypoints)
	return &Patrol{
		Waypoints:   points,
		Speed:       speed,
		ArriveRange: arriveRange,
		Proximity:   proximity,
		Mode:        Patrolling,
	}
}

// ID implements ecs.Component
func (*Patrol) ID() ecs.ComponentID { return PatrolID }

// Update implements ecs.Component; movement is driven by the steering system
func (*Patrol) Update(float64) {}

// Render implements ecs.Component
func (*Patrol) Render(render.Canvas) {}

// Current returns the waypoint being approached
func (p *Patrol) Current() (vmath.Vec2, bool) {
	if len(p.Waypoints) == 0 {
		return vmath.Vec2{}, false
	}
	return p.Waypoints[p.Index%len(p.Waypoints)], true
}

// Advance moves on to the next waypoint, wrapping to the first
func (p *Patrol) Advance() {
	if len(p.Waypoints) == 0 {
		return
	}
	p.Index = (p.Index + 1) % len(p.Waypoints)
}

// Step runs one frame of patrol steering from pos
func (p *Patrol) Step(pos, pointer vmath.Vec2, pointerKnown bool, dt float64) PatrolStep {
	step := PatrolStep{Position: pos}

	mode := Patrolling
	if p.Proximity > 0 && pointerKnown && vmath.Distance(pos, pointer) < p.Proximity {
		mode = Chasing
	}
	if mode != p.Mode {
		p.Mode = mode
		step.ModeChanged = true
	}

	if mode == Chasing {
		step.Position = vmath.MoveTowards(pos, pointer, p.Speed, dt, p.ArriveRange)
		return step
	}

	target, ok := p.Current()
	if !ok {
		return step
	}
	step.Position = vmath.MoveTowards(pos, target, p.Speed, dt, p.ArriveRange)
	if vmath.Distance(step.Position, target) <= p.ArriveRange {
		step.Reached = true
		step.ReachedIndex = p.Index
		p.Advance()
	}
	return step
}
