package systems

import (
	"image/color"

	"ebiten-actors/components"
	"ebiten-actors/ecs"
	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

// waypointMarkerSize is the half-size of the diamond drawn on the current waypoint
const waypointMarkerSize = 6.0

// RenderSystem handles drawing entities to the canvas
type RenderSystem struct {
	Background    color.Color
	WaypointColor color.Color
	ShowWaypoints bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(background color.Color) *RenderSystem {
	return &RenderSystem{
		Background:    background,
		WaypointColor: color.RGBA{255, 255, 0, 255},
	}
}

// ToggleWaypoints shows or hides patrol routes
func (s *RenderSystem) ToggleWaypoints() {
	s.ShowWaypoints = !s.ShowWaypoints
}

// Update implements ecs.System; drawing happens in Draw
func (s *RenderSystem) Update(world *ecs.World, dt float64) {}

// Draw clears the canvas and draws every entity in creation order
func (s *RenderSystem) Draw(world *ecs.World, canvas render.Canvas) {
	canvas.Clear(s.Background)
	world.Render(canvas)

	if s.ShowWaypoints {
		s.drawRoutes(world, canvas)
	}
}

func (s *RenderSystem) drawRoutes(world *ecs.World, canvas render.Canvas) {
	for _, entity := range world.GetEntitiesWithComponent(components.PatrolID) {
		patrol, ok := ecs.GetComponent[*components.Patrol](entity)
		if !ok || len(patrol.Waypoints) == 0 {
			continue
		}

		points := patrol.Waypoints
		for i := range points {
			next := points[(i+1)%len(points)]
			canvas.StrokeLine(points[i], next, 1, s.WaypointColor)
		}

		if target, ok := patrol.Current(); ok {
			canvas.FillPolygon([]vmath.Vec2{
				target.Add(vmath.V(0, -waypointMarkerSize)),
				target.Add(vmath.V(waypointMarkerSize, 0)),
				target.Add(vmath.V(0, waypointMarkerSize)),
				target.Add(vmath.V(-waypointMarkerSize, 0)),
			}, s.WaypointColor, nil)
		}
	}
}
