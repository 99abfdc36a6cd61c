package components

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-actors/ecs"
	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

type recordingCanvas struct {
	polygons [][]vmath.Vec2
	colors   []color.Color
	textures []*render.Texture
}

func (c *recordingCanvas) Clear(color.Color) {}
func (c *recordingCanvas) FillPolygon(points []vmath.Vec2, clr color.Color, tex *render.Texture) {
	c.polygons = append(c.polygons, points)
	c.colors = append(c.colors, clr)
	c.textures = append(c.textures, tex)
}
func (c *recordingCanvas) StrokeLine(vmath.Vec2, vmath.Vec2, float64, color.Color) {}
func (c *recordingCanvas) DebugText(string, int, int)                              {}
func (c *recordingCanvas) Size() (int, int)                                        { return 800, 600 }

func assertVec(t *testing.T, want, got vmath.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestCreateShape(t *testing.T) {
	f := NewShapeFactory()
	assert.Nil(t, f.Shape())
	assert.Equal(t, ShapeEmpty, f.ShapeType())

	circle := f.CreateShape(ShapeCircle)
	require.NotNil(t, circle)
	assert.Equal(t, CircleRadius, circle.Radius)
	assert.Len(t, circle.Points(), CirclePointCount)
	assert.Equal(t, color.White, circle.FillColor)

	rect := f.CreateShape(ShapeRectangle)
	require.NotNil(t, rect)
	assert.Same(t, rect, f.Shape())
	assert.Equal(t, ShapeRectangle, f.ShapeType())
	assert.Equal(t, vmath.V(RectangleWidth, RectangleHeight), rect.Size)

	tri := f.CreateShape(ShapeTriangle)
	require.NotNil(t, tri)
	points := tri.Points()
	require.Len(t, points, 3)
	// first vertex is at the top center of the bounding box
	assertVec(t, vmath.V(TriangleRadius, 0), points[0])

	assert.Nil(t, f.CreateShape(ShapeEmpty))
	assert.Nil(t, f.Shape())
	assert.Nil(t, f.CreateShape(ShapeType(42)))
}

func TestShapeFactoryWithoutShapeIsNoop(t *testing.T) {
	f := NewShapeFactory()
	canvas := &recordingCanvas{}

	assert.NotPanics(t, func() {
		f.SetPosition(vmath.V(1, 2))
		f.SetRotation(45)
		f.SetScale(vmath.V(2, 2))
		f.SetOrigin(vmath.V(1, 1))
		f.SetFillColor(color.Black)
		f.SetTexture(nil)
		f.Seek(vmath.V(100, 100), 10, 1, 0)
		f.Render(canvas)
	})
	assert.Empty(t, canvas.polygons)
	assert.Equal(t, vmath.Vec2{}, f.Position())
}

func TestShapeWorldPoints(t *testing.T) {
	f := NewShapeFactory()
	f.CreateShape(ShapeRectangle)
	f.SetPosition(vmath.V(10, 20))
	f.SetScale(vmath.V(2, 1))

	points := f.Shape().WorldPoints()
	assertVec(t, vmath.V(10, 20), points[0])
	assertVec(t, vmath.V(210, 20), points[1])
	assertVec(t, vmath.V(210, 70), points[2])

	f.SetScale(vmath.V(1, 1))
	f.SetOrigin(vmath.V(RectangleWidth/2, RectangleHeight/2))
	f.SetRotation(90)
	points = f.Shape().WorldPoints()
	// top-left corner (-50,-25) rotated 90° clockwise lands at (25,-50)
	assertVec(t, vmath.V(35, -30), points[0])
}

func TestShapeFactoryRender(t *testing.T) {
	f := NewShapeFactory()
	f.CreateShape(ShapeTriangle)
	f.SetFillColor(color.RGBA{B: 255, A: 255})
	tex := render.NewTexture("tex", nil)
	f.SetTexture(tex)

	canvas := &recordingCanvas{}
	f.Render(canvas)

	require.Len(t, canvas.polygons, 1)
	assert.Len(t, canvas.polygons[0], 3)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, canvas.colors[0])
	assert.Same(t, tex, canvas.textures[0])
}

func TestShapeFactorySeek(t *testing.T) {
	f := NewShapeFactory()
	f.CreateShape(ShapeCircle)
	f.SetPosition(vmath.V(0, 0))

	f.Seek(vmath.V(100, 0), 200, 0.1, 10)
	assertVec(t, vmath.V(20, 0), f.Position())

	f.SetPosition(vmath.V(95, 0))
	f.Seek(vmath.V(100, 0), 200, 0.1, 10)
	assertVec(t, vmath.V(95, 0), f.Position())
}

func TestTransform(t *testing.T) {
	tr := NewTransform(vmath.V(5, 5))
	assert.Equal(t, vmath.V(1, 1), tr.Scale)
	assert.Equal(t, TransformID, tr.ID())

	tr.Move(vmath.V(5, -5))
	assert.Equal(t, vmath.V(10, 0), tr.Position)

	tr.Seek(vmath.V(10, 100), 50, 1, 1)
	assertVec(t, vmath.V(10, 50), tr.Position)

	tr.SetRotation(30)
	tr.SetScale(vmath.V(2, 3))
	tr.SetPosition(vmath.V(1, 1))
	assert.Equal(t, 30.0, tr.Rotation)
	assert.Equal(t, vmath.V(2, 3), tr.Scale)
	assert.Equal(t, vmath.V(1, 1), tr.Position)
}

func square() []vmath.Vec2 {
	return []vmath.Vec2{vmath.V(0, 0), vmath.V(100, 0), vmath.V(100, 100), vmath.V(0, 100)}
}

func TestPatrolCyclesWaypoints(t *testing.T) {
	p := NewPatrol(square(), 1000, 1, 0)
	pos := vmath.V(0, 0)

	var reached []int
	for i := 0; i < 10; i++ {
		step := p.Step(pos, vmath.Vec2{}, false, 1)
		pos = step.Position
		if step.Reached {
			reached = append(reached, step.ReachedIndex)
		}
	}

	assert.Equal(t, []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1}, reached)
	assert.Equal(t, 2, p.Index)
}

func TestPatrolChasesPointerWithinProximity(t *testing.T) {
	p := NewPatrol(square(), 10, 1, 50)
	pos := vmath.V(50, 50)

	step := p.Step(pos, vmath.V(60, 50), true, 1)
	assert.True(t, step.ModeChanged)
	assert.Equal(t, Chasing, p.Mode)
	assertVec(t, vmath.V(60, 50), step.Position)
	assert.False(t, step.Reached)

	step = p.Step(step.Position, vmath.V(60, 50), true, 1)
	assert.False(t, step.ModeChanged)

	// pointer leaves the radius: back to the current waypoint
	step = p.Step(step.Position, vmath.V(500, 500), true, 1)
	assert.True(t, step.ModeChanged)
	assert.Equal(t, Patrolling, p.Mode)
	assert.Equal(t, 0, p.Index)
}

func TestPatrolIgnoresUnknownPointerAndDisabledProximity(t *testing.T) {
	p := NewPatrol(square(), 10, 1, 50)
	step := p.Step(vmath.V(50, 50), vmath.V(50, 50), false, 1)
	assert.Equal(t, Patrolling, p.Mode)
	assert.False(t, step.ModeChanged)

	p = NewPatrol(square(), 10, 1, 0)
	p.Step(vmath.V(50, 50), vmath.V(50, 50), true, 1)
	assert.Equal(t, Patrolling, p.Mode)
}

func TestPatrolWithoutWaypoints(t *testing.T) {
	p := NewPatrol(nil, 10, 1, 0)
	step := p.Step(vmath.V(3, 4), vmath.Vec2{}, false, 1)
	assert.Equal(t, vmath.V(3, 4), step.Position)
	assert.False(t, step.Reached)

	_, ok := p.Current()
	assert.False(t, ok)
	p.Advance()
	assert.Equal(t, 0, p.Index)
}

func TestNewPatrolCopiesWaypoints(t *testing.T) {
	points := square()
	p := NewPatrol(points, 10, 1, 0)
	points[0] = vmath.V(-1, -1)
	current, _ := p.Current()
	assert.Equal(t, vmath.V(0, 0), current)
}

func TestSeekStep(t *testing.T) {
	s := NewSeek(100, 5)
	assert.Equal(t, vmath.V(1, 1), s.Step(vmath.V(1, 1), vmath.V(100, 100), false, 1))
	assertVec(t, vmath.V(10, 0), s.Step(vmath.V(0, 0), vmath.V(50, 0), true, 0.1))
	assert.Equal(t, vmath.V(0, 0), s.Step(vmath.V(0, 0), vmath.V(3, 0), true, 1))
}

func TestComponentRegistry(t *testing.T) {
	id, ok := GetComponentIDByName("transform")
	require.True(t, ok)
	assert.Equal(t, TransformID, id)

	id, ok = GetComponentIDByName("Shape")
	require.True(t, ok)
	assert.Equal(t, ShapeID, id)

	_, ok = GetComponentIDByName("Rigidbody")
	assert.False(t, ok)

	assert.Equal(t, "Patrol", ComponentName(PatrolID))
	assert.Equal(t, "Component(99)", ComponentName(ecs.ComponentID(99)))
}

func TestComponentProperties(t *testing.T) {
	tr := NewTransform(vmath.V(1, 2))
	props := ComponentProperties(tr)
	require.Len(t, props, 3)
	assert.Equal(t, "Position", props[0].Name)
	assert.Equal(t, vmath.V(1, 2), props[0].Value)

	// unexported fields are skipped
	assert.Empty(t, ComponentProperties(NewShapeFactory()))
	assert.Nil(t, ComponentProperties((*Transform)(nil)))
	assert.Nil(t, ComponentProperties(42))
}

func TestSteeringModeString(t *testing.T) {
	assert.Equal(t, "patrolling", Patrolling.String())
	assert.Equal(t, "chasing", Chasing.String())
	assert.Equal(t, "Triangle", ShapeTriangle.String())
	assert.Equal(t, "Unknown", ShapeType(9).String())
}
