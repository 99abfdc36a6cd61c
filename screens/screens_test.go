package screens

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-actors/components"
	"ebiten-actors/ecs"
	"ebiten-actors/input"
	"ebiten-actors/render"
	"ebiten-actors/systems"
	"ebiten-actors/vmath"
)

type textCanvas struct {
	fills int
	text  string
}

func (c *textCanvas) Clear(color.Color)                                      {}
func (c *textCanvas) FillPolygon([]vmath.Vec2, color.Color, *render.Texture) { c.fills++ }
func (c *textCanvas) StrokeLine(vmath.Vec2, vmath.Vec2, float64, color.Color) {}
func (c *textCanvas) DebugText(text string, _, _ int)                        { c.text += text }
func (c *textCanvas) Size() (int, int)                                       { return 800, 600 }

type stubScreen struct {
	*BaseScreen
	err     error
	updates int
	draws   int
}

func (s *stubScreen) Update(*input.State) error { s.updates++; return s.err }
func (s *stubScreen) Draw(render.Canvas)        { s.draws++ }

func press(keys ...input.Key) *input.State {
	in := input.NewState()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

func TestScreenStack(t *testing.T) {
	stack := NewScreenStack()
	assert.Nil(t, stack.Pop())
	assert.Nil(t, stack.Peek())
	assert.NoError(t, stack.Update(input.NewState()))

	bottom := &stubScreen{BaseScreen: NewBaseScreen()}
	top := &stubScreen{BaseScreen: NewBaseScreen()}
	stack.Push(bottom)
	stack.Push(top)

	require.NoError(t, stack.Update(input.NewState()))
	assert.Equal(t, 0, bottom.updates, "only the top screen handles input")
	assert.Equal(t, 1, top.updates)

	stack.Draw(&textCanvas{})
	assert.Equal(t, 1, bottom.draws)
	assert.Equal(t, 1, top.draws)

	w, h := stack.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, 640, bottom.GetWidth())
	assert.Equal(t, 480, top.GetHeight())

	top.err = ErrCloseScreen
	require.NoError(t, stack.Update(input.NewState()))
	assert.Equal(t, 1, stack.Len())
	assert.Same(t, bottom, stack.Peek())

	bottom.err = ErrQuit
	assert.ErrorIs(t, stack.Update(input.NewState()), ErrQuit)
}

func newWorld() *ecs.World {
	world := ecs.NewWorld()
	for _, name := range []string{"Track", "Circle", "Triangle"} {
		e := world.CreateEntity(name)
		e.AddComponent(components.NewTransform(vmath.V(100, 100)))
		f := components.NewShapeFactory()
		f.CreateShape(components.ShapeCircle)
		e.AddComponent(f)
	}
	return world
}

func TestSceneScreen(t *testing.T) {
	world := newWorld()
	rs := systems.NewRenderSystem(color.Black)
	scene := NewSceneScreen(world, rs)

	require.NoError(t, scene.Update(press(input.KeyW)))
	assert.True(t, rs.ShowWaypoints)

	assert.ErrorIs(t, scene.Update(press(input.KeyEscape)), ErrQuit)

	canvas := &textCanvas{}
	scene.Draw(canvas)
	assert.Equal(t, 3, canvas.fills)
}

func TestInspectorSelectionCycles(t *testing.T) {
	world := newWorld()
	insp := NewInspectorScreen(world, nil, nil, nil)

	assert.Equal(t, "Track", insp.Selected().Name)
	require.NoError(t, insp.Update(press(input.KeyTab)))
	assert.Equal(t, "Circle", insp.Selected().Name)
	require.NoError(t, insp.Update(press(input.KeyTab)))
	require.NoError(t, insp.Update(press(input.KeyTab)))
	assert.Equal(t, "Track", insp.Selected().Name)
}

func TestInspectorEditsTransform(t *testing.T) {
	world := newWorld()
	insp := NewInspectorScreen(world, nil, nil, nil)
	transform, _ := ecs.GetComponent[*components.Transform](insp.Selected())

	require.NoError(t, insp.Update(press(input.KeyRight, input.KeyDown)))
	assert.Equal(t, vmath.V(100+NudgeStep, 100+NudgeStep), transform.Position)

	require.NoError(t, insp.Update(press(input.KeyE)))
	require.NoError(t, insp.Update(press(input.KeyE)))
	require.NoError(t, insp.Update(press(input.KeyQ)))
	assert.Equal(t, RotateStep, transform.Rotation)

	require.NoError(t, insp.Update(press(input.KeyPlus)))
	assert.InDelta(t, 1.1, transform.Scale.X, 1e-9)

	for i := 0; i < 20; i++ {
		require.NoError(t, insp.Update(press(input.KeyMinus)))
	}
	assert.Equal(t, vmath.V(MinScale, MinScale), transform.Scale)

	assert.ErrorIs(t, insp.Update(press(input.KeyEscape)), ErrCloseScreen)
}

func TestInspectorEmptyWorld(t *testing.T) {
	insp := NewInspectorScreen(ecs.NewWorld(), nil, nil, nil)
	assert.Nil(t, insp.Selected())
	assert.NoError(t, insp.Update(press(input.KeyTab, input.KeyUp)))
	assert.NotEmpty(t, insp.Lines())
}

func TestInspectorLinesAndDraw(t *testing.T) {
	world := newWorld()
	circle := world.GetEntityByName("Circle")
	circle.AddComponent(components.NewPatrol([]vmath.Vec2{vmath.V(1, 1), vmath.V(2, 2)}, 10, 1, 0))

	log := systems.NewMessageLog()
	log.Add("spawned Circle")
	insp := NewInspectorScreen(world, nil, log, func() string { return "TPS: 60" })
	require.NoError(t, insp.Update(press(input.KeyTab)))

	text := strings.Join(insp.Lines(), "\n")
	assert.Contains(t, text, "TPS: 60")
	assert.Contains(t, text, "> Circle")
	assert.Contains(t, text, "  Track")
	assert.Contains(t, text, "Position: (100.0, 100.0)")
	assert.Contains(t, text, "Shape: Circle")
	assert.Contains(t, text, "Waypoints: [2 items]")
	assert.Contains(t, text, "Mode: patrolling")
	assert.Contains(t, text, "spawned Circle")

	canvas := &textCanvas{}
	insp.Draw(canvas)
	assert.Equal(t, 1, canvas.fills, "panel background")
	assert.Equal(t, text, canvas.text)
}

func TestInspectorTogglesRoutesOverScene(t *testing.T) {
	world := newWorld()
	rs := systems.NewRenderSystem(color.Black)
	stack := NewScreenStack()
	stack.Push(NewSceneScreen(world, rs))
	stack.Push(NewInspectorScreen(world, rs, nil, nil))

	require.NoError(t, stack.Update(press(input.KeyW)))
	assert.True(t, rs.ShowWaypoints)
	require.NoError(t, stack.Update(press(input.KeyW)))
	assert.False(t, rs.ShowWaypoints)
	assert.Equal(t, 2, stack.Len())
}
