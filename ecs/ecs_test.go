package ecs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

const (
	testPositionID ComponentID = iota + 100
	testSpriteID
)

type positionComp struct {
	vmath.Vec2
	updates int
	log     *[]string
}

func (*positionComp) ID() ComponentID { return testPositionID }
func (p *positionComp) Update(float64) {
	p.updates++
	if p.log != nil {
		*p.log = append(*p.log, "position")
	}
}
func (*positionComp) Render(render.Canvas) {}

type spriteComp struct {
	name    string
	renders int
	log     *[]string
}

func (*spriteComp) ID() ComponentID { return testSpriteID }
func (s *spriteComp) Update(float64) {
	if s.log != nil {
		*s.log = append(*s.log, "sprite:"+s.name)
	}
}
func (s *spriteComp) Render(render.Canvas) { s.renders++ }

type nopCanvas struct{}

func (nopCanvas) Clear(color.Color)                                      {}
func (nopCanvas) FillPolygon([]vmath.Vec2, color.Color, *render.Texture) {}
func (nopCanvas) StrokeLine(vmath.Vec2, vmath.Vec2, float64, color.Color) {}
func (nopCanvas) DebugText(string, int, int)                             {}
func (nopCanvas) Size() (int, int)                                       { return 0, 0 }

func TestGetComponentByType(t *testing.T) {
	e := NewEntity("Circle")
	pos := &positionComp{}
	first := &spriteComp{name: "first"}
	second := &spriteComp{name: "second"}
	e.AddComponent(pos)
	e.AddComponent(first)
	e.AddComponent(second)

	got, ok := GetComponent[*spriteComp](e)
	require.True(t, ok)
	assert.Same(t, first, got, "lookup returns the first match in insertion order")

	gotPos, ok := GetComponent[*positionComp](e)
	require.True(t, ok)
	assert.Same(t, pos, gotPos)

	empty := NewEntity("Empty")
	_, ok = GetComponent[*spriteComp](empty)
	assert.False(t, ok)

	_, ok = GetComponent[*spriteComp](nil)
	assert.False(t, ok)
}

func TestGetComponentByID(t *testing.T) {
	e := NewEntity("Triangle")
	e.AddComponent(&positionComp{})

	c, ok := e.GetComponentByID(testPositionID)
	require.True(t, ok)
	assert.Equal(t, testPositionID, c.ID())
	assert.False(t, e.HasComponent(testSpriteID))
}

func TestAddRemoveComponent(t *testing.T) {
	e := NewEntity("Track")
	s := &spriteComp{}
	e.AddComponent(nil)
	e.AddComponent(s)
	assert.Len(t, e.Components(), 1)

	assert.True(t, e.RemoveComponent(s))
	assert.False(t, e.RemoveComponent(s))
	assert.Empty(t, e.Components())
}

type tagsComp struct {
	names []string
}

func (tagsComp) ID() ComponentID      { return testSpriteID }
func (tagsComp) Update(float64)       {}
func (tagsComp) Render(render.Canvas) {}

func TestRemoveUncomparableComponent(t *testing.T) {
	e := NewEntity("Values")
	e.AddComponent(tagsComp{names: []string{"a"}})
	e.AddComponent(&spriteComp{})

	assert.NotPanics(t, func() {
		assert.False(t, e.RemoveComponent(tagsComp{names: []string{"a"}}))
		assert.False(t, e.RemoveComponent(&spriteComp{}))
	})
	assert.Len(t, e.Components(), 2)
}

func TestComponentsReturnsCopy(t *testing.T) {
	e := NewEntity("Copy")
	e.AddComponent(&spriteComp{})
	list := e.Components()
	list[0] = nil

	_, ok := GetComponent[*spriteComp](e)
	assert.True(t, ok)
}

func TestEntityUpdateOrderAndActive(t *testing.T) {
	var log []string
	e := NewEntity("Ordered")
	e.AddComponent(&spriteComp{name: "a", log: &log})
	e.AddComponent(&positionComp{log: &log})
	e.AddComponent(&spriteComp{name: "b", log: &log})

	e.Update(0.016)
	assert.Equal(t, []string{"sprite:a", "position", "sprite:b"}, log)

	e.Active = false
	e.Update(0.016)
	assert.Len(t, log, 3)
}

type countingSystem struct {
	calls int
	log   *[]string
}

func (s *countingSystem) Update(*World, float64) {
	s.calls++
	if s.log != nil {
		*s.log = append(*s.log, "system")
	}
}

func TestWorldUpdateRunsSystemsThenEntities(t *testing.T) {
	var log []string
	w := NewWorld()
	sys := &countingSystem{log: &log}
	w.AddSystem(sys)

	e := w.CreateEntity("Circle")
	e.AddComponent(&positionComp{log: &log})

	w.Update(0.016)
	assert.Equal(t, []string{"system", "position"}, log)
	assert.Equal(t, 1, sys.calls)
	assert.Len(t, w.GetSystems(), 1)
}

func TestWorldRenderOrder(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity("A")
	b := w.CreateEntity("B")
	sa, sb := &spriteComp{}, &spriteComp{}
	a.AddComponent(sa)
	b.AddComponent(sb)
	b.Active = false

	w.Render(nopCanvas{})
	assert.Equal(t, 1, sa.renders)
	assert.Equal(t, 0, sb.renders)
}

func TestWorldEntityLookup(t *testing.T) {
	w := NewWorld()
	track := w.CreateEntity("Track")
	circle := w.CreateEntity("Circle")
	triangle := w.CreateEntity("Triangle")

	assert.Equal(t, []*Entity{track, circle, triangle}, w.GetAllEntities())
	assert.Same(t, circle, w.GetEntityByName("Circle"))
	assert.Nil(t, w.GetEntityByName("Square"))
	assert.Same(t, triangle, w.GetEntity(triangle.ID))

	w.AddComponent(circle.ID, &positionComp{})
	w.AddComponent(triangle.ID, &positionComp{})
	assert.Equal(t, []*Entity{circle, triangle}, w.GetEntitiesWithComponent(testPositionID))
	assert.True(t, w.HasComponent(circle.ID, testPositionID))

	w.TagEntity(triangle.ID, "mover")
	w.TagEntity(circle.ID, "mover")
	assert.Equal(t, []*Entity{circle, triangle}, w.GetEntitiesWithTag("mover"))

	w.RemoveEntity(circle.ID)
	assert.Nil(t, w.GetEntity(circle.ID))
	assert.Equal(t, []*Entity{track, triangle}, w.GetAllEntities())
	assert.Equal(t, []*Entity{triangle}, w.GetEntitiesWithTag("mover"))
	assert.False(t, w.HasComponent(circle.ID, testPositionID))
}

type pingEvent struct{}

func (pingEvent) Type() EventType { return "ping" }

func TestEventManagerSubscribeUnsubscribe(t *testing.T) {
	w := NewWorld()
	em := w.GetEventManager()

	var got []string
	first := em.Subscribe("ping", func(Event) { got = append(got, "first") })
	em.Subscribe("ping", func(Event) { got = append(got, "second") })

	w.EmitEvent(pingEvent{})
	assert.Equal(t, []string{"first", "second"}, got)

	em.Unsubscribe("ping", first)
	got = nil
	w.EmitEvent(pingEvent{})
	assert.Equal(t, []string{"second"}, got)
}
