package ecs

import (
	"reflect"
	"sync/atomic"

	"ebiten-actors/render"
)

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Entity is an in-scene actor. It owns an ordered list of components;
// insertion order is the update and render order.
type Entity struct {
	ID   EntityID
	Name string
	// Tags can be used for quick identification (e.g., "track", "patrol")
	Tags map[string]bool
	// Inactive entities are neither updated nor rendered
	Active bool

	components []Component
}

// NewEntity creates a new active entity
func NewEntity(name string) *Entity {
	return &Entity{
		ID:     NewEntityID(),
		Name:   name,
		Tags:   make(map[string]bool),
		Active: true,
	}
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}

// AddComponent appends a component. Several components with the same ID
// are allowed; lookups return the first one.
func (e *Entity) AddComponent(component Component) {
	if component == nil {
		return
	}
	e.components = append(e.components, component)
}

// RemoveComponent removes the given component instance.
// Returns false if the entity does not hold it. Components of an
// uncomparable dynamic type can never be matched; use pointers.
func (e *Entity) RemoveComponent(component Component) bool {
	if component == nil || !reflect.TypeOf(component).Comparable() {
		return false
	}
	for i, c := range e.components {
		if reflect.TypeOf(c) == reflect.TypeOf(component) && c == component {
			e.components = append(e.components[:i], e.components[i+1:]...)
			return true
		}
	}
	return false
}

// Components returns the components in insertion order
func (e *Entity) Components() []Component {
	out := make([]Component, len(e.components))
	copy(out, e.components)
	return out
}

// GetComponentByID returns the first component carrying the given ID
func (e *Entity) GetComponentByID(id ComponentID) (Component, bool) {
	for _, c := range e.components {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// HasComponent checks if the entity holds a component with the given ID
func (e *Entity) HasComponent(id ComponentID) bool {
	_, ok := e.GetComponentByID(id)
	return ok
}

// Update updates every component in insertion order
func (e *Entity) Update(dt float64) {
	if !e.Active {
		return
	}
	for _, c := range e.components {
		c.Update(dt)
	}
}

// Render draws every component in insertion order
func (e *Entity) Render(canvas render.Canvas) {
	if !e.Active {
		return
	}
	for _, c := range e.components {
		c.Render(canvas)
	}
}

// GetComponent returns the first component whose dynamic type is T.
//
//	shape, ok := ecs.GetComponent[*components.ShapeFactory](actor)
func GetComponent[T Component](e *Entity) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	for _, c := range e.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}
