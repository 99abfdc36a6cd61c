package ecs

import "ebiten-actors/render"

// World manages all entities and systems
type World struct {
	entities map[EntityID]*Entity
	// Creation order, used for update and draw order
	order []EntityID
	// Systems slice to store all systems
	systems []System
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		order:        make([]EntityID, 0),
		systems:      make([]System, 0),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new named entity and adds it to the world
func (w *World) CreateEntity(name string) *Entity {
	entity := NewEntity(name)
	w.entities[entity.ID] = entity
	w.order = append(w.order, entity.ID)
	return entity
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	// Remove entity from tag lookups
	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.entities, entityID)
	for i, id := range w.order {
		if id == entityID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, component Component) {
	if entity, exists := w.entities[entityID]; exists {
		entity.AddComponent(component)
	}
}

// GetComponent retrieves the first component with the given ID from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if entity, exists := w.entities[entityID]; exists {
		return entity.GetComponentByID(componentID)
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, ok := w.GetComponent(entityID, componentID)
	return ok
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs all systems in registration order, then every entity's
// components in creation order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
	for _, entity := range w.GetAllEntities() {
		entity.Update(dt)
	}
}

// Render draws every entity in creation order
func (w *World) Render(canvas render.Canvas) {
	for _, entity := range w.GetAllEntities() {
		entity.Render(canvas)
	}
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.AddTag(tag)

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}

	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag in creation order
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)

	tagged, exists := w.entityTags[tag]
	if !exists {
		return entities
	}
	for _, id := range w.order {
		if tagged[id] {
			entities = append(entities, w.entities[id])
		}
	}

	return entities
}

// GetAllEntities returns all entities in creation order
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		entities = append(entities, w.entities[id])
	}
	return entities
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// GetEntityByName returns the first entity with the given name
func (w *World) GetEntityByName(name string) *Entity {
	for _, id := range w.order {
		if e := w.entities[id]; e.Name == name {
			return e
		}
	}
	return nil
}

// GetEntitiesWithComponent returns all entities that have a specific component
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)

	for _, id := range w.order {
		if entity := w.entities[id]; entity.HasComponent(componentID) {
			entities = append(entities, entity)
		}
	}

	return entities
}
