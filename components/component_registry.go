package components

import (
	"fmt"
	"reflect"
	"strings"

	"ebiten-actors/ecs"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"None":        None,
	"Transform":   TransformID,
	"Sprite":      SpriteID,
	"Physics":     PhysicsID,
	"AudioSource": AudioSourceID,
	"Shape":       ShapeID,
	"Patrol":      PatrolID,
	"Seek":        SeekID,
}

// GetComponentIDByName returns the ComponentID for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	// Try exact match first
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	for compName, id := range componentNameMap {
		if strings.EqualFold(compName, name) {
			return id, true
		}
	}

	return 0, false
}

// ComponentName returns the display name of a component ID
func ComponentName(id ecs.ComponentID) string {
	for name, cid := range componentNameMap {
		if cid == id {
			return name
		}
	}
	return fmt.Sprintf("Component(%d)", id)
}

// Property is an exported component field and its current value
type Property struct {
	Name  string
	Value interface{}
}

// ComponentProperties lists the exported fields of a component in
// declaration order. Used by the inspector overlay.
func ComponentProperties(comp interface{}) []Property {
	val := reflect.ValueOf(comp)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	props := make([]Property, 0, val.NumField())
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		props = append(props, Property{Name: field.Name, Value: val.Field(i).Interface()})
	}
	return props
}
