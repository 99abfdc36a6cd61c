package screens

import (
	"fmt"
	"image/color"
	"reflect"
	"strings"

	"ebiten-actors/components"
	"ebiten-actors/ecs"
	"ebiten-actors/input"
	"ebiten-actors/render"
	"ebiten-actors/systems"
	"ebiten-actors/vmath"
)

// Inspector edit steps
const (
	NudgeStep  = 5.0
	RotateStep = 15.0
	ScaleStep  = 0.1
	MinScale   = 0.1
)

const (
	recentMessageCount = 5
	// DebugText glyphs are 6x16 pixels
	glyphWidth  = 6
	glyphHeight = 16
	panelMargin = 8
)

var panelColor = color.RGBA{0, 0, 0, 200}

// InspectorScreen is an immediate-mode overlay listing actors and their
// components. The selected actor's Transform can be edited from the keyboard.
type InspectorScreen struct {
	*BaseScreen
	world        *ecs.World
	renderSystem *systems.RenderSystem
	log          *systems.MessageLog
	stats        func() string
	selected     int
}

// NewInspectorScreen creates an inspector over world. renderSystem, log and
// stats may be nil; a non-nil stats result is shown under the title.
func NewInspectorScreen(world *ecs.World, renderSystem *systems.RenderSystem, log *systems.MessageLog, stats func() string) *InspectorScreen {
	return &InspectorScreen{
		BaseScreen:   NewBaseScreen(),
		world:        world,
		renderSystem: renderSystem,
		log:          log,
		stats:        stats,
	}
}

// Selected returns the selected actor, nil when the world is empty
func (s *InspectorScreen) Selected() *ecs.Entity {
	entities := s.world.GetAllEntities()
	if len(entities) == 0 {
		return nil
	}
	return entities[s.selected%len(entities)]
}

// Update applies the frame's edits
func (s *InspectorScreen) Update(in *input.State) error {
	if in.JustPressed(input.KeyEscape) {
		return ErrCloseScreen
	}
	// The scene screen below does not see input while the overlay is open
	if in.JustPressed(input.KeyW) && s.renderSystem != nil {
		s.renderSystem.ToggleWaypoints()
	}

	if in.JustPressed(input.KeyTab) {
		if n := len(s.world.GetAllEntities()); n > 0 {
			s.selected = (s.selected + 1) % n
		}
	}

	transform, ok := ecs.GetComponent[*components.Transform](s.Selected())
	if !ok {
		return nil
	}

	var offset vmath.Vec2
	if in.JustPressed(input.KeyUp) {
		offset.Y -= NudgeStep
	}
	if in.JustPressed(input.KeyDown) {
		offset.Y += NudgeStep
	}
	if in.JustPressed(input.KeyLeft) {
		offset.X -= NudgeStep
	}
	if in.JustPressed(input.KeyRight) {
		offset.X += NudgeStep
	}
	transform.Move(offset)

	if in.JustPressed(input.KeyQ) {
		transform.SetRotation(transform.Rotation - RotateStep)
	}
	if in.JustPressed(input.KeyE) {
		transform.SetRotation(transform.Rotation + RotateStep)
	}

	if in.JustPressed(input.KeyPlus) {
		transform.SetScale(transform.Scale.Add(vmath.V(ScaleStep, ScaleStep)))
	}
	if in.JustPressed(input.KeyMinus) {
		transform.SetScale(vmath.V(
			max(MinScale, transform.Scale.X-ScaleStep),
			max(MinScale, transform.Scale.Y-ScaleStep),
		))
	}

	return nil
}

// Lines returns the overlay text
func (s *InspectorScreen) Lines() []string {
	lines := []string{"INSPECTOR  Tab:next  arrows:move  Q/E:rotate  +/-:scale  W:routes  Esc:close"}
	if s.stats != nil {
		lines = append(lines, s.stats())
	}
	lines = append(lines, "")

	selected := s.Selected()
	for _, e := range s.world.GetAllEntities() {
		marker := "  "
		if e == selected {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s #%d", marker, e.Name, e.ID))
	}

	if selected != nil {
		lines = append(lines, "")
		for _, c := range selected.Components() {
			lines = append(lines, "  "+components.ComponentName(c.ID()))
			lines = append(lines, describe(c)...)
		}
	}

	if s.log != nil {
		recent := s.log.RecentMessages(recentMessageCount)
		if len(recent) > 0 {
			lines = append(lines, "", "Recent:")
			for _, m := range recent {
				lines = append(lines, "  "+m)
			}
		}
	}
	return lines
}

// Draw renders the overlay panel in the top-left corner
func (s *InspectorScreen) Draw(canvas render.Canvas) {
	lines := s.Lines()

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	w := float64(width*glyphWidth + 2*panelMargin)
	h := float64(len(lines)*glyphHeight + 2*panelMargin)
	canvas.FillPolygon([]vmath.Vec2{
		vmath.V(0, 0), vmath.V(w, 0), vmath.V(w, h), vmath.V(0, h),
	}, panelColor, nil)

	canvas.DebugText(strings.Join(lines, "\n"), panelMargin, panelMargin)
}

func describe(c ecs.Component) []string {
	if f, ok := c.(*components.ShapeFactory); ok {
		shape := f.Shape()
		if shape == nil {
			return []string{"    Shape: " + f.ShapeType().String()}
		}
		return []string{
			"    Shape: " + f.ShapeType().String(),
			"    Position: " + formatValue(shape.Position),
		}
	}

	props := components.ComponentProperties(c)
	lines := make([]string, 0, len(props))
	for _, p := range props {
		lines = append(lines, fmt.Sprintf("    %s: %s", p.Name, formatValue(p.Value)))
	}
	return lines
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case vmath.Vec2:
		return fmt.Sprintf("(%.1f, %.1f)", val.X, val.Y)
	case float64:
		return fmt.Sprintf("%.1f", val)
	case fmt.Stringer:
		return val.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice {
		return fmt.Sprintf("[%d items]", rv.Len())
	}
	return fmt.Sprintf("%v", v)
}
