package components

import (
	"image/color"
	"math"

	"ebiten-actors/ecs"
	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

// ShapeType identifies the kind of shape a ShapeFactory produces
type ShapeType int

const (
	ShapeEmpty ShapeType = iota
	ShapeCircle
	ShapeRectangle
	ShapeTriangle
)

// String returns the shape type name
func (t ShapeType) String() string {
	switch t {
	case ShapeEmpty:
		return "Empty"
	case ShapeCircle:
		return "Circle"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeTriangle:
		return "Triangle"
	default:
		return "Unknown"
	}
}

// Default shape dimensions
const (
	CircleRadius       = 10.0
	CirclePointCount   = 30
	RectangleWidth     = 100.0
	RectangleHeight    = 50.0
	TriangleRadius     = 50.0
	TrianglePointCount = 3
)

// Shape is a drawable polygon with its own transform. Circles and
// triangles are regular polygons inscribed in a circle of Radius whose
// bounding box starts at the local origin; rectangles span Size.
type Shape struct {
	Kind       ShapeType
	Radius     float64
	PointCount int
	Size       vmath.Vec2

	Position vmath.Vec2
	Rotation float64
	Scale    vmath.Vec2
	// Origin is the local point that Position refers to
	Origin vmath.Vec2

	FillColor color.Color
	Texture   *render.Texture
}

// Points returns the polygon in local coordinates
func (s *Shape) Points() []vmath.Vec2 {
	if s.Kind == ShapeRectangle {
		return []vmath.Vec2{
			vmath.V(0, 0),
			vmath.V(s.Size.X, 0),
			vmath.V(s.Size.X, s.Size.Y),
			vmath.V(0, s.Size.Y),
		}
	}

	if s.PointCount < 3 {
		return nil
	}
	points := make([]vmath.Vec2, s.PointCount)
	for i := range points {
		angle := float64(i)*2*math.Pi/float64(s.PointCount) - math.Pi/2
		points[i] = vmath.V(s.Radius+math.Cos(angle)*s.Radius, s.Radius+math.Sin(angle)*s.Radius)
	}
	return points
}

// WorldPoints returns the polygon after origin, scale, rotation and
// translation are applied, in that order
func (s *Shape) WorldPoints() []vmath.Vec2 {
	points := s.Points()
	for i, p := range points {
		points[i] = p.Sub(s.Origin).Mul(s.Scale).Rotate(s.Rotation).Add(s.Position)
	}
	return points
}

// Move offsets the shape position
func (s *Shape) Move(offset vmath.Vec2) {
	s.Position = s.Position.Add(offset)
}

// ShapeFactory creates and owns a single drawable shape
type ShapeFactory struct {
	shape     *Shape
	shapeType ShapeType
}

// NewShapeFactory creates an empty shape factory
func NewShapeFactory() *ShapeFactory {
	return &ShapeFactory{shapeType: ShapeEmpty}
}

// ID implements ecs.Component
func (*ShapeFactory) ID() ecs.ComponentID { return ShapeID }

// CreateShape replaces the current shape with a new one of the given type.
// Empty and unknown types leave the factory without a shape and return nil.
func (f *ShapeFactory) CreateShape(shapeType ShapeType) *Shape {
	f.shapeType = shapeType

	var shape *Shape
	switch shapeType {
	case ShapeCircle:
		shape = &Shape{Kind: ShapeCircle, Radius: CircleRadius, PointCount: CirclePointCount}
	case ShapeRectangle:
		shape = &Shape{Kind: ShapeRectangle, Size: vmath.V(RectangleWidth, RectangleHeight)}
	case ShapeTriangle:
		shape = &Shape{Kind: ShapeTriangle, Radius: TriangleRadius, PointCount: TrianglePointCount}
	default:
		f.shape = nil
		return nil
	}

	shape.Scale = vmath.V(1, 1)
	shape.FillColor = color.White
	f.shape = shape
	return shape
}

// Shape returns the current shape, nil if none was created
func (f *ShapeFactory) Shape() *Shape {
	return f.shape
}

// ShapeType returns the type of the last created shape
func (f *ShapeFactory) ShapeType() ShapeType {
	return f.shapeType
}

// SetPosition moves the shape
func (f *ShapeFactory) SetPosition(position vmath.Vec2) {
	if f.shape != nil {
		f.shape.Position = position
	}
}

// SetRotation sets the shape rotation in degrees
func (f *ShapeFactory) SetRotation(deg float64) {
	if f.shape != nil {
		f.shape.Rotation = deg
	}
}

// SetScale sets the shape scale
func (f *ShapeFactory) SetScale(scale vmath.Vec2) {
	if f.shape != nil {
		f.shape.Scale = scale
	}
}

// SetOrigin sets the local point the position refers to
func (f *ShapeFactory) SetOrigin(origin vmath.Vec2) {
	if f.shape != nil {
		f.shape.Origin = origin
	}
}

// SetFillColor sets the fill color (the texture tint when textured)
func (f *ShapeFactory) SetFillColor(clr color.Color) {
	if f.shape != nil {
		f.shape.FillColor = clr
	}
}

// SetTexture fills the shape with tex
func (f *ShapeFactory) SetTexture(tex *render.Texture) {
	if f.shape != nil {
		f.shape.Texture = tex
	}
}

// Position returns the shape position, zero if there is no shape
func (f *ShapeFactory) Position() vmath.Vec2 {
	if f.shape == nil {
		return vmath.Vec2{}
	}
	return f.shape.Position
}

// Seek moves the shape toward target at speed px/s, holding still
// within rng of it
func (f *ShapeFactory) Seek(target vmath.Vec2, speed, dt, rng float64) {
	if f.shape == nil {
		return
	}
	f.shape.Position = vmath.MoveTowards(f.shape.Position, target, speed, dt, rng)
}

// Update implements ecs.Component
func (f *ShapeFactory) Update(float64) {}

// Render implements ecs.Component
func (f *ShapeFactory) Render(canvas render.Canvas) {
	if f.shape == nil {
		return
	}
	canvas.FillPolygon(f.shape.WorldPoints(), f.shape.FillColor, f.shape.Texture)
}
