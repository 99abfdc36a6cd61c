package render

import (
	"image/color"

	"ebiten-actors/vmath"
)

// Canvas is the draw surface of a window backend. Coordinates are world
// pixels with the origin at the top-left corner.
type Canvas interface {
	// Clear fills the whole surface with clr
	Clear(clr color.Color)
	// FillPolygon fills a convex polygon. When tex is non-nil its image is
	// stretched over the polygon's bounding box and tinted by clr.
	FillPolygon(points []vmath.Vec2, clr color.Color, tex *Texture)
	// StrokeLine draws a line segment
	StrokeLine(from, to vmath.Vec2, width float64, clr color.Color)
	// DebugText prints text with its top-left corner at x, y
	DebugText(text string, x, y int)
	// Size returns the surface size in world pixels
	Size() (width, height int)
}
