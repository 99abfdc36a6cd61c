package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-actors/render"
	"ebiten-actors/vmath"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenCanvas draws onto an ebiten image
type EbitenCanvas struct {
	target   *ebiten.Image
	textures map[*render.Texture]*ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenCanvas creates a canvas; call Begin with the frame's screen
// before drawing
func NewEbitenCanvas() *EbitenCanvas {
	return &EbitenCanvas{textures: make(map[*render.Texture]*ebiten.Image)}
}

// Begin retargets the canvas to this frame's screen image
func (c *EbitenCanvas) Begin(target *ebiten.Image) {
	c.target = target
}

// Clear implements render.Canvas
func (c *EbitenCanvas) Clear(clr color.Color) {
	c.target.Fill(clr)
}

// FillPolygon fills a convex polygon. A texture is stretched over the
// polygon's bounding box and tinted with clr.
func (c *EbitenCanvas) FillPolygon(points []vmath.Vec2, clr color.Color, tex *render.Texture) {
	if len(points) < 3 {
		return
	}

	src := whiteSubImage
	if img := c.image(tex); img != nil {
		src = img
	}
	sb := src.Bounds()
	lo, hi := render.Bounds(points)
	w, h := hi.X-lo.X, hi.Y-lo.Y

	r, g, b, a := clr.RGBA()
	c.vertices = c.vertices[:0]
	for _, p := range points {
		u, v := 0.5, 0.5
		if w > 0 {
			u = (p.X - lo.X) / w
		}
		if h > 0 {
			v = (p.Y - lo.Y) / h
		}
		c.vertices = append(c.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   float32(sb.Min.X) + float32(u)*float32(sb.Dx()),
			SrcY:   float32(sb.Min.Y) + float32(v)*float32(sb.Dy()),
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		})
	}
	c.indices = render.FanIndices(len(points))

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	c.target.DrawTriangles(c.vertices, c.indices, src, op)
}

// StrokeLine implements render.Canvas
func (c *EbitenCanvas) StrokeLine(from, to vmath.Vec2, width float64, clr color.Color) {
	vector.StrokeLine(c.target, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr, true)
}

// DebugText implements render.Canvas
func (c *EbitenCanvas) DebugText(text string, x, y int) {
	ebitenutil.DebugPrintAt(c.target, text, x, y)
}

// Size implements render.Canvas
func (c *EbitenCanvas) Size() (width, height int) {
	if c.target == nil {
		return 0, 0
	}
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

// image uploads a texture on first use
func (c *EbitenCanvas) image(tex *render.Texture) *ebiten.Image {
	if tex == nil || tex.Image == nil {
		return nil
	}
	if img, ok := c.textures[tex]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(tex.Image)
	c.textures[tex] = img
	return img
}
