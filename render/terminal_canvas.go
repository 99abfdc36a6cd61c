package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"ebiten-actors/vmath"
)

// CellScreen is the subset of tcell.Screen the terminal canvas draws on
type CellScreen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Fill(r rune, style tcell.Style)
	Size() (width, height int)
}

// TerminalCanvas rasterizes world-pixel geometry onto terminal cells.
// Each cell covers cellW x cellH world pixels; a cell is filled when its
// center lies inside a polygon.
type TerminalCanvas struct {
	screen     CellScreen
	worldW     int
	worldH     int
	cellW      float64
	cellH      float64
	background tcell.Color
}

// NewTerminalCanvas creates a canvas that maps a worldW x worldH scene onto the screen
func NewTerminalCanvas(screen CellScreen, worldW, worldH int) *TerminalCanvas {
	c := &TerminalCanvas{
		screen:     screen,
		background: tcell.ColorBlack,
	}
	c.Fit(worldW, worldH)
	return c
}

// Fit recomputes the cell size so the whole world fits the current screen
func (c *TerminalCanvas) Fit(worldW, worldH int) {
	c.worldW, c.worldH = worldW, worldH
	cols, rows := c.screen.Size()
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	c.cellW = float64(worldW) / float64(cols)
	c.cellH = float64(worldH) / float64(rows)
}

// CellSize returns the world size of one cell
func (c *TerminalCanvas) CellSize() (w, h float64) {
	return c.cellW, c.cellH
}

// ToWorld converts a cell coordinate to the world position of its center
func (c *TerminalCanvas) ToWorld(col, row int) vmath.Vec2 {
	return vmath.V((float64(col)+0.5)*c.cellW, (float64(row)+0.5)*c.cellH)
}

// Clear implements Canvas
func (c *TerminalCanvas) Clear(clr color.Color) {
	c.background = tcellColor(clr)
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.background))
}

// FillPolygon implements Canvas. A textured cell takes the texel under its
// center, multiplied by clr.
func (c *TerminalCanvas) FillPolygon(points []vmath.Vec2, clr color.Color, tex *Texture) {
	if len(points) < 3 {
		return
	}
	min, max := Bounds(points)
	cols, rows := c.screen.Size()

	x0 := clampInt(int(math.Floor(min.X/c.cellW)), 0, cols-1)
	x1 := clampInt(int(math.Ceil(max.X/c.cellW)), 0, cols-1)
	y0 := clampInt(int(math.Floor(min.Y/c.cellH)), 0, rows-1)
	y1 := clampInt(int(math.Ceil(max.Y/c.cellH)), 0, rows-1)

	style := tcell.StyleDefault.Foreground(tcellColor(clr)).Background(c.background)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			p := c.ToWorld(col, row)
			if !PointInPolygon(p, points) {
				continue
			}
			cellStyle := style
			if tex != nil && tex.Image != nil {
				cellStyle = style.Foreground(tcellColor(texel(tex, p, min, max, clr)))
			}
			c.screen.SetContent(col, row, '█', nil, cellStyle)
		}
	}
}

// StrokeLine implements Canvas by stepping one cell at a time
func (c *TerminalCanvas) StrokeLine(from, to vmath.Vec2, _ float64, clr color.Color) {
	d := to.Sub(from)
	steps := int(math.Max(math.Abs(d.X)/c.cellW, math.Abs(d.Y)/c.cellH)) + 1
	cols, rows := c.screen.Size()
	style := tcell.StyleDefault.Foreground(tcellColor(clr)).Background(c.background)

	for i := 0; i <= steps; i++ {
		p := from.Add(d.Scale(float64(i) / float64(steps)))
		col, row := int(p.X/c.cellW), int(p.Y/c.cellH)
		if col < 0 || row < 0 || col >= cols || row >= rows {
			continue
		}
		c.screen.SetContent(col, row, '·', nil, style)
	}
}

// DebugText implements Canvas; x and y are world pixels
func (c *TerminalCanvas) DebugText(text string, x, y int) {
	cols, rows := c.screen.Size()
	row := int(float64(y) / c.cellH)
	col := int(float64(x) / c.cellW)
	if row < 0 || row >= rows {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(c.background)
	for _, r := range text {
		if r == '\n' {
			row++
			col = int(float64(x) / c.cellW)
			if row >= rows {
				return
			}
			continue
		}
		if col >= 0 && col < cols {
			c.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

// Size implements Canvas
func (c *TerminalCanvas) Size() (width, height int) {
	return c.worldW, c.worldH
}

func tcellColor(clr color.Color) tcell.Color {
	if clr == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// texel samples tex at p, with the texture stretched over the box lo..hi
func texel(tex *Texture, p, lo, hi vmath.Vec2, tint color.Color) color.Color {
	b := tex.Image.Bounds()
	u, v := 0.5, 0.5
	if hi.X > lo.X {
		u = (p.X - lo.X) / (hi.X - lo.X)
	}
	if hi.Y > lo.Y {
		v = (p.Y - lo.Y) / (hi.Y - lo.Y)
	}
	x := clampInt(b.Min.X+int(u*float64(b.Dx())), b.Min.X, b.Max.X-1)
	y := clampInt(b.Min.Y+int(v*float64(b.Dy())), b.Min.Y, b.Max.Y-1)

	r, g, bl, _ := tex.Image.At(x, y).RGBA()
	tr, tg, tb, _ := tint.RGBA()
	return color.RGBA64{
		R: uint16(r * tr / 0xffff),
		G: uint16(g * tg / 0xffff),
		B: uint16(bl * tb / 0xffff),
		A: 0xffff,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
