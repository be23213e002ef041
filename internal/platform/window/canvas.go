package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/circle-arcade/internal/core"
)

// canvas draws a game frame onto an ebiten image. The window is laid out
// at world size, so world coordinates are pixels.
type canvas struct {
	dst   *ebiten.Image
	face  font.Face
	world core.Vec2
}

var _ core.Canvas = (*canvas)(nil)

func newCanvas(dst *ebiten.Image) *canvas {
	return &canvas{dst: dst, face: basicfont.Face7x13}
}

func (c *canvas) Begin(world core.Vec2, bg core.Color) {
	c.world = world
	c.dst.Fill(toColor(bg, colornames.Black))
}

func (c *canvas) FillCircle(circle core.Circle, col core.Color) {
	vector.DrawFilledCircle(c.dst,
		float32(circle.Center.X), float32(circle.Center.Y), float32(circle.Radius),
		toColor(col, colornames.White), true)
}

// Label draws text with its top-left corner at the given point.
func (c *canvas) Label(at core.Vec2, s string, col core.Color) {
	ascent := c.face.Metrics().Ascent.Ceil()
	text.Draw(c.dst, s, c.face, int(at.X), int(at.Y)+ascent, toColor(col, colornames.White))
}

func (c *canvas) Banner(title, subtitle string) {
	box := bannerRect(c.world, len(title), len(subtitle))

	vector.DrawFilledRect(c.dst, box.x, box.y, box.w, box.h, colornames.Black, true)
	vector.StrokeRect(c.dst, box.x, box.y, box.w, box.h, 2, colornames.White, true)

	ascent := c.face.Metrics().Ascent.Ceil()
	cx := box.x + box.w/2
	text.Draw(c.dst, title, c.face, int(cx)-len(title)*glyphW/2, int(box.y)+bannerPad+ascent, colornames.Yellow)
	text.Draw(c.dst, subtitle, c.face, int(cx)-len(subtitle)*glyphW/2, int(box.y)+bannerPad+2*lineH+ascent, colornames.Lightgray)
}

// Face7x13 metrics.
const (
	glyphW    = 7
	lineH     = 13
	bannerPad = 12
)

type rect struct {
	x, y, w, h float32
}

// bannerRect centres a box wide enough for the longer line, with one blank
// line between title and subtitle.
func bannerRect(world core.Vec2, titleLen, subtitleLen int) rect {
	w := float32(core.Max(titleLen, subtitleLen)*glyphW + 2*bannerPad)
	h := float32(3*lineH + 2*bannerPad)
	return rect{
		x: (float32(world.X) - w) / 2,
		y: (float32(world.Y) - h) / 2,
		w: w,
		h: h,
	}
}

// toColor converts a game colour; the zero colour becomes def.
func toColor(c core.Color, def color.RGBA) color.RGBA {
	if c.IsZero() {
		return def
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// measure is a canvas that only records the world size a game asks for.
type measure struct {
	world core.Vec2
}

func (m *measure) Begin(world core.Vec2, _ core.Color) { m.world = world }
func (m *measure) FillCircle(core.Circle, core.Color)  {}
func (m *measure) Label(core.Vec2, string, core.Color) {}
func (m *measure) Banner(string, string)               {}
