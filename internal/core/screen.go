package core

import (
	"math"
	"strings"
)

// CellAspect is how many times taller a terminal cell is than it is wide.
const CellAspect = 2.0

// FillRune is used for every cell covered by a circle.
const FillRune = '█'

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal: games draw world-space
// circles and text through the Canvas methods and the platform handles
// actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell

	// world -> cell mapping, set by Begin
	unit float64 // world units per cell column
	offX float64 // cell column of world x = 0
	offY float64 // cell row of world y = 0
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		unit:   1,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next
// frame redraws everything.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune with the default colour at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns an empty cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.drawColoredText(x, y, text, ColorDefault)
}

func (s *Screen) drawColoredText(x, y int, text string, col Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: col})
		i++
	}
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// Begin clears the screen and fits the world into it, centred, keeping
// circles round on cells that are CellAspect times taller than wide.
// The background colour is left to the terminal.
func (s *Screen) Begin(world Vec2, _ Color) {
	s.Clear()
	if world.X <= 0 || world.Y <= 0 || s.width == 0 || s.height == 0 {
		s.unit, s.offX, s.offY = 1, 0, 0
		return
	}

	s.unit = math.Max(world.X/float64(s.width), world.Y/(CellAspect*float64(s.height)))
	s.offX = (float64(s.width) - world.X/s.unit) / 2
	s.offY = (float64(s.height) - world.Y/(CellAspect*s.unit)) / 2
}

// ToCell maps a world point to the cell containing it.
func (s *Screen) ToCell(p Vec2) (int, int) {
	cx := s.offX + p.X/s.unit
	cy := s.offY + p.Y/(CellAspect*s.unit)
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// toWorld maps the centre of a cell back to world space.
func (s *Screen) toWorld(x, y int) Vec2 {
	return Vec2{
		X: (float64(x) + 0.5 - s.offX) * s.unit,
		Y: (float64(y) + 0.5 - s.offY) * CellAspect * s.unit,
	}
}

// FillCircle colours every cell whose centre lies inside the circle.
// The cell holding the centre is always drawn so that circles smaller
// than a cell stay visible.
func (s *Screen) FillCircle(c Circle, col Color) {
	fill := Cell{Rune: FillRune, Color: col}

	x0, y0 := s.ToCell(Vec2{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius})
	x1, y1 := s.ToCell(Vec2{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if Distance(s.toWorld(x, y), c.Center) <= c.Radius {
				s.SetCell(x, y, fill)
			}
		}
	}

	cx, cy := s.ToCell(c.Center)
	s.SetCell(cx, cy, fill)
}

// Label writes text starting at the cell containing the world point.
func (s *Screen) Label(at Vec2, text string, col Color) {
	x, y := s.ToCell(at)
	s.drawColoredText(x, y, text, col)
}

// Banner draws a message box in the center of the screen.
func (s *Screen) Banner(title, subtitle string) {
	boxW := Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (s.width - boxW) / 2
	boxY := (s.height - boxH) / 2

	s.DrawRect(NewRect(boxX, boxY, boxW, boxH), ' ')
	s.DrawBox(NewRect(boxX, boxY, boxW, boxH))

	s.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	s.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// String converts the screen buffer to a plain string without colours.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
