package core

import "fmt"

// Color is an RGBA colour used for circles and text.
// Frontends translate it to their own representation (hex for the
// terminal, color.RGBA for the window).
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a Color from its components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex returns the colour as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsZero reports whether c is the zero value (fully transparent black),
// which the screen treats as "default foreground".
func (c Color) IsZero() bool {
	return c == Color{}
}

// Predefined colors for game elements.
var (
	ColorDefault = Color{}
	ColorBlack   = RGBA(0, 0, 0, 255)
	ColorRed     = RGBA(255, 0, 0, 255)
	ColorGreen   = RGBA(0, 200, 0, 255)
	ColorYellow  = RGBA(255, 220, 0, 255)
	ColorWhite   = RGBA(255, 255, 255, 255)
	ColorOrange  = RGBA(255, 140, 0, 255)
)
