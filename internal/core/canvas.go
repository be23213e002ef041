package core

// Canvas is the drawing surface a game renders into once per frame.
// Coordinates are world coordinates; each implementation maps them onto
// its own output (terminal cells or window pixels).
type Canvas interface {
	// Begin starts a frame: it fixes the world extent that subsequent
	// calls are expressed in and clears to bg.
	Begin(world Vec2, bg Color)

	// FillCircle draws a filled disc.
	FillCircle(c Circle, col Color)

	// Label draws a single line of text whose top-left corner is at.
	Label(at Vec2, text string, col Color)

	// Banner draws a boxed two-line message centred on the frame.
	Banner(title, subtitle string)
}
