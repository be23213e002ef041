// Package physics holds the per-frame kinematics shared by the circle games:
// velocity integration, gravity, friction and clamping into screen bounds.
// All updates are plain numeric steps with no failure modes.
package physics

import "github.com/vovakirdan/circle-arcade/internal/core"

// Bounds is the closed range a body's centre may occupy on each axis.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ForRadius returns the bounds that keep a circle of radius r fully inside
// a w x h area: [r, w-r] x [r, h-r].
func ForRadius(w, h, r float64) Bounds {
	return Bounds{MinX: r, MaxX: w - r, MinY: r, MaxY: h - r}
}

// Contains reports whether p lies within the bounds (inclusive).
func (b Bounds) Contains(p core.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Body is a moving circle: the player in both games.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Circle returns the body's collision shape.
func (b *Body) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// Integrate advances position by one frame of velocity.
func (b *Body) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Clamp pulls the position back inside bounds. Velocity is left alone so a
// body pushed against an edge stays pinned there instead of bouncing.
func (b *Body) Clamp(bounds Bounds) {
	b.Pos.X = core.ClampF(b.Pos.X, bounds.MinX, bounds.MaxX)
	b.Pos.Y = core.ClampF(b.Pos.Y, bounds.MinY, bounds.MaxY)
}
