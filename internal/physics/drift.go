package physics

import "math"

// Drift is horizontal motion driven by discrete acceleration and friction
// impulses. Velocity persists between frames, so a released body keeps
// sliding until friction brings it to rest.
type Drift struct {
	MaxSpeed        float64 // |VX| never exceeds this
	RollingFriction float64 // applied every frame while coasting; 0 disables
}

// Accelerate adds a to the body's horizontal velocity, capped at MaxSpeed.
func (d Drift) Accelerate(b *Body, a float64) {
	b.Vel.X = capMagnitude(b.Vel.X+a, d.MaxSpeed)
}

// ApplyFriction moves the horizontal velocity toward zero by f without
// crossing it.
func (d Drift) ApplyFriction(b *Body, f float64) {
	f = math.Abs(f)
	switch {
	case b.Vel.X > f:
		b.Vel.X -= f
	case b.Vel.X < -f:
		b.Vel.X += f
	default:
		b.Vel.X = 0
	}
}

// Step integrates one frame and clamps into bounds. When coasting is true
// the rolling friction is applied before integrating.
func (d Drift) Step(b *Body, bounds Bounds, coasting bool) {
	if coasting && d.RollingFriction > 0 {
		d.ApplyFriction(b, d.RollingFriction)
	}
	b.Pos.X += b.Vel.X
	b.Clamp(bounds)
}

// capMagnitude limits v to [-limit, limit]; a non-positive limit disables it.
func capMagnitude(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}
