// Package entity contains the shooter's moving objects: the single
// projectile, the enemy targets and the collision scan between them.
package entity

import "github.com/vovakirdan/circle-arcade/internal/core"

// ProjectileState is the lifecycle of the one projectile a player owns.
type ProjectileState int

const (
	ProjectileIdle   ProjectileState = iota // ready to fire
	ProjectileFlying                        // in the air, moving up
)

// String returns a human-readable name for the state.
func (s ProjectileState) String() string {
	switch s {
	case ProjectileIdle:
		return "Idle"
	case ProjectileFlying:
		return "Flying"
	default:
		return "Unknown"
	}
}

// Projectile is a shot travelling straight up. Only one exists per player;
// its state decides whether another shot may start.
type Projectile struct {
	Pos    core.Vec2
	VY     float64 // velocity per frame while flying (negative is up)
	Radius float64
	Speed  float64 // launch speed, magnitude
	state  ProjectileState
}

// NewProjectile creates an idle projectile.
func NewProjectile(speed, radius float64) *Projectile {
	return &Projectile{Speed: speed, Radius: radius}
}

// State returns the current lifecycle state.
func (p *Projectile) State() ProjectileState {
	return p.state
}

// Flying reports whether the projectile is in the air.
func (p *Projectile) Flying() bool {
	return p.state == ProjectileFlying
}

// Fire launches the projectile upward from origin. It reports false and
// does nothing when a shot is already in flight.
func (p *Projectile) Fire(origin core.Vec2) bool {
	if p.state == ProjectileFlying {
		return false
	}
	p.Pos = origin
	p.VY = -p.Speed
	p.state = ProjectileFlying
	return true
}

// Update advances a flying projectile by one frame and returns it to idle
// once it has left the top of the screen.
func (p *Projectile) Update() {
	if p.state != ProjectileFlying {
		return
	}
	p.Pos.Y += p.VY
	if p.Pos.Y < 0 {
		p.Deactivate()
	}
}

// Deactivate returns the projectile to idle.
func (p *Projectile) Deactivate() {
	p.state = ProjectileIdle
	p.VY = 0
}

// Circle returns the projectile's collision shape.
func (p *Projectile) Circle() core.Circle {
	return core.Circle{Center: p.Pos, Radius: p.Radius}
}

// Render draws the projectile while it is flying.
func (p *Projectile) Render(dst core.Canvas, col core.Color) {
	if p.state != ProjectileFlying {
		return
	}
	dst.FillCircle(p.Circle(), col)
}
