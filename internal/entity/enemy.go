package entity

import "github.com/vovakirdan/circle-arcade/internal/core"

// Enemy is anything the projectile can hit.
type Enemy interface {
	Position() core.Vec2
	Radius() float64
	// Update advances the enemy by one frame inside the given x range.
	Update(minX, maxX float64)
	Render(dst core.Canvas)
	// Hit records one strike.
	Hit()
	// Hits returns how many strikes were recorded.
	Hits() int
	// Alive reports whether the enemy can still be hit.
	Alive() bool
}

// Target is a circular enemy. It stands still unless given a patrol
// speed, in which case it sweeps horizontally and turns at the edges.
type Target struct {
	pos       core.Vec2
	radius    float64
	hitPoints int
	hits      int
	vx        float64
	color     core.Color
}

var _ Enemy = (*Target)(nil)

// NewTarget creates a target. hitPoints below 1 is treated as 1.
func NewTarget(pos core.Vec2, radius float64, hitPoints int, col core.Color) *Target {
	if hitPoints < 1 {
		hitPoints = 1
	}
	return &Target{
		pos:       pos,
		radius:    radius,
		hitPoints: hitPoints,
		color:     col,
	}
}

// SetPatrol sets the horizontal speed; 0 keeps the target static.
func (t *Target) SetPatrol(vx float64) {
	t.vx = vx
}

// SetPatrolSpeed changes the patrol speed while keeping the current
// direction. A static target starts moving right.
func (t *Target) SetPatrolSpeed(speed float64) {
	if t.vx < 0 {
		t.vx = -speed
		return
	}
	t.vx = speed
}

// Position returns the centre.
func (t *Target) Position() core.Vec2 {
	return t.pos
}

// Radius returns the radius.
func (t *Target) Radius() float64 {
	return t.radius
}

// Update moves a patrolling target, reversing at minX/maxX (centre
// positions). Defeated and static targets do not move.
func (t *Target) Update(minX, maxX float64) {
	if t.vx == 0 || !t.Alive() {
		return
	}
	t.pos.X += t.vx
	if t.pos.X < minX {
		t.pos.X = minX
		t.vx = -t.vx
	} else if t.pos.X > maxX {
		t.pos.X = maxX
		t.vx = -t.vx
	}
}

// Render draws a live target. Targets that have been hit but are still
// alive are drawn in orange.
func (t *Target) Render(dst core.Canvas) {
	if !t.Alive() {
		return
	}
	col := t.color
	if t.hits > 0 {
		col = core.ColorOrange
	}
	dst.FillCircle(core.Circle{Center: t.pos, Radius: t.radius}, col)
}

// Hit records a strike.
func (t *Target) Hit() {
	t.hits++
}

// Hits returns the number of strikes taken.
func (t *Target) Hits() int {
	return t.hits
}

// Alive reports whether the target has strikes left.
func (t *Target) Alive() bool {
	return t.hits < t.hitPoints
}
