package physics

// Platformer is side-view motion: horizontal speed is set directly from
// held keys, vertical speed comes from a single jump impulse and constant
// gravity pulling the body back to the ground row.
type Platformer struct {
	Speed        float64 // horizontal speed while a direction is held
	Gravity      float64 // added to VY every frame (positive is down)
	JumpVelocity float64 // VY set by a jump (negative is up)
	GroundY      float64 // centre Y when standing on the floor
}

// Mover is a Body with the airborne flag the platformer tracks.
type Mover struct {
	Body
	Jumping bool
}

// MoveLeft sets the horizontal velocity to -Speed.
func (p Platformer) MoveLeft(m *Mover) {
	m.Vel.X = -p.Speed
}

// MoveRight sets the horizontal velocity to +Speed.
func (p Platformer) MoveRight(m *Mover) {
	m.Vel.X = p.Speed
}

// StopHorizontal zeroes the horizontal velocity.
func (p Platformer) StopHorizontal(m *Mover) {
	m.Vel.X = 0
}

// OnGround reports whether the mover stands exactly on the ground row.
func (p Platformer) OnGround(m *Mover) bool {
	return m.Pos.Y == p.GroundY
}

// Jump starts a jump if the mover is on the ground and not already
// jumping. It reports whether the jump fired.
func (p Platformer) Jump(m *Mover) bool {
	if m.Jumping || !p.OnGround(m) {
		return false
	}
	m.Vel.Y = p.JumpVelocity
	m.Jumping = true
	return true
}

// Step applies gravity, integrates, lands the mover on the ground and
// clamps into bounds.
func (p Platformer) Step(m *Mover, bounds Bounds) {
	m.Vel.Y += p.Gravity
	m.Integrate()

	if m.Pos.Y >= p.GroundY {
		m.Pos.Y = p.GroundY
		m.Vel.Y = 0
		m.Jumping = false
	}

	m.Clamp(bounds)
}
