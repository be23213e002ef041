package entity

import "github.com/vovakirdan/circle-arcade/internal/core"

// FirstHit scans enemies in list order and returns the index of the first
// live enemy the flying projectile overlaps. The scan stops at the first
// match, which is not necessarily the nearest enemy.
func FirstHit(p *Projectile, enemies []Enemy) (int, bool) {
	if !p.Flying() {
		return -1, false
	}
	shot := p.Circle()
	for i, e := range enemies {
		if !e.Alive() {
			continue
		}
		if shot.Overlaps(core.Circle{Center: e.Position(), Radius: e.Radius()}) {
			return i, true
		}
	}
	return -1, false
}

// Resolve runs FirstHit and applies its outcome: the enemy records the hit
// and the projectile returns to idle. It returns the struck enemy, or nil.
func Resolve(p *Projectile, enemies []Enemy) Enemy {
	i, ok := FirstHit(p, enemies)
	if !ok {
		return nil
	}
	enemies[i].Hit()
	p.Deactivate()
	return enemies[i]
}
